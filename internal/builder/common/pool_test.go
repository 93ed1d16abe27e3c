package common

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWorkerPool(t *testing.T) {
	type testCase struct {
		name        string
		workerCount int
		jobCount    int
	}

	testCases := []testCase{
		{
			name:        "Single worker",
			workerCount: 1,
			jobCount:    10,
		},
		{
			name:        "More workers than jobs",
			workerCount: 8,
			jobCount:    3,
		},
		{
			name:        "Zero workers falls back to one",
			workerCount: 0,
			jobCount:    5,
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		var (
			mutex sync.Mutex
			seen  []int
		)

		handler := func(_ context.Context, job int) {
			mutex.Lock()
			defer mutex.Unlock()

			seen = append(seen, job)
		}

		pool := NewWorkerPool(handler, tc.workerCount)
		pool.Start(context.Background())

		for i := range tc.jobCount {
			pool.Submit(i)
		}

		pool.Stop()

		sort.Ints(seen)

		expected := make([]int, tc.jobCount)
		for i := range expected {
			expected[i] = i
		}

		require.Equal(t, expected, seen)
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestWorkerPoolHandlerSeesCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var (
		mutex    sync.Mutex
		handled  int
		canceled int
	)

	handler := func(ctx context.Context, _ int) {
		mutex.Lock()
		defer mutex.Unlock()

		handled++

		if CtxClosed(ctx) {
			canceled++
		}
	}

	pool := NewWorkerPool(handler, 2)
	pool.Start(ctx)

	for i := range 4 {
		pool.Submit(i)
	}

	pool.Stop()

	// Every job is handed to the handler even after cancellation, so the
	// handler can record its own outcome.
	require.Equal(t, 4, handled)
	require.Equal(t, 4, canceled)
}

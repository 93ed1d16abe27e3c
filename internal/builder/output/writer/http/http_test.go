package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/glentner/1trc/internal/builder/common"
	"github.com/glentner/1trc/internal/builder/models"
)

func TestWriter(t *testing.T) {
	type testCase struct {
		name        string
		batchSize   uint64
		rows        []models.Row
		wantBatches int
	}

	sampleRows := []models.Row{
		{Station: "Hamburg", Temperature: 12.0},
		{Station: "Accra", Temperature: 26.4},
		{Station: "Oslo", Temperature: 5.7},
		{Station: "Dikson", Temperature: -11.1},
		{Station: "Suva", Temperature: 25.6},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		var (
			mu       sync.Mutex
			payloads []batchPayload
		)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)

			var payload batchPayload
			require.NoError(t, json.Unmarshal(body, &payload))

			mu.Lock()
			payloads = append(payloads, payload)
			mu.Unlock()

			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		config := &models.HTTPParams{
			Endpoint:  server.URL,
			BatchSize: tc.batchSize,
			Timeout:   5 * time.Second,
		}

		w := NewWriter(context.Background(), config, 2)
		require.NoError(t, w.Init())

		for _, row := range tc.rows {
			require.NoError(t, w.WriteRow(row))
		}

		require.NoError(t, w.Teardown())
		require.Equal(t, uint64(len(tc.rows)), w.Rows())

		require.Len(t, payloads, tc.wantBatches)

		var received []rowPayload

		for _, payload := range payloads {
			require.Equal(t, 2, payload.Partition)

			received = append(received, payload.Rows...)
		}

		require.Len(t, received, len(tc.rows))

		for i, row := range tc.rows {
			require.Equal(t, rowPayload{Station: row.Station, Temperature: row.Temperature}, received[i])
		}
	}

	testCases := []testCase{
		{name: "single batch", batchSize: 100, rows: sampleRows, wantBatches: 1},
		{name: "multiple batches", batchSize: 2, rows: sampleRows, wantBatches: 3},
		{name: "no rows no requests", batchSize: 10, rows: nil, wantBatches: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			testFunc(t, tc)
		})
	}
}

func TestWriterServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "no room left", http.StatusInsufficientStorage)
	}))
	defer server.Close()

	config := &models.HTTPParams{
		Endpoint:  server.URL,
		BatchSize: 1,
		Timeout:   time.Second,
	}

	w := NewWriter(context.Background(), config, 4)
	require.NoError(t, w.Init())

	err := w.WriteRow(models.Row{Station: "Hamburg", Temperature: 12.0})
	require.Error(t, err)

	var ioErr *common.IOFailureError
	require.ErrorAs(t, err, &ioErr)
	require.Equal(t, 4, ioErr.Partition)
}

func TestWriterCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	config := &models.HTTPParams{
		Endpoint:  "http://localhost:1",
		BatchSize: 10,
		Timeout:   time.Second,
	}

	w := NewWriter(ctx, config, 0)
	require.NoError(t, w.Init())

	err := w.WriteRow(models.Row{Station: "Oslo", Temperature: 5.7})
	require.Error(t, err)

	var cancelErr *common.ContextCancelError
	require.ErrorAs(t, err, &cancelErr)
}

package stations

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glentner/1trc/internal/builder/common"
)

func TestSelectPool(t *testing.T) {
	type testCase struct {
		name    string
		count   int
		spread  float64
		seed    uint64
		wantErr bool
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		pool, err := SelectPool(tc.count, tc.spread, tc.seed)
		if tc.wantErr {
			require.Error(t, err)

			var reqErr *common.InvalidRequestError
			require.ErrorAs(t, err, &reqErr)

			return
		}

		require.NoError(t, err)
		require.Len(t, pool, tc.count)

		seen := make(map[string]struct{}, len(pool))
		for _, station := range pool {
			require.NotContains(t, seen, station.Name)
			seen[station.Name] = struct{}{}

			require.Equal(t, tc.spread, station.Spread)
		}
	}

	testCases := []testCase{
		{name: "single station", count: 1, spread: 10, seed: 42},
		{name: "typical pool", count: 100, spread: 10, seed: 42},
		{name: "full reference list", count: ReferenceCount(), spread: 5, seed: 7},
		{name: "more than reference list", count: ReferenceCount()*2 + 10, spread: 10, seed: 42},
		{name: "zero count", count: 0, spread: 10, seed: 42, wantErr: true},
		{name: "negative count", count: -5, spread: 10, seed: 42, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			testFunc(t, tc)
		})
	}
}

func TestSelectPoolDeterminism(t *testing.T) {
	first, err := SelectPool(50, 10, 1234)
	require.NoError(t, err)

	second, err := SelectPool(50, 10, 1234)
	require.NoError(t, err)

	require.Equal(t, first, second)

	other, err := SelectPool(50, 10, 4321)
	require.NoError(t, err)

	require.NotEqual(t, first, other)
}

func TestSelectPoolSuffixedNames(t *testing.T) {
	pool, err := SelectPool(ReferenceCount()+3, 10, 99)
	require.NoError(t, err)

	for _, station := range pool[ReferenceCount():] {
		require.Regexp(t, ` 2$`, station.Name)
	}
}

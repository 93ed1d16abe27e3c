package rows

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glentner/1trc/internal/builder/models"
	"github.com/glentner/1trc/internal/builder/plan"
	"github.com/glentner/1trc/internal/builder/stations"
)

func testPool(t *testing.T, count int) []stations.Station {
	t.Helper()

	pool, err := stations.SelectPool(count, 10, 42)
	require.NoError(t, err)

	return pool
}

func drain(s *Stream) []models.Row {
	var result []models.Row

	for {
		row, ok := s.Next()
		if !ok {
			return result
		}

		result = append(result, row)
	}
}

func TestStream(t *testing.T) {
	type testCase struct {
		name      string
		partition plan.Partition
		seed      uint64
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		pool := testPool(t, 20)

		stream := NewStream(tc.partition, pool, tc.seed)
		require.Equal(t, tc.partition.Rows, stream.Remaining())

		produced := drain(stream)
		require.Len(t, produced, int(tc.partition.Rows))
		require.Zero(t, stream.Remaining())

		names := make(map[string]struct{}, len(pool))
		for _, station := range pool {
			names[station.Name] = struct{}{}
		}

		for _, row := range produced {
			require.Contains(t, names, row.Station)
			require.GreaterOrEqual(t, row.Temperature, -99.9)
			require.LessOrEqual(t, row.Temperature, 99.9)

			rounded := math.Round(row.Temperature*10) / 10
			require.InDelta(t, rounded, row.Temperature, 1e-9)
		}

		row, ok := stream.Next()
		require.False(t, ok)
		require.Equal(t, models.Row{}, row)
	}

	testCases := []testCase{
		{name: "empty partition", partition: plan.Partition{Index: 0, Rows: 0}, seed: 1},
		{name: "single row", partition: plan.Partition{Index: 0, Rows: 1}, seed: 1},
		{name: "many rows", partition: plan.Partition{Index: 2, Rows: 5000}, seed: 99},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			testFunc(t, tc)
		})
	}
}

func TestStreamDeterminism(t *testing.T) {
	pool := testPool(t, 20)
	partition := plan.Partition{Index: 3, Rows: 1000}

	first := drain(NewStream(partition, pool, 42))
	second := drain(NewStream(partition, pool, 42))
	require.Equal(t, first, second)

	otherSeed := drain(NewStream(partition, pool, 43))
	require.NotEqual(t, first, otherSeed)

	otherIndex := drain(NewStream(plan.Partition{Index: 4, Rows: 1000}, pool, 42))
	require.NotEqual(t, first, otherIndex)
}

func TestSubSeed(t *testing.T) {
	require.Equal(t, SubSeed(42, 0), SubSeed(42, 0))
	require.NotEqual(t, SubSeed(42, 0), SubSeed(42, 1))
	require.NotEqual(t, SubSeed(42, 0), SubSeed(43, 0))
}

func TestSample(t *testing.T) {
	station := stations.Station{Name: "Hamburg", Mean: 9.7, Spread: 10}
	rng := rand.New(rand.NewPCG(1, 2))

	var sum float64

	const n = 100_000

	for range n {
		value := Sample(station, rng)

		require.GreaterOrEqual(t, value, -99.9)
		require.LessOrEqual(t, value, 99.9)

		sum += value
	}

	require.InDelta(t, station.Mean, sum/n, 0.5)
}

package rows

import (
	"math/rand/v2"

	"github.com/glentner/1trc/internal/builder/models"
	"github.com/glentner/1trc/internal/builder/plan"
	"github.com/glentner/1trc/internal/builder/stations"
)

// Stream yields the rows of one partition in order. It is single use and not
// safe for concurrent access; every partition gets its own Stream.
type Stream struct {
	pool      []stations.Station
	rng       *rand.Rand
	remaining uint64
}

// NewStream returns a row stream for the partition. The per-partition state
// is derived from the run seed and the partition index only, so partitions
// can be generated in any order, or concurrently, with identical output.
func NewStream(p plan.Partition, pool []stations.Station, seed uint64) *Stream {
	subSeed := SubSeed(seed, p.Index)

	return &Stream{
		pool:      pool,
		rng:       rand.New(rand.NewPCG(subSeed, subSeed^uint64(p.Index))),
		remaining: p.Rows,
	}
}

// Next returns the next row, or false when the partition is exhausted.
func (s *Stream) Next() (models.Row, bool) {
	if s.remaining == 0 {
		return models.Row{}, false
	}

	s.remaining--

	station := s.pool[s.rng.IntN(len(s.pool))]

	return models.Row{
		Station:     station.Name,
		Temperature: Sample(station, s.rng),
	}, true
}

// Remaining returns the number of rows not yet produced.
func (s *Stream) Remaining() uint64 {
	return s.remaining
}

// SubSeed decorrelates per-partition generator state from the run seed using
// a splitmix64 step, so adjacent partition indexes do not produce adjacent
// generator states.
func SubSeed(seed uint64, index int) uint64 {
	z := seed + uint64(index+1)*0x9E3779B97F4A7C15

	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB

	return z ^ (z >> 31)
}

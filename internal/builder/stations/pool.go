package stations

import (
	"fmt"
	"math/rand/v2"

	"github.com/glentner/1trc/internal/builder/common"
)

// SelectPool returns a deterministic pool of count stations derived from the
// built-in reference list. The same (count, spread, seed) triple always yields
// the same pool in the same order. When count exceeds the reference list,
// extra stations reuse reference names with a numeric suffix, so "Hamburg 2"
// is a distinct station sharing the climate of "Hamburg".
func SelectPool(count int, spread float64, seed uint64) ([]Station, error) {
	if count <= 0 {
		return nil, common.NewInvalidRequestError("station count should be greater than 0, got %v", count)
	}

	rng := rand.New(rand.NewPCG(seed, uint64(len(reference))))

	perm := rng.Perm(len(reference))
	pool := make([]Station, 0, count)

	for i := 0; i < count; i++ {
		base := reference[perm[i%len(reference)]]

		station := Station{
			Name:   base.Name,
			Mean:   base.Mean,
			Spread: spread,
		}

		// Second and later passes over the reference list get suffixed
		// names so every pool entry stays unique.
		if round := i / len(reference); round > 0 {
			station.Name = fmt.Sprintf("%s %d", base.Name, round+1)
		}

		pool = append(pool, station)
	}

	return pool, nil
}

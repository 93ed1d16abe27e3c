package rows

import (
	"math"
	"math/rand/v2"

	"github.com/glentner/1trc/internal/builder/stations"
)

const (
	// Temperatures are clamped to the range downstream challenge parsers
	// assume, three significant digits with one fractional.
	minTemperature = -99.9
	maxTemperature = 99.9
)

// Sample draws one temperature for the station, normally distributed around
// its mean, clamped and rounded to one decimal place.
func Sample(station stations.Station, rng *rand.Rand) float64 {
	value := station.Mean + station.Spread*rng.NormFloat64()

	value = math.Round(value*10) / 10

	if value < minTemperature {
		return minTemperature
	}

	if value > maxTemperature {
		return maxTemperature
	}

	return value
}

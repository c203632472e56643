// Package sampling approximates a basis-state probability the way hardware
// would: by counting outcomes over repeated measurements.
package sampling

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"qlct/internal/errors"
)

// ErrInvalidShots is returned for a non-positive shot count.
var ErrInvalidShots = errors.New("shots must be positive")

// NewSource returns a PCG source for one estimation call. Equal seeds give
// equal draw sequences.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// Estimate draws shots independent outcomes from probs and returns the
// fraction equal to target. src is consumed by this call only; pass a fresh
// NewSource per call for reproducible, independent estimates.
func Estimate(probs []float64, target, shots int, src rand.Source) (float64, error) {
	if shots < 1 {
		return 0, errors.Wrapf(ErrInvalidShots, "got %d", shots)
	}
	if target < 0 || target >= len(probs) {
		return 0, errors.Newf("target %d outside distribution of %d outcomes", target, len(probs))
	}

	dist := distuv.NewCategorical(probs, src)
	hits := 0
	for range shots {
		if int(dist.Rand()) == target {
			hits++
		}
	}
	return float64(hits) / float64(shots), nil
}

// StandardError is √(p(1-p)/shots), the spread of Estimate around p.
func StandardError(p float64, shots int) float64 {
	return distuv.Bernoulli{P: p}.StdDev() / math.Sqrt(float64(shots))
}

package sampling

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"qlct/internal/errors"
)

func TestEstimateIsReproducibleWithSeed(t *testing.T) {
	probs := []float64{0.1, 0.2, 0.3, 0.4}

	a, err := Estimate(probs, 2, 500, NewSource(42))
	require.NoError(t, err)
	b, err := Estimate(probs, 2, 500, NewSource(42))
	require.NoError(t, err)
	assert.Equal(t, math.Float64bits(a), math.Float64bits(b))
}

func TestEstimateStaysInUnitInterval(t *testing.T) {
	probs := []float64{0.25, 0.25, 0.25, 0.25}
	for seed := uint64(1); seed <= 20; seed++ {
		got, err := Estimate(probs, 3, 37, NewSource(seed))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 1.0)
	}
}

func TestEstimateDegenerateDistributions(t *testing.T) {
	certain := []float64{0, 0, 1, 0}

	got, err := Estimate(certain, 2, 100, NewSource(7))
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	got, err = Estimate(certain, 0, 100, NewSource(7))
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestEstimateConvergesToProbability(t *testing.T) {
	probs := make([]float64, 8)
	for i := range probs {
		probs[i] = (1 - 0.78125) / 7
	}
	probs[5] = 0.78125

	const shots = 5000
	estimates := make([]float64, 20)
	for i := range estimates {
		est, err := Estimate(probs, 5, shots, NewSource(uint64(1000+i)))
		require.NoError(t, err)
		estimates[i] = est
	}

	mean := stat.Mean(estimates, nil)
	se := StandardError(0.78125, shots*len(estimates))
	assert.InDelta(t, 0.78125, mean, 6*se)
}

func TestEstimateValidation(t *testing.T) {
	probs := []float64{0.5, 0.5}

	_, err := Estimate(probs, 0, 0, NewSource(1))
	assert.True(t, errors.Is(err, ErrInvalidShots))

	_, err = Estimate(probs, 0, -3, NewSource(1))
	assert.True(t, errors.Is(err, ErrInvalidShots))

	_, err = Estimate(probs, 2, 10, NewSource(1))
	assert.Error(t, err)

	_, err = Estimate(probs, -1, 10, NewSource(1))
	assert.Error(t, err)
}

func TestStandardError(t *testing.T) {
	assert.InDelta(t, 0.05, StandardError(0.5, 100), 1e-12)
	assert.Equal(t, 0.0, StandardError(1, 100))
}

package timeseries_test

import (
	"testing"

	"github.com/lvmarek/gyrostat/timeseries"
	"github.com/stretchr/testify/assert"
)

// TestMoments_ConstantSequence: for a constant window the mean of squares
// equals the squared mean exactly and the deviation is zero.
func TestMoments_ConstantSequence(t *testing.T) {
	m := timeseries.Moments([]float64{3, 3, 3, 3})

	assert.Equal(t, 3.0, m.Mean)
	assert.Equal(t, 0.0, m.Std)
	assert.Equal(t, 9.0, m.MeanSquare)
	assert.Equal(t, m.Mean*m.Mean, m.MeanSquare, "variance 0 ⇒ ⟨x²⟩ == ⟨x⟩²")
	assert.Equal(t, 4, m.Count)
}

// TestMoments_NonzeroVariance: ⟨x²⟩ and ⟨x⟩² must differ by the population
// variance — the historical squared-mean bug would make them equal.
func TestMoments_NonzeroVariance(t *testing.T) {
	m := timeseries.Moments([]float64{1, 3})

	assert.Equal(t, 2.0, m.Mean)
	assert.Equal(t, 1.0, m.Std, "population std of {1,3} is 1, not sqrt(2)")
	assert.Equal(t, 5.0, m.MeanSquare, "⟨x²⟩ = (1+9)/2")
	assert.NotEqual(t, m.Mean*m.Mean, m.MeanSquare)
	assert.InDelta(t, m.MeanSquare-m.Mean*m.Mean, m.Std*m.Std, 1e-12,
		"⟨x²⟩ − ⟨x⟩² must equal the population variance")
}

// TestMoments_PopulationDivisor pins the divisor to n rather than n-1.
func TestMoments_PopulationDivisor(t *testing.T) {
	m := timeseries.Moments([]float64{2, 4, 4, 4, 5, 5, 7, 9})

	assert.Equal(t, 5.0, m.Mean)
	assert.Equal(t, 2.0, m.Std, "classic population-std example must give exactly 2")
}

package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecayRateExactLine(t *testing.T) {
	// Synthetic dispersion lying exactly on exp(1 - 2*sqrt(8r)).
	ratios := []float64{1, 2, 5, 10, 20, 50, 100}
	disp := make([]float64, len(ratios))
	for i, r := range ratios {
		disp[i] = math.Exp(1 - 2*math.Sqrt(8*r))
	}

	fit, err := DecayRate(ratios, disp)
	require.NoError(t, err)
	require.Equal(t, len(ratios), fit.Points)
	require.InDelta(t, 2.0, fit.Rate, 1e-9)
	require.InDelta(t, 1.0, fit.Intercept, 1e-9)
	require.InDelta(t, 0.0, fit.RMSE, 1e-9)
}

func TestDecayRateSkipsHoles(t *testing.T) {
	ratios := []float64{1, 5, 10, 50}
	disp := []float64{math.Exp(-math.Sqrt(8)), math.NaN(), math.Exp(-math.Sqrt(80)), math.Exp(-math.Sqrt(400))}

	fit, err := DecayRate(ratios, disp)
	require.NoError(t, err)
	require.Equal(t, 3, fit.Points)
	require.InDelta(t, 1.0, fit.Rate, 1e-9)
}

func TestDecayRateErrors(t *testing.T) {
	_, err := DecayRate([]float64{1, 2}, []float64{0.1})
	require.Error(t, err)

	// All holes leaves nothing to fit.
	_, err = DecayRate([]float64{1, 2}, []float64{math.NaN(), math.NaN()})
	require.Error(t, err)
}

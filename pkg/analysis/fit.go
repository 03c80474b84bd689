package analysis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
)

// Fit is a least-squares line through (sqrt(8r), log dispersion).
type Fit struct {
	Rate      float64 // decay rate, positive when dispersion is suppressed
	Intercept float64
	RMSE      float64
	Points    int // valid points used (holes and non-positive values skipped)
}

// DecayRate quantifies the exponential suppression of charge
// dispersion with the EJ/EC ratio. The suppression goes as
// exp(-sqrt(8*EJ/EC)), so the regression runs against sqrt(8r), where
// log dispersion is genuinely linear; Rate is the negated slope.
func DecayRate(ratios, dispersion []float64) (Fit, error) {
	if len(ratios) != len(dispersion) {
		return Fit{}, fmt.Errorf("mismatched series lengths: %d vs %d", len(ratios), len(dispersion))
	}

	xs := make([]float64, 0, len(ratios))
	ys := make([]float64, 0, len(ratios))
	for i := range ratios {
		if math.IsNaN(ratios[i]) || math.IsNaN(dispersion[i]) || dispersion[i] <= 0 {
			continue
		}
		xs = append(xs, math.Sqrt(8*ratios[i]))
		ys = append(ys, math.Log(dispersion[i]))
	}
	if len(xs) < 2 {
		return Fit{}, fmt.Errorf("not enough valid points for fit: %d", len(xs))
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)

	var ss float64
	for i := range xs {
		r := ys[i] - (intercept + slope*xs[i])
		ss += r * r
	}

	return Fit{
		Rate:      -slope,
		Intercept: intercept,
		RMSE:      math.Sqrt(ss / float64(len(xs))),
		Points:    len(xs),
	}, nil
}

package util

import "math"

// Linspace generates points evenly spaced from start to stop,
// inclusive on both ends.
func Linspace(start, stop float64, points int) []float64 {
	if points <= 0 {
		return nil
	}
	if points == 1 {
		return []float64{start}
	}
	out := make([]float64, points)
	step := (stop - start) / float64(points-1)
	for i := 0; i < points; i++ {
		out[i] = start + float64(i)*step
	}
	return out
}

// Logspace generates points spaced evenly per decade from start to
// stop, inclusive on both ends. Both bounds must be positive.
func Logspace(start, stop float64, points int) []float64 {
	if points <= 0 || start <= 0 || stop <= 0 {
		return nil
	}
	if points == 1 {
		return []float64{start}
	}
	out := make([]float64, points)
	logStart := math.Log10(start)
	logStop := math.Log10(stop)
	step := (logStop - logStart) / float64(points-1)
	for i := 0; i < points; i++ {
		out[i] = math.Pow(10, logStart+float64(i)*step)
	}
	return out
}

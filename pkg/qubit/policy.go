package qubit

import "math"

// TruncationPolicy maps an EJ/EC ratio to the charge-basis truncation
// size N (basis dimension 2N+1).
type TruncationPolicy func(ratio float64) int

const (
	// DefaultMargin is the safety margin added on top of the
	// turning-point estimate.
	DefaultMargin = 6

	// minTruncation keeps the basis dimension at 9 or more even as
	// the ratio goes to zero.
	minTruncation = 4
)

// DefaultTruncation sizes the basis as ceil(sqrt(8*ratio)) + margin.
// The low-lying states of the effective oscillator spread over about
// (8*EJ/EC)^(1/4) charge states, so sqrt(8*ratio) plus a few states of
// margin keeps the truncation error of the lowest levels well below
// numerical tolerance for ratios up to a few hundred.
func DefaultTruncation(margin int) TruncationPolicy {
	if margin < 1 {
		margin = 1
	}
	return func(ratio float64) int {
		n := margin
		if ratio > 0 {
			n = int(math.Ceil(math.Sqrt(8*ratio))) + margin
		}
		if n < minTruncation {
			n = minTruncation
		}
		return n
	}
}

// FixedTruncation ignores the ratio and always uses n.
func FixedTruncation(n int) TruncationPolicy {
	return func(float64) int { return n }
}

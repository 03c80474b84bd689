package qubit

import (
	"errors"
	"fmt"
)

// Domain errors for spectrum computations.
var (
	// ErrInvalidDimension indicates a charge-basis truncation below N=1.
	ErrInvalidDimension = errors.New("qubit: invalid truncation size (need N >= 1)")

	// ErrInvalidParameter indicates a non-positive energy where positivity is required.
	ErrInvalidParameter = errors.New("qubit: invalid energy parameter")

	// ErrNumericalFailure indicates eigensolver non-convergence or a
	// non-finite value in its output.
	ErrNumericalFailure = errors.New("qubit: eigensolver failed")
)

// PointError tags a failure with the sweep point that produced it.
type PointError struct {
	Ratio   float64
	N       int
	Wrapped error
}

func (e *PointError) Error() string {
	return fmt.Sprintf("ratio %g (N=%d): %v", e.Ratio, e.N, e.Wrapped)
}

func (e *PointError) Unwrap() error { return e.Wrapped }

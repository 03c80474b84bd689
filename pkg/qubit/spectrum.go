package qubit

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Spectrum diagonalizes a real-symmetric Hamiltonian and returns all
// eigenvalues in ascending order.
func Spectrum(h *mat.SymDense) ([]float64, error) {
	var es mat.EigenSym
	if ok := es.Factorize(h, false); !ok {
		return nil, fmt.Errorf("%w: factorization did not converge", ErrNumericalFailure)
	}

	vals := es.Values(nil)
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: non-finite eigenvalue in output", ErrNumericalFailure)
		}
	}
	// EigenSym already reports ascending values; keep the ordering
	// guarantee independent of the backend.
	sort.Float64s(vals)

	return vals, nil
}

// SpectrumVectors is Spectrum with eigenvectors. Column i of the
// returned matrix is the eigenvector of eigenvalue i, in the solver's
// ascending order.
func SpectrumVectors(h *mat.SymDense) ([]float64, *mat.Dense, error) {
	var es mat.EigenSym
	if ok := es.Factorize(h, true); !ok {
		return nil, nil, fmt.Errorf("%w: factorization did not converge", ErrNumericalFailure)
	}

	vals := es.Values(nil)
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, nil, fmt.Errorf("%w: non-finite eigenvalue in output", ErrNumericalFailure)
		}
	}

	var vecs mat.Dense
	es.VectorsTo(&vecs)

	return vals, &vecs, nil
}

// Levels builds the Hamiltonian for the given truncation and
// parameters and returns its lowest k eigenvalues.
func Levels(n int, p Params, k int) ([]float64, error) {
	h, err := Hamiltonian(n, p)
	if err != nil {
		return nil, err
	}
	vals, err := Spectrum(h)
	if err != nil {
		return nil, err
	}
	if k > len(vals) {
		k = len(vals)
	}
	return vals[:k], nil
}

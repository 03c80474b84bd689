package qubit

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Hamiltonian builds the transmon Hamiltonian in the charge basis
// truncated to states -n..n (dimension 2n+1). Diagonal entries carry
// the charging term 4*EC*(k-ng)^2, the nearest-neighbor off-diagonals
// carry the Cooper-pair tunneling term -EJ/2. The result is real
// symmetric.
//
// The builder does not check that n is large enough for the requested
// EJ/EC; convergence of the low-lying spectrum is the caller's
// responsibility (see TruncationPolicy).
func Hamiltonian(n int, p Params) (*mat.SymDense, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDimension, n)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	d := 2*n + 1
	h := mat.NewSymDense(d, nil)
	for i := 0; i < d; i++ {
		k := float64(i - n)
		h.SetSym(i, i, 4*p.EC*(k-p.Ng)*(k-p.Ng))
		if i+1 < d {
			h.SetSym(i, i+1, -p.EJ/2)
		}
	}

	return h, nil
}

package qubit

import (
	"errors"
	"math"
	"testing"
)

func TestHamiltonianEntries(t *testing.T) {
	p := Params{EC: 0.25, EJ: 2.0, Ng: 0.1}
	h, err := Hamiltonian(2, p)
	if err != nil {
		t.Fatalf("Hamiltonian() error: %v", err)
	}

	d := 5
	r, c := h.Dims()
	if r != d || c != d {
		t.Fatalf("dims = %dx%d, want %dx%d", r, c, d, d)
	}

	for i := 0; i < d; i++ {
		k := float64(i - 2)
		want := 4 * p.EC * (k - p.Ng) * (k - p.Ng)
		if got := h.At(i, i); math.Abs(got-want) > 1e-12 {
			t.Errorf("diagonal [%d][%d] = %v, want %v", i, i, got, want)
		}
		if i+1 < d {
			if got := h.At(i, i+1); math.Abs(got-(-p.EJ/2)) > 1e-12 {
				t.Errorf("off-diagonal [%d][%d] = %v, want %v", i, i+1, got, -p.EJ/2)
			}
		}
	}

	// Symmetric and real by construction, with no coupling beyond
	// nearest neighbors.
	for i := 0; i < d; i++ {
		for j := 0; j < d; j++ {
			if h.At(i, j) != h.At(j, i) {
				t.Errorf("asymmetry at [%d][%d]", i, j)
			}
			if j > i+1 && h.At(i, j) != 0 {
				t.Errorf("unexpected coupling at [%d][%d] = %v", i, j, h.At(i, j))
			}
		}
	}
}

func TestHamiltonianInvalidInputs(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		p       Params
		wantErr error
	}{
		{
			name:    "zero truncation",
			n:       0,
			p:       Params{EC: 0.3, EJ: 15},
			wantErr: ErrInvalidDimension,
		},
		{
			name:    "negative truncation",
			n:       -3,
			p:       Params{EC: 0.3, EJ: 15},
			wantErr: ErrInvalidDimension,
		},
		{
			name:    "zero charging energy",
			n:       5,
			p:       Params{EC: 0, EJ: 15},
			wantErr: ErrInvalidParameter,
		},
		{
			name:    "negative charging energy",
			n:       5,
			p:       Params{EC: -0.3, EJ: 15},
			wantErr: ErrInvalidParameter,
		},
		{
			name:    "negative Josephson energy",
			n:       5,
			p:       Params{EC: 0.3, EJ: -1},
			wantErr: ErrInvalidParameter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Hamiltonian(tt.n, tt.p)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Hamiltonian() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestHamiltonianOffsetChargeUnrestricted(t *testing.T) {
	// ng has no range restriction; out-of-window values must build.
	for _, ng := range []float64{-1.7, 0, 0.5, 3.2} {
		if _, err := Hamiltonian(4, Params{EC: 0.3, EJ: 6, Ng: ng}); err != nil {
			t.Errorf("Hamiltonian(ng=%g) error: %v", ng, err)
		}
	}
}

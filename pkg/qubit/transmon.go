package qubit

import "fmt"

// Params are the charge-basis Hamiltonian parameters. EC and EJ share
// one frequency unit (GHz by convention); Ng is the dimensionless
// offset charge, periodic with period 1.
type Params struct {
	EC float64 // charging energy
	EJ float64 // Josephson energy
	Ng float64 // offset charge
}

func (p Params) Validate() error {
	if p.EC <= 0 {
		return fmt.Errorf("%w: EC must be positive, got %g", ErrInvalidParameter, p.EC)
	}
	if p.EJ < 0 {
		return fmt.Errorf("%w: EJ must be non-negative, got %g", ErrInvalidParameter, p.EJ)
	}
	return nil
}

// Transmon is a qubit design: a fixed charging energy plus the rule
// for sizing the charge basis as the EJ/EC ratio grows.
type Transmon struct {
	EC     float64
	Policy TruncationPolicy
}

func NewTransmon(ec float64, policy TruncationPolicy) (*Transmon, error) {
	if ec <= 0 {
		return nil, fmt.Errorf("%w: EC must be positive, got %g", ErrInvalidParameter, ec)
	}
	if policy == nil {
		policy = DefaultTruncation(DefaultMargin)
	}
	return &Transmon{EC: ec, Policy: policy}, nil
}

// At resolves a design ratio into the truncation size and Hamiltonian
// parameters for that operating point. Ng is left at zero.
func (t *Transmon) At(ratio float64) (int, Params) {
	return t.Policy(ratio), Params{EC: t.EC, EJ: ratio * t.EC}
}

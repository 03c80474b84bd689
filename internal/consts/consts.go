package consts

const (
	CHARGE      = 1.6021918e-19   // Elementary charge (C)
	BOLTZMANN   = 1.3806226e-23   // Boltzmann constant (J/K)
	PLANCK      = 6.62607015e-34  // Planck constant (J*s)
	FLUXQUANTUM = 2.067833848e-15 // Magnetic flux quantum (Wb)
	GHZ         = 1e9             // Hz per GHz
)

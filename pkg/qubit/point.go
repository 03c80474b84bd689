package qubit

import "math"

// DispersionLevels is how many low-lying levels get a per-level charge
// dispersion. Higher levels are truncation artifacts.
const DispersionLevels = 3

// PointResult holds the derived quantities of one (EC, EJ) operating
// point. F01 is the qubit transition frequency, Alpha the
// anharmonicity (negative for a transmon), Dispersion[i] the
// peak-to-peak shift of level i between the charge-noise extremes
// ng=0 and ng=0.5, and TransitionDispersion the same measure for F01
// itself.
type PointResult struct {
	EC    float64
	EJ    float64
	Ratio float64

	F01   float64
	Alpha float64

	Dispersion           [DispersionLevels]float64
	TransitionDispersion float64
}

// ComputePoint evaluates one operating point with charge-basis
// truncation n. It solves the spectrum at ng=0 for frequency and
// anharmonicity, and again at ng=0.5 to bound the charge dispersion.
func ComputePoint(n int, ec, ej float64) (PointResult, error) {
	zero, err := Levels(n, Params{EC: ec, EJ: ej, Ng: 0}, DispersionLevels)
	if err != nil {
		return PointResult{}, err
	}
	half, err := Levels(n, Params{EC: ec, EJ: ej, Ng: 0.5}, DispersionLevels)
	if err != nil {
		return PointResult{}, err
	}

	res := PointResult{EC: ec, EJ: ej, Ratio: ej / ec}
	res.F01 = zero[1] - zero[0]
	res.Alpha = zero[2] - 2*zero[1] + zero[0]
	for i := range res.Dispersion {
		res.Dispersion[i] = math.Abs(half[i] - zero[i])
	}
	res.TransitionDispersion = math.Abs((half[1] - half[0]) - (zero[1] - zero[0]))

	return res, nil
}

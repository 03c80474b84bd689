package analysis

import (
	"math"

	"github.com/qsimlab/toy-transmon/pkg/qubit"
)

// Result series names. Failed sweep points leave NaN holes at their
// index in every series except the independent variable.
const (
	SeriesRatio  = "RATIO"
	SeriesNg     = "NG"
	SeriesF01    = "F01"
	SeriesAlpha  = "ALPHA"
	SeriesDisp0  = "DISP0"
	SeriesDisp1  = "DISP1"
	SeriesDisp2  = "DISP2"
	SeriesDisp01 = "DISP01"
)

type Analysis interface {
	Setup(t *qubit.Transmon) error
	Execute() error
	GetResults() map[string][]float64
}

type BaseAnalysis struct {
	Transmon  *qubit.Transmon
	results   map[string][]float64 // key: series name, value: result by sweep index
	tolerance struct {
		abstol float64
		reltol float64
	}
}

func NewBaseAnalysis() *BaseAnalysis {
	ba := &BaseAnalysis{results: make(map[string][]float64)}

	ba.tolerance.abstol = 1e-12
	ba.tolerance.reltol = 1e-6

	return ba
}

// Converged reports whether two evaluations of the same quantity agree
// within tolerance. Used to sanity-check truncation policies.
func (a *BaseAnalysis) Converged(oldVal, newVal float64) bool {
	diff := math.Abs(newVal - oldVal)
	return diff <= a.tolerance.abstol || diff <= a.tolerance.reltol*math.Abs(newVal)
}

func (a *BaseAnalysis) StoreValue(name string, value float64) {
	if _, exists := a.results[name]; !exists {
		a.results[name] = make([]float64, 0)
	}
	a.results[name] = append(a.results[name], value)
}

func (a *BaseAnalysis) GetResults() map[string][]float64 {
	return a.results
}

package analysis

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"

	"github.com/qsimlab/toy-transmon/pkg/qubit"
	"github.com/qsimlab/toy-transmon/pkg/util"
)

// chargeLevels is how many bands a charge sweep records.
const chargeLevels = 4

// ChargeSweep traces the energy bands of one operating point over a
// full period of the offset charge. Its peak-to-peak f01 variation is
// the charge dispersion a spectroscopy plot would show, and a
// cross-check for the two-point bound of qubit.ComputePoint.
type ChargeSweep struct {
	BaseAnalysis
	ratio float64
	ngs   []float64
	log   zerolog.Logger
}

// NewChargeSweep sweeps ng over [0, 1] with the given number of grid
// points at a fixed EJ/EC ratio.
func NewChargeSweep(ratio float64, points int, log zerolog.Logger) *ChargeSweep {
	return &ChargeSweep{
		BaseAnalysis: *NewBaseAnalysis(),
		ratio:        ratio,
		ngs:          util.Linspace(0, 1, points),
		log:          log.With().Str("component", "charge_sweep").Logger(),
	}
}

func (cs *ChargeSweep) Setup(t *qubit.Transmon) error {
	if t == nil {
		return fmt.Errorf("transmon not set")
	}
	if cs.ratio < 0 {
		return fmt.Errorf("negative EJ/EC ratio: %g", cs.ratio)
	}
	if len(cs.ngs) < 2 {
		return fmt.Errorf("offset-charge grid needs at least 2 points, got %d", len(cs.ngs))
	}
	cs.Transmon = t
	return nil
}

func (cs *ChargeSweep) Execute() error {
	if cs.Transmon == nil {
		return fmt.Errorf("transmon not set")
	}

	n, p := cs.Transmon.At(cs.ratio)
	for _, ng := range cs.ngs {
		p.Ng = ng
		vals, err := qubit.Levels(n, p, chargeLevels)
		if err != nil {
			return fmt.Errorf("charge sweep at ng=%g: %w", ng, err)
		}

		cs.StoreValue(SeriesNg, ng)
		for i, v := range vals {
			cs.StoreValue(fmt.Sprintf("E%d", i), v)
		}
		cs.StoreValue(SeriesF01, vals[1]-vals[0])
	}

	cs.log.Debug().
		Int("points", len(cs.ngs)).
		Float64("ratio", cs.ratio).
		Float64("peak_to_peak", cs.PeakToPeak()).
		Msg("Charge sweep finished")

	return nil
}

// PeakToPeak reports the full f01 variation over the ng grid.
func (cs *ChargeSweep) PeakToPeak() float64 {
	f01 := cs.results[SeriesF01]
	if len(f01) == 0 {
		return math.NaN()
	}
	return floats.Max(f01) - floats.Min(f01)
}

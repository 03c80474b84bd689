package analysis

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/qsimlab/toy-transmon/pkg/qubit"
	"github.com/qsimlab/toy-transmon/pkg/util"
)

// Grid scale types for the ratio axis.
const (
	ScaleLinear = "LIN"
	ScaleDecade = "DEC"
)

// pointSeries are the dependent series a ratio sweep produces, in
// table order.
var pointSeries = []string{
	SeriesF01, SeriesAlpha, SeriesDisp0, SeriesDisp1, SeriesDisp2, SeriesDisp01,
}

// RatioSweep evaluates the derived qubit quantities over an ordered
// grid of EJ/EC ratios. Points are independent; a failed point is
// recorded as a hole and the sweep continues.
type RatioSweep struct {
	BaseAnalysis
	ratios   []float64
	workers  int
	failures map[int]error
	log      zerolog.Logger
}

// NewRatioSweep builds a sweep over [start, stop] with the given
// number of points, spaced linearly (ScaleLinear) or per decade
// (ScaleDecade).
func NewRatioSweep(start, stop float64, points int, scale string, log zerolog.Logger) *RatioSweep {
	var ratios []float64
	switch scale {
	case ScaleDecade:
		ratios = util.Logspace(start, stop, points)
	default:
		ratios = util.Linspace(start, stop, points)
	}

	return &RatioSweep{
		BaseAnalysis: *NewBaseAnalysis(),
		ratios:       ratios,
		workers:      1,
		failures:     make(map[int]error),
		log:          log.With().Str("component", "ratio_sweep").Logger(),
	}
}

// SetWorkers enables parallel point evaluation. Results are written by
// input index, so the output ordering is identical to a sequential
// run.
func (rs *RatioSweep) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	rs.workers = n
}

// Ratios returns the sweep grid.
func (rs *RatioSweep) Ratios() []float64 { return rs.ratios }

// Failures maps sweep indices to the error that aborted that point.
func (rs *RatioSweep) Failures() map[int]error { return rs.failures }

func (rs *RatioSweep) Setup(t *qubit.Transmon) error {
	if t == nil {
		return fmt.Errorf("transmon not set")
	}
	if len(rs.ratios) == 0 {
		return fmt.Errorf("empty ratio grid")
	}
	rs.Transmon = t
	rs.checkTruncation()
	return nil
}

// checkTruncation re-evaluates the stiffest point with a larger basis
// and warns when the policy looks too tight. Convergence stays the
// caller's responsibility; this only surfaces the symptom early.
func (rs *RatioSweep) checkTruncation() {
	ratio := rs.ratios[len(rs.ratios)-1]
	n, p := rs.Transmon.At(ratio)

	coarse, err := qubit.ComputePoint(n, p.EC, p.EJ)
	if err != nil {
		return
	}
	fine, err := qubit.ComputePoint(n+4, p.EC, p.EJ)
	if err != nil {
		return
	}

	if !rs.Converged(coarse.F01, fine.F01) || !rs.Converged(coarse.Alpha, fine.Alpha) {
		rs.log.Warn().
			Float64("ratio", ratio).
			Int("n", n).
			Msg("Truncation policy may be too small at largest ratio")
	}
}

func (rs *RatioSweep) Execute() error {
	if rs.Transmon == nil {
		return fmt.Errorf("transmon not set")
	}

	start := time.Now()
	points := make([]qubit.PointResult, len(rs.ratios))
	errs := make([]error, len(rs.ratios))

	if rs.workers > 1 {
		rs.runParallel(points, errs)
	} else {
		rs.runSequential(points, errs)
	}

	for i, ratio := range rs.ratios {
		rs.StoreValue(SeriesRatio, ratio)
		if errs[i] != nil {
			rs.failures[i] = errs[i]
			rs.log.Warn().Err(errs[i]).Float64("ratio", ratio).Msg("Sweep point failed, recording hole")
			for _, name := range pointSeries {
				rs.StoreValue(name, math.NaN())
			}
			continue
		}

		pt := points[i]
		rs.StoreValue(SeriesF01, pt.F01)
		rs.StoreValue(SeriesAlpha, pt.Alpha)
		rs.StoreValue(SeriesDisp0, pt.Dispersion[0])
		rs.StoreValue(SeriesDisp1, pt.Dispersion[1])
		rs.StoreValue(SeriesDisp2, pt.Dispersion[2])
		rs.StoreValue(SeriesDisp01, pt.TransitionDispersion)
	}

	rs.log.Info().
		Int("points", len(rs.ratios)).
		Int("failed", len(rs.failures)).
		Dur("elapsed", time.Since(start)).
		Msg("Ratio sweep finished")

	return nil
}

func (rs *RatioSweep) runSequential(points []qubit.PointResult, errs []error) {
	for i := range rs.ratios {
		points[i], errs[i] = rs.computeAt(i)
		if errs[i] == nil {
			rs.log.Debug().
				Float64("ratio", rs.ratios[i]).
				Float64("f01", points[i].F01).
				Float64("alpha", points[i].Alpha).
				Msg("Sweep point done")
		}
	}
}

func (rs *RatioSweep) runParallel(points []qubit.PointResult, errs []error) {
	sem := make(chan struct{}, rs.workers)
	var wg sync.WaitGroup

	for i := range rs.ratios {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			points[i], errs[i] = rs.computeAt(i)
		}(i)
	}

	wg.Wait()
}

func (rs *RatioSweep) computeAt(i int) (qubit.PointResult, error) {
	ratio := rs.ratios[i]
	n, p := rs.Transmon.At(ratio)

	pt, err := qubit.ComputePoint(n, p.EC, p.EJ)
	if err != nil {
		return qubit.PointResult{}, &qubit.PointError{Ratio: ratio, N: n, Wrapped: err}
	}
	return pt, nil
}

package analysis

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/qsimlab/toy-transmon/pkg/qubit"
)

func TestChargeSweepBands(t *testing.T) {
	tr := newTestTransmon(t, nil)

	sweep := NewChargeSweep(10, 11, zerolog.Nop())
	require.NoError(t, sweep.Setup(tr))
	require.NoError(t, sweep.Execute())

	results := sweep.GetResults()
	ngs := results[SeriesNg]
	require.Len(t, ngs, 11)
	require.InDelta(t, 0.0, ngs[0], 1e-12)
	require.InDelta(t, 0.5, ngs[5], 1e-12)
	require.InDelta(t, 1.0, ngs[10], 1e-12)

	for _, name := range []string{"E0", "E1", "E2", "E3", SeriesF01} {
		require.Len(t, results[name], 11, "series %s", name)
	}

	// The bands are periodic in ng with period 1 and symmetric about
	// ng=1/2.
	f01 := results[SeriesF01]
	for i := 0; i <= 5; i++ {
		require.InDelta(t, f01[i], f01[10-i], 1e-6, "band not symmetric at index %d", i)
	}

	require.Greater(t, sweep.PeakToPeak(), 0.0)
}

func TestChargeSweepMatchesTwoPointBound(t *testing.T) {
	// f01(ng) is extremal at ng=0 and ng=0.5, so the peak-to-peak
	// variation over a grid containing both equals the two-point
	// measure of ComputePoint.
	tr := newTestTransmon(t, nil)

	const ratio = 10.0
	sweep := NewChargeSweep(ratio, 21, zerolog.Nop())
	require.NoError(t, sweep.Setup(tr))
	require.NoError(t, sweep.Execute())

	n, p := tr.At(ratio)
	pt, err := qubit.ComputePoint(n, p.EC, p.EJ)
	require.NoError(t, err)

	require.InDelta(t, pt.TransitionDispersion, sweep.PeakToPeak(), 1e-9)
}

func TestChargeSweepSetupValidation(t *testing.T) {
	require.Error(t, NewChargeSweep(10, 11, zerolog.Nop()).Setup(nil))
	require.Error(t, NewChargeSweep(-1, 11, zerolog.Nop()).Setup(newTestTransmon(t, nil)))
	require.Error(t, NewChargeSweep(10, 1, zerolog.Nop()).Setup(newTestTransmon(t, nil)))
}

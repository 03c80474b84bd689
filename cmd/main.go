package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/rs/zerolog"

	"github.com/qsimlab/toy-transmon/internal/config"
	"github.com/qsimlab/toy-transmon/internal/consts"
	"github.com/qsimlab/toy-transmon/pkg/analysis"
	"github.com/qsimlab/toy-transmon/pkg/logger"
	"github.com/qsimlab/toy-transmon/pkg/qubit"
	"github.com/qsimlab/toy-transmon/pkg/util"
)

func main() {
	mode := flag.String("mode", "sweep", "analysis mode: point, sweep, bands")
	ec := flag.Float64("ec", 0, "charging energy in GHz (overrides env)")
	ej := flag.Float64("ej", 0, "Josephson energy in GHz (point mode)")
	ratio := flag.Float64("ratio", 50, "EJ/EC ratio (point and bands modes)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}
	if *ec > 0 {
		cfg.EC = *ec
	}

	log := logger.New(cfg.LogLevel, cfg.Pretty)

	tr, err := qubit.NewTransmon(cfg.EC, qubit.DefaultTruncation(cfg.TruncationMargin))
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid qubit design")
	}

	switch *mode {
	case "point":
		runPoint(tr, *ej, *ratio, log)
	case "sweep":
		runSweep(cfg, tr, log)
	case "bands":
		runBands(cfg, tr, *ratio, log)
	default:
		log.Fatal().Str("mode", *mode).Msg("Unsupported analysis mode")
	}
}

func runPoint(tr *qubit.Transmon, ej, ratio float64, log zerolog.Logger) {
	if ej <= 0 {
		ej = ratio * tr.EC
	}
	n, _ := tr.At(ej / tr.EC)

	pt, err := qubit.ComputePoint(n, tr.EC, ej)
	if err != nil {
		log.Fatal().Err(err).Msg("Point computation failed")
	}

	fmt.Println("\nSingle Point Results:")
	fmt.Println("=====================")
	fmt.Printf("EC            = %s\n", util.FormatFrequency(pt.EC))
	fmt.Printf("EJ            = %s\n", util.FormatFrequency(pt.EJ))
	fmt.Printf("EJ/EC         = %s\n", util.FormatRatio(pt.Ratio))
	fmt.Printf("Basis size    = %d (N=%d)\n", 2*n+1, n)
	fmt.Printf("f01           = %s\n", util.FormatFrequency(pt.F01))
	fmt.Printf("Anharmonicity = %s\n", util.FormatFrequency(pt.Alpha))
	for i, d := range pt.Dispersion {
		fmt.Printf("Dispersion E%d = %s\n", i, util.FormatFrequency(d))
	}
	fmt.Printf("Dispersion f01= %s\n", util.FormatFrequency(pt.TransitionDispersion))

	// Junction equivalents. Energies in GHz convert through Planck.
	capacitance := consts.CHARGE * consts.CHARGE / (2 * pt.EC * consts.GHZ * consts.PLANCK)
	critical := 2 * math.Pi * pt.EJ * consts.GHZ * consts.PLANCK / consts.FLUXQUANTUM
	fmt.Println("\nJunction Equivalents:")
	fmt.Printf("Shunt capacitance = %s\n", util.FormatValueFactor(capacitance, "F"))
	fmt.Printf("Critical current  = %s\n", util.FormatValueFactor(critical, "A"))
}

func runSweep(cfg *config.Config, tr *qubit.Transmon, log zerolog.Logger) {
	sweep := analysis.NewRatioSweep(cfg.RatioMin, cfg.RatioMax, cfg.RatioPoints, cfg.RatioScale, log)
	sweep.SetWorkers(cfg.Workers)

	if err := sweep.Setup(tr); err != nil {
		log.Fatal().Err(err).Msg("Sweep setup failed")
	}
	if err := sweep.Execute(); err != nil {
		log.Fatal().Err(err).Msg("Sweep execution failed")
	}

	printSweepResults(sweep.GetResults())

	if len(sweep.Failures()) > 0 {
		fmt.Printf("\n%d point(s) failed:\n", len(sweep.Failures()))
		for i, ferr := range sweep.Failures() {
			fmt.Printf("  index %d: %v\n", i, ferr)
		}
	}

	if fit, err := analysis.DecayRate(sweep.GetResults()[analysis.SeriesRatio], sweep.GetResults()[analysis.SeriesDisp1]); err == nil {
		fmt.Printf("\nDispersion decay fit: rate=%.3f per sqrt(8r), rmse=%.3f (%d points)\n",
			fit.Rate, fit.RMSE, fit.Points)
	}
}

func printSweepResults(results map[string][]float64) {
	ratios := results[analysis.SeriesRatio]

	fmt.Printf("\nRatio Sweep Results (%d points):\n", len(ratios))
	fmt.Println("EJ/EC      f01            Anharmonicity    Dispersion(E1)   Dispersion(f01)")
	fmt.Println("-----------------------------------------------------------------------------")

	for i := range ratios {
		fmt.Printf("%s  ", util.FormatRatio(ratios[i]))
		for _, name := range []string{analysis.SeriesF01, analysis.SeriesAlpha, analysis.SeriesDisp1, analysis.SeriesDisp01} {
			v := results[name][i]
			if math.IsNaN(v) {
				fmt.Printf("%-15s  ", "n/a")
				continue
			}
			fmt.Printf("%-15s  ", util.FormatFrequency(v))
		}
		fmt.Println()
	}
}

func runBands(cfg *config.Config, tr *qubit.Transmon, ratio float64, log zerolog.Logger) {
	sweep := analysis.NewChargeSweep(ratio, cfg.NgPoints, log)

	if err := sweep.Setup(tr); err != nil {
		log.Fatal().Err(err).Msg("Charge sweep setup failed")
	}
	if err := sweep.Execute(); err != nil {
		log.Fatal().Err(err).Msg("Charge sweep execution failed")
	}

	results := sweep.GetResults()
	ngs := results[analysis.SeriesNg]

	fmt.Printf("\nCharge Bands at EJ/EC = %s (%d points):\n", util.FormatRatio(ratio), len(ngs))
	fmt.Println("ng       E0             E1             E2             f01")
	fmt.Println("--------------------------------------------------------------")
	for i := range ngs {
		fmt.Printf("%5.3f  %-13s  %-13s  %-13s  %s\n",
			ngs[i],
			util.FormatFrequency(results["E0"][i]),
			util.FormatFrequency(results["E1"][i]),
			util.FormatFrequency(results["E2"][i]),
			util.FormatFrequency(results[analysis.SeriesF01][i]))
	}

	fmt.Printf("\nPeak-to-peak f01 variation: %s\n", util.FormatFrequency(sweep.PeakToPeak()))
}

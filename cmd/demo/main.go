package main

import (
	"flag"
	"fmt"

	"output-floor/internal/config"
	"output-floor/internal/floor"
	"output-floor/internal/model"
)

// Demo:
// - Build a representative RWA profile (or load one via --config)
// - Evaluate the fully phased-in output floor
// - Sweep the Basel phase-in timetable to show how models fit together
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	outCSV := flag.String("out", "", "Optional path to write schedule CSV (e.g. results/schedule.csv)")
	flag.Parse()

	// Defaults (can be overridden via --config): a mid-size universal bank,
	// figures in whole currency units.
	profile := model.RWAProfile{
		CreditRWA:         400_000_000,
		EquityRWA:         100_000_000,
		OperationalRWA:    50_000_000,
		MarketRWA:         80_000_000,
		CVARWA:            20_000_000,
		InternalModelRWA:  370_000_000,
		InternalModelCost: 5_000_000,
	}
	steps := floor.DefaultSchedule()

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		profile = cfg.Profile.ToModelProfile()
		steps = cfg.Schedule()
	}

	eval := floor.New()
	a, err := eval.Evaluate(profile)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Standardized sum: %.0f  Internal model RWA: %.0f\n",
		a.StandardizedSum, profile.InternalModelRWA)
	fmt.Printf("Output floor (%.1f%%): %.0f\n", a.FloorRatio*100, a.OutputFloor)
	fmt.Printf("Binding RWA: %.0f (%s)\n", a.Binding, a.BindingSource)
	fmt.Printf("Benefit: %.0f vs cost %.0f -> worth it: %v\n\n",
		a.Benefit, profile.InternalModelCost, a.WorthIt)

	result, err := floor.RunSchedule(profile, steps)
	if err != nil {
		panic(err)
	}

	fmt.Println("Phase-in timetable:")
	for _, r := range result.Ledger {
		fmt.Printf(
			"%d ratio=%.3f  floor=%12.0f  binding=%12.0f (%-14s)  add-on=%12.0f  cum=%12.0f\n",
			r.Year,
			r.Ratio,
			r.OutputFloor,
			r.Binding,
			string(r.BindingSource),
			r.FloorAddOn,
			r.CumFloorAddOn,
		)
	}

	if *outCSV != "" {
		if err := floor.WriteScheduleCSV(*outCSV, result.Ledger); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}

	fmt.Printf("\nDone. Total floor add-on over phase-in: %.0f\n", result.TotalFloorAddOn)
}

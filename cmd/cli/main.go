package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"output-floor/internal/analysis"
	"output-floor/internal/config"
	"output-floor/internal/data"
	"output-floor/internal/floor"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "evaluate":
		cmdEvaluate(os.Args[2:])
	case "schedule":
		cmdSchedule(os.Args[2:])
	case "rank":
		cmdRank(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli evaluate --config examples/config.yaml")
	fmt.Println("  cli schedule --config examples/config.yaml --out results/schedule.csv")
	fmt.Println("  cli rank --portfolio examples/portfolio.json")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - evaluate computes the output floor, binding RWA and cost-benefit verdict")
	fmt.Println("  - schedule sweeps the Basel phase-in timetable and writes a per-year CSV")
	fmt.Println("  - rank orders portfolio entities by how much the floor costs them")
}

func cmdEvaluate(args []string) {
	fs := flag.NewFlagSet("evaluate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}

	eval, err := floor.NewWithRatio(cfg.Ratio())
	if err != nil {
		panic(err)
	}

	a, err := eval.Evaluate(cfg.Profile.ToModelProfile())
	if err != nil {
		panic(err)
	}

	fmt.Printf("Floor ratio:          %.1f%%\n", a.FloorRatio*100)
	fmt.Printf("Standardized sum:     %.2f\n", a.StandardizedSum)
	fmt.Printf("Output floor:         %.2f\n", a.OutputFloor)
	fmt.Printf("Binding RWA:          %.2f (%s)\n", a.Binding, a.BindingSource)
	fmt.Printf("Internal model gain:  %.2f (max allowed %.2f)\n", a.Benefit, a.MaxBenefit)
	fmt.Printf("Worth it: %v (%s)\n", a.WorthIt, a.Verdict)
}

func cmdSchedule(args []string) {
	fs := flag.NewFlagSet("schedule", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	outPath := fs.String("out", "results/schedule.csv", "Output CSV path")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}

	res, err := floor.RunSchedule(cfg.Profile.ToModelProfile(), cfg.Schedule())
	if err != nil {
		panic(err)
	}

	// ensure output dir exists
	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := floor.WriteScheduleCSV(*outPath, res.Ledger); err != nil {
		panic(err)
	}

	fmt.Printf("Wrote %d rows to %s\n", len(res.Ledger), *outPath)
	fmt.Printf("Total floor add-on over phase-in: %.2f\n", res.TotalFloorAddOn)
	fmt.Printf("Final binding RWA: %.2f (%s)\n",
		res.FinalAssessment.Binding, res.FinalAssessment.BindingSource)
}

func cmdRank(args []string) {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	portfolioPath := fs.String("portfolio", "examples/portfolio.json", "Path to portfolio JSON")
	ratio := fs.Float64("ratio", floor.DefaultRatio, "Floor ratio to rank at")
	_ = fs.Parse(args)

	p, err := data.LoadPortfolioJSON(*portfolioPath)
	if err != nil {
		panic(err)
	}

	eval, err := floor.NewWithRatio(*ratio)
	if err != nil {
		panic(err)
	}

	ranked := analysis.RankByFloorAddOn(p.Entities, eval)
	fmt.Printf("%-4s %-18s %-14s %-14s %-14s %-14s %-8s\n",
		"rank", "entity", "std sum", "floor", "internal", "add-on", "worth")
	for i, r := range ranked {
		fmt.Printf("%-4d %-18s %-14.2f %-14.2f %-14.2f %-14.2f %-8v\n",
			i+1,
			r.EntityID,
			r.StandardizedSum,
			r.OutputFloor,
			r.InternalModelRWA,
			r.FloorAddOn,
			r.WorthIt,
		)
	}
}

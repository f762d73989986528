package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/su2xu1/apple-health-swimming-analysis/pipeline"
)

func main() {
	var (
		inputPath  = flag.String("in", "", "Path to Apple Health export.xml or pool-swim .fit file")
		outDir     = flag.String("out", "", "Output directory")
		format     = flag.String("format", "csv", "Output table format: csv|parquet")
		configPath = flag.String("config", "", "Optional YAML config file")
		rest       = flag.Float64("rest", 30, "Rest threshold between sets in seconds")
		lapDist    = flag.Float64("lap-distance", 25, "Fallback lap distance in meters")
		paceDist   = flag.Float64("pace-distance", 50, "Reference distance for pace in meters")
		year       = flag.Int("year", 0, "Only analyze workouts from this year")
		month      = flag.Int("month", 0, "Only analyze workouts from this month (1-12)")
		day        = flag.Int("day", 0, "Only analyze workouts from this day of month (1-31)")
		overwrite  = flag.Bool("overwrite", true, "Allow writing into non-empty output directories")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s --in export.xml --out outdir [--format csv|parquet] [--rest 30] [--year 2024]\n",
			filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if strings.TrimSpace(*inputPath) == "" || strings.TrimSpace(*outDir) == "" {
		flag.Usage()
		os.Exit(2)
	}

	opts := pipeline.Options{
		InputPath: *inputPath,
		OutDir:    *outDir,
		Format:    *format,
		Overwrite: *overwrite,
	}
	if *configPath != "" {
		fileOpts, err := pipeline.LoadFileOptions(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "swim_analyze failed: %v\n", err)
			os.Exit(1)
		}
		fileOpts.Apply(&opts)
	}

	// Flags set on the command line override the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			opts.Format = *format
		case "rest":
			opts.RestThresholdSec = *rest
		case "lap-distance":
			opts.LapDistanceM = *lapDist
		case "pace-distance":
			opts.PaceDistanceM = *paceDist
		case "year":
			opts.FilterYear = year
		case "month":
			opts.FilterMonth = month
		case "day":
			opts.FilterDay = day
		}
	})

	result, err := pipeline.Run(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "swim_analyze failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("swim_analyze complete\n")
	fmt.Printf("Output dir:      %s\n", result.OutputDir)
	fmt.Printf("Workout summary: %s (%d workouts)\n", result.WorkoutSummaryPath, result.WorkoutCount)
	fmt.Printf("Set summary:     %s (%d sets)\n", result.SetSummaryPath, result.SetCount)
	for _, w := range result.Warnings {
		fmt.Printf("warning:         %s\n", w)
	}
}

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/su2xu1/apple-health-swimming-analysis/pipeline"
)

// swimexport dumps the parsed swim workout records as JSON, without running
// the set analysis. Useful for inspecting what a loader extracted.
func main() {
	outPath := flag.String("out", "", "Output file (default: stdout)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <export.xml | activity.fit>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	workouts, err := pipeline.LoadWorkouts(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "swimexport failed: %v\n", err)
		os.Exit(1)
	}

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "swimexport failed: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(workouts); err != nil {
		fmt.Fprintf(os.Stderr, "swimexport failed: %v\n", err)
		os.Exit(1)
	}

	lapCount := 0
	for _, w := range workouts {
		lapCount += len(w.Laps)
	}
	fmt.Fprintf(os.Stderr, "%d swim workouts, %d laps\n", len(workouts), lapCount)
}

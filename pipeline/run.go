// Package pipeline wires the loaders, the analysis core, and the tabular
// sinks into the swim_analyze pipeline.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	swim "github.com/su2xu1/apple-health-swimming-analysis"
	"github.com/su2xu1/apple-health-swimming-analysis/fitexport"
	"github.com/su2xu1/apple-health-swimming-analysis/healthexport"
)

// Run executes the full pipeline: load, date-filter, analyze, and write the
// workout summary and set summary tables.
func Run(opts Options) (*Result, error) {
	if strings.TrimSpace(opts.InputPath) == "" {
		return nil, fmt.Errorf("input path is required")
	}
	if strings.TrimSpace(opts.OutDir) == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "parquet" {
		return nil, fmt.Errorf("unsupported format %q (expected csv|parquet)", format)
	}

	workouts, err := LoadWorkouts(opts.InputPath)
	if err != nil {
		return nil, err
	}

	filtered := make([]swim.Workout, 0, len(workouts))
	for _, w := range workouts {
		if matchesDate(w.Start, opts.FilterYear, opts.FilterMonth, opts.FilterDay) {
			filtered = append(filtered, w)
		}
	}

	analysis := swim.Analyze(filtered, coreConfig(opts))

	if err := ensureOutputDir(opts.OutDir, opts.Overwrite); err != nil {
		return nil, err
	}

	workoutPath := filepath.Join(opts.OutDir, "workout_summary."+format)
	setPath := filepath.Join(opts.OutDir, "sets_by_rest."+format)
	switch format {
	case "csv":
		if err := writeWorkoutCSV(workoutPath, analysis.Workouts); err != nil {
			return nil, fmt.Errorf("write workout summary csv: %w", err)
		}
		if err := writeSetCSV(setPath, analysis.Sets); err != nil {
			return nil, fmt.Errorf("write set summary csv: %w", err)
		}
	case "parquet":
		if err := writeWorkoutParquet(workoutPath, analysis.Workouts); err != nil {
			return nil, fmt.Errorf("write workout summary parquet: %w", err)
		}
		if err := writeSetParquet(setPath, analysis.Sets); err != nil {
			return nil, fmt.Errorf("write set summary parquet: %w", err)
		}
	}

	res := &Result{
		OutputDir:          opts.OutDir,
		WorkoutSummaryPath: workoutPath,
		SetSummaryPath:     setPath,
		WorkoutCount:       len(analysis.Workouts),
		SetCount:           len(analysis.Sets),
	}
	for _, rej := range analysis.Rejected {
		res.Warnings = append(res.Warnings, fmt.Sprintf("workout %d (%s) rejected: %s",
			rej.WorkoutIndex, rej.Start.Format("2006-01-02 15:04:05"), rej.Reason))
	}
	return res, nil
}

// LoadWorkouts picks a loader by file extension: .fit files decode to a
// single workout, anything else is treated as an Apple Health export.xml.
func LoadWorkouts(path string) ([]swim.Workout, error) {
	if strings.EqualFold(filepath.Ext(path), ".fit") {
		w, err := fitexport.LoadFile(path)
		if err != nil {
			return nil, err
		}
		return []swim.Workout{*w}, nil
	}
	return healthexport.LoadFile(path)
}

func coreConfig(opts Options) swim.Config {
	cfg := swim.DefaultConfig()
	if opts.RestThresholdSec > 0 {
		cfg.RestThreshold = time.Duration(opts.RestThresholdSec * float64(time.Second))
	}
	if opts.LapDistanceM > 0 {
		cfg.LapDistanceM = opts.LapDistanceM
	}
	if opts.PaceDistanceM > 0 {
		cfg.PaceDistanceM = opts.PaceDistanceM
	}
	return cfg
}

func matchesDate(t time.Time, year, month, day *int) bool {
	if year != nil && t.Year() != *year {
		return false
	}
	if month != nil && int(t.Month()) != *month {
		return false
	}
	if day != nil && t.Day() != *day {
		return false
	}
	return true
}

func ensureOutputDir(path string, overwrite bool) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("read output directory: %w", err)
	}
	if len(entries) > 0 && !overwrite {
		return fmt.Errorf("output directory is not empty: %s (set overwrite=true to allow)", path)
	}
	return nil
}

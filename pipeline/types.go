package pipeline

// Options configures the swim_analyze pipeline.
type Options struct {
	// InputPath points at an Apple Health export.xml or a pool-swim .fit file.
	InputPath string
	OutDir    string
	Format    string // csv|parquet

	// Core tuning knobs; zero values fall back to the pool defaults.
	RestThresholdSec float64
	LapDistanceM     float64
	PaceDistanceM    float64

	// Optional date filter on workout start times. Each component is
	// independent; nil matches everything. Applied before analysis.
	FilterYear  *int
	FilterMonth *int
	FilterDay   *int

	// Overwrite allows writing into a non-empty output directory.
	Overwrite bool
}

// Result returns generated output paths and non-fatal findings.
type Result struct {
	OutputDir          string   `json:"output_dir"`
	WorkoutSummaryPath string   `json:"workout_summary_path"`
	SetSummaryPath     string   `json:"set_summary_path"`
	WorkoutCount       int      `json:"workout_count"`
	SetCount           int      `json:"set_count"`
	Warnings           []string `json:"warnings,omitempty"`
}

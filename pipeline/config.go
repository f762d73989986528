package pipeline

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileOptions is the YAML shape of a swim_analyze config file. Every field
// is optional; absent fields leave the corresponding Options value alone.
//
//	rest_threshold_seconds: 30
//	lap_distance_m: 25
//	pace_reference_distance_m: 50
//	format: csv
//	year: 2024
//	month: 7
//	day: null
type FileOptions struct {
	RestThresholdSec *float64 `yaml:"rest_threshold_seconds"`
	LapDistanceM     *float64 `yaml:"lap_distance_m"`
	PaceDistanceM    *float64 `yaml:"pace_reference_distance_m"`
	Format           *string  `yaml:"format"`
	Year             *int     `yaml:"year"`
	Month            *int     `yaml:"month"`
	Day              *int     `yaml:"day"`
}

// LoadFileOptions reads a YAML config file.
func LoadFileOptions(path string) (*FileOptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	fo := &FileOptions{}
	if err := yaml.Unmarshal(data, fo); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := fo.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return fo, nil
}

// Apply overlays the file values onto opts. Callers apply explicit CLI flags
// afterwards, so flags win over the file.
func (fo *FileOptions) Apply(opts *Options) {
	if fo.RestThresholdSec != nil {
		opts.RestThresholdSec = *fo.RestThresholdSec
	}
	if fo.LapDistanceM != nil {
		opts.LapDistanceM = *fo.LapDistanceM
	}
	if fo.PaceDistanceM != nil {
		opts.PaceDistanceM = *fo.PaceDistanceM
	}
	if fo.Format != nil {
		opts.Format = *fo.Format
	}
	if fo.Year != nil {
		opts.FilterYear = fo.Year
	}
	if fo.Month != nil {
		opts.FilterMonth = fo.Month
	}
	if fo.Day != nil {
		opts.FilterDay = fo.Day
	}
}

func (fo *FileOptions) validate() error {
	if fo.RestThresholdSec != nil && *fo.RestThresholdSec < 0 {
		return fmt.Errorf("rest_threshold_seconds must not be negative")
	}
	if fo.LapDistanceM != nil && *fo.LapDistanceM <= 0 {
		return fmt.Errorf("lap_distance_m must be positive")
	}
	if fo.PaceDistanceM != nil && *fo.PaceDistanceM <= 0 {
		return fmt.Errorf("pace_reference_distance_m must be positive")
	}
	if fo.Month != nil && (*fo.Month < 1 || *fo.Month > 12) {
		return fmt.Errorf("month must be between 1 and 12")
	}
	if fo.Day != nil && (*fo.Day < 1 || *fo.Day > 31) {
		return fmt.Errorf("day must be between 1 and 31")
	}
	return nil
}

package pipeline

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "swim.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadFileOptionsAndApply(t *testing.T) {
	path := writeConfig(t, `
rest_threshold_seconds: 45
lap_distance_m: 50
format: parquet
year: 2024
month: 7
`)
	fo, err := LoadFileOptions(path)
	if err != nil {
		t.Fatalf("LoadFileOptions error: %v", err)
	}

	opts := Options{
		RestThresholdSec: 30,
		LapDistanceM:     25,
		PaceDistanceM:    50,
		Format:           "csv",
	}
	fo.Apply(&opts)

	if opts.RestThresholdSec != 45 {
		t.Fatalf("rest threshold: got %v want 45", opts.RestThresholdSec)
	}
	if opts.LapDistanceM != 50 {
		t.Fatalf("lap distance: got %v want 50", opts.LapDistanceM)
	}
	// Not in the file: keeps the existing value.
	if opts.PaceDistanceM != 50 {
		t.Fatalf("pace distance: got %v want 50", opts.PaceDistanceM)
	}
	if opts.Format != "parquet" {
		t.Fatalf("format: got %q want parquet", opts.Format)
	}
	if opts.FilterYear == nil || *opts.FilterYear != 2024 {
		t.Fatalf("year filter: got %v", opts.FilterYear)
	}
	if opts.FilterMonth == nil || *opts.FilterMonth != 7 {
		t.Fatalf("month filter: got %v", opts.FilterMonth)
	}
	if opts.FilterDay != nil {
		t.Fatalf("day filter should stay unset, got %v", *opts.FilterDay)
	}
}

func TestLoadFileOptionsEmptyFile(t *testing.T) {
	fo, err := LoadFileOptions(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("LoadFileOptions error: %v", err)
	}

	opts := Options{RestThresholdSec: 30, LapDistanceM: 25, PaceDistanceM: 50}
	fo.Apply(&opts)
	if opts.RestThresholdSec != 30 || opts.LapDistanceM != 25 || opts.PaceDistanceM != 50 {
		t.Fatalf("empty config must not change options: %+v", opts)
	}
}

func TestLoadFileOptionsValidation(t *testing.T) {
	cases := map[string]string{
		"negative rest":  "rest_threshold_seconds: -1",
		"zero lap":       "lap_distance_m: 0",
		"zero pace":      "pace_reference_distance_m: 0",
		"month too big":  "month: 13",
		"day out of rng": "day: 32",
	}
	for name, body := range cases {
		if _, err := LoadFileOptions(writeConfig(t, body)); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestLoadFileOptionsBadYAML(t *testing.T) {
	if _, err := LoadFileOptions(writeConfig(t, "rest_threshold_seconds: [oops")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadFileOptionsMissingFile(t *testing.T) {
	if _, err := LoadFileOptions(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

package swim

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Config carries the tunable constants of the analysis.
type Config struct {
	// RestThreshold is the inter-lap gap above which a new set starts.
	RestThreshold time.Duration

	// LapDistanceM is the fallback distance for laps that carry none.
	LapDistanceM float64

	// PaceDistanceM is the reference distance for pace normalization.
	PaceDistanceM float64
}

// DefaultConfig returns the pool defaults: 30s rest threshold, 25m laps,
// pace per 50m.
func DefaultConfig() Config {
	return Config{
		RestThreshold: 30 * time.Second,
		LapDistanceM:  25,
		PaceDistanceM: 50,
	}
}

// WorkoutRow is one row of the workout summary output. Optional fields stay
// nil when the source workout did not carry them.
type WorkoutRow struct {
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	DurationMin  float64   `json:"duration_min"`
	DistanceM    *float64  `json:"distance_m,omitempty"`
	CaloriesKcal *float64  `json:"calories_kcal,omitempty"`
	AvgHR        *float64  `json:"avg_hr,omitempty"`
}

// SetRow is one row of the set summary output.
type SetRow struct {
	StartTime    time.Time `json:"set_start_time"`
	TotalTimeSec float64   `json:"total_time_sec"`
	AvgSwolf     *float64  `json:"avg_swolf,omitempty"`
	StrokeCombo  string    `json:"stroke_combo,omitempty"`
	LapCount     int       `json:"lap_count"`
	DistanceM    float64   `json:"distance_m"`

	// PaceSec is seconds per Config.PaceDistanceM, nil for zero distance.
	PaceSec *float64 `json:"pace_sec_per_50m,omitempty"`
}

// SummarizeWorkout passes the workout-level aggregates through to an output
// row. The source already aggregates distance, calories, and heart rate at
// workout granularity, so nothing is recomputed from laps here.
func SummarizeWorkout(w Workout) WorkoutRow {
	return WorkoutRow{
		Start:        w.Start,
		End:          w.End,
		DurationMin:  w.DurationMin,
		DistanceM:    w.DistanceM,
		CaloriesKcal: w.CaloriesKcal,
		AvgHR:        w.AvgHR,
	}
}

// SummarizeSet computes the per-set aggregates. It returns an error for a
// zero-member set and for a set whose timestamps yield a negative elapsed
// time; both are anomalies the caller flags rather than output rows.
func SummarizeSet(set Set, cfg Config) (SetRow, error) {
	if len(set.Laps) == 0 {
		return SetRow{}, fmt.Errorf("set has no member laps")
	}

	first := set.Laps[0]
	last := set.Laps[len(set.Laps)-1]
	elapsed := last.End.Sub(first.Start)
	if elapsed < 0 {
		return SetRow{}, fmt.Errorf("set starting %s has negative elapsed time %s",
			first.Start.Format(time.RFC3339), elapsed)
	}

	row := SetRow{
		StartTime:    first.Start,
		TotalTimeSec: math.Floor(elapsed.Seconds()),
		LapCount:     len(set.Laps),
		DistanceM:    totalDistance(set.Laps, cfg.LapDistanceM),
		AvgSwolf:     averageSwolf(set.Laps),
		StrokeCombo:  strokeCombo(set.Laps),
	}
	if row.DistanceM > 0 {
		pace := row.TotalTimeSec / row.DistanceM * cfg.PaceDistanceM
		row.PaceSec = &pace
	}
	return row, nil
}

func totalDistance(laps []Lap, fallbackM float64) float64 {
	total := 0.0
	for _, lap := range laps {
		if lap.DistanceM != nil {
			total += *lap.DistanceM
			continue
		}
		total += fallbackM
	}
	return total
}

// averageSwolf averages only the laps that carry a score. Laps without one
// are excluded from both sum and count, so partial coverage never deflates
// the mean. Returns nil when no lap has a score.
func averageSwolf(laps []Lap) *float64 {
	sum := 0.0
	count := 0
	for _, lap := range laps {
		if lap.Swolf == nil {
			continue
		}
		sum += *lap.Swolf
		count++
	}
	if count == 0 {
		return nil
	}
	avg := sum / float64(count)
	return &avg
}

// strokeCombo joins the distinct stroke styles of the member laps with "/",
// in first-occurrence order. Laps without stroke metadata are skipped.
func strokeCombo(laps []Lap) string {
	seen := make(map[Stroke]struct{}, 4)
	ordered := make([]string, 0, 4)
	for _, lap := range laps {
		if lap.Stroke == "" {
			continue
		}
		if _, ok := seen[lap.Stroke]; ok {
			continue
		}
		seen[lap.Stroke] = struct{}{}
		ordered = append(ordered, string(lap.Stroke))
	}
	return strings.Join(ordered, "/")
}

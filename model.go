package swim

import (
	"fmt"
	"time"
)

// Stroke identifies a swimming stroke style.
type Stroke string

const (
	StrokeMixed        Stroke = "Mixed"
	StrokeFreestyle    Stroke = "Freestyle"
	StrokeBackstroke   Stroke = "Backstroke"
	StrokeBreaststroke Stroke = "Breaststroke"
	StrokeButterfly    Stroke = "Butterfly"
	StrokeDrill        Stroke = "Other/Drill"
	StrokeUnknown      Stroke = "Unknown"
)

// StrokeFromHealthKit maps an HKSwimmingStrokeStyle metadata value to a Stroke.
func StrokeFromHealthKit(code string) Stroke {
	switch code {
	case "1":
		return StrokeMixed
	case "2":
		return StrokeFreestyle
	case "3":
		return StrokeBackstroke
	case "4":
		return StrokeBreaststroke
	case "5":
		return StrokeButterfly
	case "6":
		return StrokeDrill
	default:
		return StrokeUnknown
	}
}

// Lap is one lap event inside a workout. DistanceM and Swolf are nil when the
// source export does not carry them; Stroke is the empty string when no stroke
// metadata was recorded.
type Lap struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	DistanceM *float64  `json:"distance_m,omitempty"`
	Stroke    Stroke    `json:"stroke,omitempty"`
	Swolf     *float64  `json:"swolf,omitempty"`
}

// Duration returns End minus Start.
func (l Lap) Duration() time.Duration {
	return l.End.Sub(l.Start)
}

// Workout is one swimming workout as supplied by a loader, laps in
// non-decreasing start-time order. It is never mutated after construction.
type Workout struct {
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	DurationMin  float64   `json:"duration_min"`
	DistanceM    *float64  `json:"distance_m,omitempty"`
	CaloriesKcal *float64  `json:"calories_kcal,omitempty"`
	AvgHR        *float64  `json:"avg_hr,omitempty"`
	Laps         []Lap     `json:"laps,omitempty"`
}

// Validate reports structural anomalies that make the workout unusable for
// analysis. Missing optional fields are not anomalies.
func (w Workout) Validate() error {
	if w.End.Before(w.Start) {
		return fmt.Errorf("workout end %s before start %s",
			w.End.Format(time.RFC3339), w.Start.Format(time.RFC3339))
	}
	if w.DurationMin < 0 {
		return fmt.Errorf("workout has negative duration %.1f min", w.DurationMin)
	}
	return nil
}

// Set is a group of consecutive laps separated from its neighbours by rest.
// Sets are created by SegmentLaps and never mutated afterwards; every lap of
// a workout belongs to exactly one set.
type Set struct {
	Laps []Lap `json:"laps"`
}

// Start returns the first member lap's start time.
func (s Set) Start() time.Time {
	if len(s.Laps) == 0 {
		return time.Time{}
	}
	return s.Laps[0].Start
}

// Package fitexport loads pool-swim FIT activity files into the analysis
// record model. Pool lengths map to laps: stroke style comes from the
// length's swim_stroke field, lap distance from the session pool length, and
// a SWOLF score is derived as strokes plus seconds when stroke counts are
// present.
package fitexport

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/tormoder/fit"

	swim "github.com/su2xu1/apple-health-swimming-analysis"
)

// LoadFile decodes a swim activity FIT file into a workout record.
func LoadFile(path string) (*swim.Workout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open FIT file: %w", err)
	}
	defer f.Close()

	decoded, err := fit.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode FIT file: %w", err)
	}
	activity, err := decoded.Activity()
	if err != nil {
		return nil, fmt.Errorf("activity FIT expected: %w", err)
	}
	if len(activity.Sessions) == 0 {
		return nil, fmt.Errorf("activity file has no session message")
	}

	session := activity.Sessions[0]
	if session.Sport != fit.SportSwimming {
		return nil, fmt.Errorf("not a swim activity: %v", session.Sport)
	}

	w := &swim.Workout{
		Start:       validTimeOrZero(session.StartTime),
		End:         validTimeOrZero(session.Timestamp),
		DurationMin: safePositive(session.GetTotalElapsedTimeScaled()) / 60.0,
	}
	if d := safePositive(session.GetTotalDistanceScaled()); d > 0 {
		w.DistanceM = &d
	}
	if session.TotalCalories != math.MaxUint16 && session.TotalCalories > 0 {
		kcal := float64(session.TotalCalories)
		w.CaloriesKcal = &kcal
	}
	if session.AvgHeartRate != math.MaxUint8 && session.AvgHeartRate > 0 {
		hr := float64(session.AvgHeartRate)
		w.AvgHR = &hr
	}

	poolLength := safePositive(session.GetPoolLengthScaled())
	for _, length := range activity.Lengths {
		if length == nil || length.LengthType != fit.LengthTypeActive {
			continue
		}
		lap, ok := buildLap(length, poolLength)
		if !ok {
			continue
		}
		w.Laps = append(w.Laps, lap)
	}
	return w, nil
}

func buildLap(length *fit.LengthMsg, poolLengthM float64) (swim.Lap, bool) {
	start := validTimeOrZero(length.StartTime)
	if start.IsZero() {
		return swim.Lap{}, false
	}
	elapsed := safePositive(length.GetTotalTimerTimeScaled())
	if elapsed == 0 {
		elapsed = safePositive(length.GetTotalElapsedTimeScaled())
	}
	if elapsed == 0 {
		return swim.Lap{}, false
	}

	lap := swim.Lap{
		Start:  start,
		End:    start.Add(time.Duration(elapsed * float64(time.Second))),
		Stroke: strokeFromFIT(length.SwimStroke),
	}
	if poolLengthM > 0 {
		d := poolLengthM
		lap.DistanceM = &d
	}
	if length.TotalStrokes != math.MaxUint16 && length.TotalStrokes > 0 {
		swolf := float64(length.TotalStrokes) + elapsed
		lap.Swolf = &swolf
	}
	return lap, true
}

func strokeFromFIT(s fit.SwimStroke) swim.Stroke {
	switch s {
	case fit.SwimStrokeFreestyle:
		return swim.StrokeFreestyle
	case fit.SwimStrokeBackstroke:
		return swim.StrokeBackstroke
	case fit.SwimStrokeBreaststroke:
		return swim.StrokeBreaststroke
	case fit.SwimStrokeButterfly:
		return swim.StrokeButterfly
	case fit.SwimStrokeDrill:
		return swim.StrokeDrill
	case fit.SwimStrokeMixed, fit.SwimStrokeIm:
		return swim.StrokeMixed
	default:
		return swim.StrokeUnknown
	}
}

func validTimeOrZero(t time.Time) time.Time {
	if t.IsZero() || fit.IsBaseTime(t) {
		return time.Time{}
	}
	return t.UTC()
}

func safePositive(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0
	}
	return v
}

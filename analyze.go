package swim

import (
	"fmt"
	"time"
)

// Rejection records a workout (or one of its sets) the analyzer could not
// summarize. Rejected records never abort the batch; the remaining workouts
// are analyzed normally.
type Rejection struct {
	WorkoutIndex int       `json:"workout_index"`
	Start        time.Time `json:"start"`
	Reason       string    `json:"reason"`
}

// Result holds the two output row collections plus the rejected records.
type Result struct {
	Workouts []WorkoutRow `json:"workouts"`
	Sets     []SetRow     `json:"sets"`
	Rejected []Rejection  `json:"rejected,omitempty"`
}

// Analyze segments each workout's laps into rest-separated sets and computes
// the summary rows. It is a pure transformation: re-running it over the same
// input yields identical output. Workouts without laps produce a workout row
// but no set rows.
func Analyze(workouts []Workout, cfg Config) Result {
	res := Result{
		Workouts: make([]WorkoutRow, 0, len(workouts)),
		Sets:     make([]SetRow, 0, len(workouts)),
	}
	for i, w := range workouts {
		if err := w.Validate(); err != nil {
			res.Rejected = append(res.Rejected, Rejection{
				WorkoutIndex: i,
				Start:        w.Start,
				Reason:       err.Error(),
			})
			continue
		}

		res.Workouts = append(res.Workouts, SummarizeWorkout(w))
		for _, set := range SegmentLaps(w.Laps, cfg.RestThreshold) {
			row, err := SummarizeSet(set, cfg)
			if err != nil {
				res.Rejected = append(res.Rejected, Rejection{
					WorkoutIndex: i,
					Start:        w.Start,
					Reason:       fmt.Sprintf("set rejected: %v", err),
				})
				continue
			}
			res.Sets = append(res.Sets, row)
		}
	}
	return res
}

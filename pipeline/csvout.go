package pipeline

import (
	"encoding/csv"
	"math"
	"os"
	"strconv"
	"time"

	swim "github.com/su2xu1/apple-health-swimming-analysis"
)

// outputTimeLayout is the timezone-free timestamp format of the output rows.
const outputTimeLayout = "2006-01-02 15:04:05"

var workoutHeader = []string{
	"start", "end", "duration_min", "distance_m", "calories_kcal", "avg_hr",
}

var setHeader = []string{
	"set_start_time", "total_time_sec", "avg_swolf", "stroke_combo",
	"lap_count", "distance_m", "pace_sec_per_50m",
}

func writeWorkoutCSV(path string, rows []swim.WorkoutRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(workoutHeader); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.Start.Format(outputTimeLayout),
			row.End.Format(outputTimeLayout),
			formatFloat(row.DurationMin),
			formatFloatPtr(row.DistanceM),
			formatFloatPtr(row.CaloriesKcal),
			formatFloatPtr(row.AvgHR),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeSetCSV(path string, rows []swim.SetRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(setHeader); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.StartTime.Format(outputTimeLayout),
			formatFloat(floorTenth(row.TotalTimeSec)),
			formatFloorPtr(row.AvgSwolf),
			row.StrokeCombo,
			strconv.Itoa(row.LapCount),
			formatFloat(row.DistanceM),
			formatFloorPtr(row.PaceSec),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// floorTenth floors to one decimal place, matching the original report
// formatting.
func floorTenth(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return math.Floor(v*10) / 10
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatFloatPtr renders an absent value as an empty cell, never as zero.
func formatFloatPtr(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}

func formatFloorPtr(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(floorTenth(*v))
}

// parseOutputTime is the inverse of the row timestamp formatting; tests use
// it to round-trip written tables.
func parseOutputTime(s string) (time.Time, error) {
	return time.Parse(outputTimeLayout, s)
}

// Package healthexport loads swimming workouts from an Apple Health
// export.xml file into the analysis record model.
package healthexport

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	swim "github.com/su2xu1/apple-health-swimming-analysis"
)

// LoadFile reads an Apple Health export.xml file and returns the swimming
// workouts it contains, laps attached and sorted by start time.
func LoadFile(path string) ([]swim.Workout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open health export: %w", err)
	}
	defer f.Close()

	workouts, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return workouts, nil
}

// Load decodes an Apple Health export stream. Only <Workout> elements with a
// swimming activity type are materialized; export.xml files are large, so
// everything else is skipped at the token level without building a DOM.
func Load(r io.Reader) ([]swim.Workout, error) {
	dec := xml.NewDecoder(r)
	var workouts []swim.Workout
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read export xml: %w", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "Workout" {
			continue
		}

		var wx workoutXML
		if err := dec.DecodeElement(&wx, &se); err != nil {
			return nil, fmt.Errorf("decode workout element: %w", err)
		}
		if !swimActivityTypes[wx.ActivityType] {
			continue
		}

		w, err := buildWorkout(wx)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	return workouts, nil
}

func buildWorkout(wx workoutXML) (swim.Workout, error) {
	start, err := time.Parse(timeLayout, wx.StartDate)
	if err != nil {
		return swim.Workout{}, fmt.Errorf("parse workout start date %q: %w", wx.StartDate, err)
	}
	end, err := time.Parse(timeLayout, wx.EndDate)
	if err != nil {
		return swim.Workout{}, fmt.Errorf("parse workout end date %q: %w", wx.EndDate, err)
	}

	w := swim.Workout{Start: start, End: end}
	if v, err := strconv.ParseFloat(wx.Duration, 64); err == nil {
		w.DurationMin = v
	}
	for _, s := range wx.Statistics {
		switch s.Type {
		case distanceMetric:
			w.DistanceM = optionalFloat(s.Sum)
		case energyMetric:
			w.CaloriesKcal = optionalFloat(s.Sum)
		case heartRateMetric:
			w.AvgHR = optionalFloat(s.Average)
		}
	}

	for _, ev := range wx.Events {
		if ev.Type != lapEventType {
			continue
		}
		lap, ok := buildLap(ev)
		if !ok {
			continue
		}
		w.Laps = append(w.Laps, lap)
	}
	sort.SliceStable(w.Laps, func(i, j int) bool {
		return w.Laps[i].Start.Before(w.Laps[j].Start)
	})
	return w, nil
}

// buildLap converts a lap workout event into a Lap. Events with unparseable
// timestamps are dropped rather than failing the whole export.
func buildLap(ev workoutEventXML) (swim.Lap, bool) {
	start, err := time.Parse(timeLayout, ev.Date)
	if err != nil {
		return swim.Lap{}, false
	}
	durationMin, err := strconv.ParseFloat(ev.Duration, 64)
	if err != nil {
		return swim.Lap{}, false
	}

	lap := swim.Lap{
		Start: start,
		End:   start.Add(time.Duration(durationMin * float64(time.Minute))),
	}
	for _, m := range ev.Metadata {
		switch m.Key {
		case strokeStyleKey:
			lap.Stroke = swim.StrokeFromHealthKit(m.Value)
		case swolfKey:
			lap.Swolf = optionalFloat(m.Value)
		}
	}
	return lap, true
}

func optionalFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

package fitexport

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tormoder/fit"

	swim "github.com/su2xu1/apple-health-swimming-analysis"
)

func buildSwimFIT(t *testing.T, sport fit.Sport) []byte {
	t.Helper()

	header := fit.NewHeader(fit.V20, true)
	file, err := fit.NewFile(fit.FileTypeActivity, header)
	if err != nil {
		t.Fatalf("new fit file: %v", err)
	}
	activity, err := file.Activity()
	if err != nil {
		t.Fatalf("activity accessor: %v", err)
	}

	start := time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC)

	session := fit.NewSessionMsg()
	session.Sport = sport
	session.StartTime = start
	session.Timestamp = start.Add(30 * time.Minute)
	session.TotalElapsedTime = 1800 * 1000
	session.TotalDistance = 1000 * 100
	session.PoolLength = 25 * 100
	session.TotalCalories = 320
	session.AvgHeartRate = 131
	activity.Sessions = append(activity.Sessions, session)

	addLength := func(offset time.Duration, seconds uint32, strokes uint16, stroke fit.SwimStroke, lengthType fit.LengthType) {
		length := fit.NewLengthMsg()
		length.StartTime = start.Add(offset)
		length.Timestamp = start.Add(offset + time.Duration(seconds)*time.Second)
		length.TotalTimerTime = seconds * 1000
		length.TotalElapsedTime = seconds * 1000
		length.TotalStrokes = strokes
		length.SwimStroke = stroke
		length.LengthType = lengthType
		activity.Lengths = append(activity.Lengths, length)
	}

	addLength(0, 22, 18, fit.SwimStrokeFreestyle, fit.LengthTypeActive)
	addLength(22*time.Second, 10, 0, fit.SwimStrokeInvalid, fit.LengthTypeIdle)
	addLength(32*time.Second, 25, 20, fit.SwimStrokeBreaststroke, fit.LengthTypeActive)

	var buf bytes.Buffer
	if err := fit.Encode(&buf, file, binary.LittleEndian); err != nil {
		t.Fatalf("encode fit: %v", err)
	}
	return buf.Bytes()
}

func writeFIT(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "swim.fit")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fit file: %v", err)
	}
	return path
}

func TestLoadFilePoolSwim(t *testing.T) {
	path := writeFIT(t, buildSwimFIT(t, fit.SportSwimming))

	w, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}

	if w.DurationMin != 30 {
		t.Fatalf("duration: got %v want 30", w.DurationMin)
	}
	if w.DistanceM == nil || *w.DistanceM != 1000 {
		t.Fatalf("distance: got %v want 1000", w.DistanceM)
	}
	if w.CaloriesKcal == nil || *w.CaloriesKcal != 320 {
		t.Fatalf("calories: got %v want 320", w.CaloriesKcal)
	}
	if w.AvgHR == nil || *w.AvgHR != 131 {
		t.Fatalf("avg hr: got %v want 131", w.AvgHR)
	}

	// Idle lengths are rest, not laps.
	if len(w.Laps) != 2 {
		t.Fatalf("laps: got %d want 2", len(w.Laps))
	}

	first := w.Laps[0]
	if first.Stroke != swim.StrokeFreestyle {
		t.Fatalf("first lap stroke: got %q", first.Stroke)
	}
	if first.DistanceM == nil || *first.DistanceM != 25 {
		t.Fatalf("first lap distance: got %v want pool length 25", first.DistanceM)
	}
	// SWOLF = strokes + seconds.
	if first.Swolf == nil || *first.Swolf != 40 {
		t.Fatalf("first lap swolf: got %v want 40", first.Swolf)
	}
	if got := first.Duration(); got != 22*time.Second {
		t.Fatalf("first lap duration: got %s want 22s", got)
	}

	second := w.Laps[1]
	if second.Stroke != swim.StrokeBreaststroke {
		t.Fatalf("second lap stroke: got %q", second.Stroke)
	}
	if second.Swolf == nil || *second.Swolf != 45 {
		t.Fatalf("second lap swolf: got %v want 45", second.Swolf)
	}

	if err := w.Validate(); err != nil {
		t.Fatalf("workout should validate: %v", err)
	}
}

func TestLoadFileRejectsNonSwimActivity(t *testing.T) {
	path := writeFIT(t, buildSwimFIT(t, fit.SportCycling))

	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for non-swim activity")
	}
}

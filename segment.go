package swim

import "time"

// SegmentLaps partitions chronologically ordered laps into sets using the
// rest-gap rule: a new set starts whenever the gap between a lap's start and
// the previous lap's end is strictly greater than restThreshold. A negative
// gap (overlapping or out-of-order laps) counts as no rest and never splits
// a set. The result preserves lap order exactly; concatenating all sets'
// members reproduces the input.
func SegmentLaps(laps []Lap, restThreshold time.Duration) []Set {
	if len(laps) == 0 {
		return nil
	}

	sets := make([]Set, 0, 4)
	current := []Lap{laps[0]}
	for _, lap := range laps[1:] {
		gap := lap.Start.Sub(current[len(current)-1].End)
		if gap > restThreshold {
			sets = append(sets, Set{Laps: current})
			current = []Lap{lap}
			continue
		}
		current = append(current, lap)
	}
	return append(sets, Set{Laps: current})
}

package schema

import (
	"sort"
	"time"
)

// DayOf truncates a timestamp to local midnight, the canonical per-day key.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DedupFlags returns the unique flags sorted by name. Detection order does
// not matter, so a stable ordering keeps verdicts deterministic.
func DedupFlags(flags []AnomalyFlag) []AnomalyFlag {
	seen := make(map[AnomalyFlag]struct{}, len(flags))
	out := make([]AnomalyFlag, 0, len(flags))
	for _, f := range flags {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// CloneRows returns a shallow copy of the row slice. The engine never
// mutates caller-owned slices, so concurrent analyses stay independent.
func CloneRows(rows []DailyRow) []DailyRow {
	out := make([]DailyRow, len(rows))
	copy(out, rows)
	return out
}

// SortRowsByDate orders rows chronologically in place.
func SortRowsByDate(rows []DailyRow) {
	sort.Slice(rows, func(i, j int) bool { return rows[i].Date.Before(rows[j].Date) })
}

// TimeOfDayBucket classifies an hour into the histogram bucket it belongs to.
// Returned values index into Histogram: 0 morning, 1 afternoon, 2 night.
func TimeOfDayBucket(hour int) int {
	switch {
	case hour >= 6 && hour < 12:
		return 0
	case hour >= 12 && hour < 18:
		return 1
	default:
		return 2
	}
}

package core

import (
	"sort"
	"time"

	"github.com/cogniahq/cognia/schema"
)

// AggregateDaily buckets canonical events into per-day rows, keyed by the
// event's local calendar day. Call kinds increment the interaction count
// (missed calls count toward frequency but carry no talk time); fitness
// kinds fill the daily metric columns. Rows come back sorted by date.
func AggregateDaily(events []schema.Event) []schema.DailyRow {
	byDay := make(map[string]*schema.DailyRow)

	rowFor := func(ev schema.Event) *schema.DailyRow {
		day := schema.DayOf(ev.Timestamp)
		key := day.Format(schema.DateLayout)
		row, ok := byDay[key]
		if !ok {
			row = &schema.DailyRow{Date: day}
			byDay[key] = row
		}
		return row
	}

	for _, ev := range events {
		row := rowFor(ev)
		switch ev.Kind {
		case schema.KindIncoming, schema.KindOutgoing, schema.KindMissed:
			row.Count++
			switch schema.TimeOfDayBucket(ev.Timestamp.Hour()) {
			case 0:
				row.Hist.Morning++
			case 1:
				row.Hist.Afternoon++
			default:
				row.Hist.Night++
			}
			if _, null := schema.NullInteractionKinds[ev.Kind]; !null {
				row.Answered++
				row.TalkSeconds += ev.Magnitude
			}
		case schema.KindSteps:
			row.Steps += ev.Magnitude
		case schema.KindActive:
			row.ActiveMinutes += ev.Magnitude
		case schema.KindSleep:
			row.SleepMinutes += ev.Magnitude
		case schema.KindScreen:
			row.ScreenMinutes += ev.Magnitude
		}
	}

	rows := make([]schema.DailyRow, 0, len(byDay))
	for _, row := range byDay {
		if row.Answered > 0 {
			row.AvgDuration = row.TalkSeconds / float64(row.Answered)
		}
		rows = append(rows, *row)
	}
	schema.SortRowsByDate(rows)
	return rows
}

// SubjectFrequency tallies interaction events per subject, tracking the
// most recent sighting of each.
func SubjectFrequency(events []schema.Event) []schema.SubjectCount {
	tallies := make(map[string]int)
	lastSeen := make(map[string]time.Time)

	for _, ev := range events {
		switch ev.Kind {
		case schema.KindIncoming, schema.KindOutgoing, schema.KindMissed:
		default:
			continue
		}
		tallies[ev.Subject]++
		if ev.Timestamp.After(lastSeen[ev.Subject]) {
			lastSeen[ev.Subject] = ev.Timestamp
		}
	}

	counts := make([]schema.SubjectCount, 0, len(tallies))
	for subject, count := range tallies {
		counts = append(counts, schema.SubjectCount{
			Subject:  subject,
			Count:    count,
			LastSeen: lastSeen[subject],
		})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		// Ties go to the subject heard from most recently.
		return counts[i].LastSeen.After(counts[j].LastSeen)
	})
	return counts
}

// TopSubject returns the most frequent interaction subject, with ties
// broken by recency. Empty input yields the empty string.
func TopSubject(events []schema.Event) string {
	counts := SubjectFrequency(events)
	if len(counts) == 0 {
		return ""
	}
	return counts[0].Subject
}

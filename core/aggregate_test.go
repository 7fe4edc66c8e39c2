package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cogniahq/cognia/schema"
)

func callAt(ts time.Time, kind schema.EventKind, subject string, seconds float64) schema.Event {
	return schema.Event{Timestamp: ts, Kind: kind, Subject: subject, Magnitude: seconds}
}

func TestAggregateDailyCalls(t *testing.T) {
	day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	events := []schema.Event{
		callAt(day.Add(8*time.Hour), schema.KindIncoming, "Maya", 120),
		callAt(day.Add(14*time.Hour), schema.KindOutgoing, "Sam", 60),
		callAt(day.Add(22*time.Hour), schema.KindMissed, "Maya", 0),
	}

	rows := AggregateDaily(events)
	require.Len(t, rows, 1)
	row := rows[0]

	assert.Equal(t, 3, row.Count)
	assert.Equal(t, 2, row.Answered)
	assert.Equal(t, 180.0, row.TalkSeconds)
	assert.Equal(t, 90.0, row.AvgDuration) // missed calls carry no talk time
	assert.Equal(t, schema.Histogram{Morning: 1, Afternoon: 1, Night: 1}, row.Hist)
}

func TestAggregateDailyFitness(t *testing.T) {
	day := time.Date(2026, 8, 20, 7, 0, 0, 0, time.UTC)
	events := []schema.Event{
		{Timestamp: day, Kind: schema.KindSteps, Magnitude: 8000},
		{Timestamp: day, Kind: schema.KindActive, Magnitude: 45},
		{Timestamp: day, Kind: schema.KindSleep, Magnitude: 420},
		{Timestamp: day, Kind: schema.KindScreen, Magnitude: 150},
	}

	rows := AggregateDaily(events)
	require.Len(t, rows, 1)
	assert.Equal(t, 8000.0, rows[0].Steps)
	assert.Equal(t, 45.0, rows[0].ActiveMinutes)
	assert.Equal(t, 420.0, rows[0].SleepMinutes)
	assert.Equal(t, 150.0, rows[0].ScreenMinutes)
	assert.Equal(t, 0, rows[0].Count)
}

func TestAggregateDailySortsByDate(t *testing.T) {
	d1 := time.Date(2026, 8, 22, 10, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	rows := AggregateDaily([]schema.Event{
		callAt(d1, schema.KindIncoming, "Maya", 10),
		callAt(d2, schema.KindIncoming, "Maya", 10),
	})
	require.Len(t, rows, 2)
	assert.True(t, rows[0].Date.Before(rows[1].Date))
}

func TestTopSubjectTieBreaksByRecency(t *testing.T) {
	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	events := []schema.Event{
		callAt(base, schema.KindIncoming, "Maya", 10),
		callAt(base.Add(time.Hour), schema.KindIncoming, "Sam", 10),
		callAt(base.Add(2*time.Hour), schema.KindOutgoing, "Maya", 10),
		callAt(base.Add(3*time.Hour), schema.KindOutgoing, "Sam", 10),
		// Fitness events never count toward subjects.
		{Timestamp: base, Kind: schema.KindSteps, Subject: "Sam", Magnitude: 100},
	}

	counts := SubjectFrequency(events)
	require.Len(t, counts, 2)
	assert.Equal(t, "Sam", counts[0].Subject) // tied on count, Sam heard from last
	assert.Equal(t, 2, counts[0].Count)
	assert.Equal(t, "Sam", TopSubject(events))
}

func TestTopSubjectEmpty(t *testing.T) {
	assert.Equal(t, "", TopSubject(nil))
}

package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cogniahq/cognia/internal/contract"
	"github.com/cogniahq/cognia/schema"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCallLogSourceBareArray(t *testing.T) {
	path := writeTemp(t, "calls.json", `[
		{"timestamp": "2026-08-20 10:00:00", "type": "INCOMING", "name": "Maya", "duration": 120},
		{"timestamp": "2026-08-21 11:00:00", "type": "MISSED", "name": "Sam"}
	]`)

	src := &CallLogSource{Path: path, Now: time.Now}
	raws, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, raws, 2)
	assert.Equal(t, "Maya", raws[0].Subject)
	assert.Equal(t, "MISSED", raws[1].Kind)
}

func TestCallLogSourceWrappedPayload(t *testing.T) {
	path := writeTemp(t, "calls.json", `{"events": [{"timestamp": "2026-08-20 10:00:00", "type": "OUTGOING", "name": "Maya", "duration": 60}]}`)

	src := &CallLogSource{Path: path, Now: time.Now}
	raws, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, raws, 1)
	assert.Equal(t, "OUTGOING", raws[0].Kind)
}

func TestCallLogSourceSpanFilter(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	path := writeTemp(t, "calls.json", `[
		{"timestamp": "2026-08-29 10:00:00", "type": "INCOMING", "name": "Maya"},
		{"timestamp": "2026-07-01 10:00:00", "type": "INCOMING", "name": "Old"},
		{"timestamp": "not-a-date", "type": "INCOMING", "name": "Odd"}
	]`)

	src := &CallLogSource{Path: path, Span: 7 * 24 * time.Hour, Now: func() time.Time { return now }}
	raws, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, raws, 2) // stale record dropped, unparseable kept
	assert.Equal(t, "Maya", raws[0].Subject)
	assert.Equal(t, "Odd", raws[1].Subject)
}

func TestCallLogSourceMissingFile(t *testing.T) {
	src := &CallLogSource{Path: filepath.Join(t.TempDir(), "nope.json"), Now: time.Now}
	_, err := src.Load(context.Background())
	assert.Error(t, err)
}

func TestFitnessSourceFansOutMetrics(t *testing.T) {
	path := writeTemp(t, "data_raw.json", `[
		{"date": "2026-08-20", "steps": 8000, "active_minutes": 45, "sleep_minutes": 420, "sedentary_minutes": 600}
	]`)

	src := &FitnessSource{Path: path, Now: time.Now}
	raws, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, raws, 3)

	kinds := map[string]float64{}
	for _, r := range raws {
		kinds[r.Kind] = r.Magnitude.(float64)
	}
	assert.Equal(t, 8000.0, kinds["steps"])
	assert.Equal(t, 45.0, kinds["active_minutes"])
	assert.Equal(t, 420.0, kinds["sleep_minutes"])
}

func TestCalendarSourceTagsAndDensity(t *testing.T) {
	path := writeTemp(t, "calendar.json", `[
		{"summary": "Flight to Lisbon", "start": "2026-08-20T08:00:00", "end": "2026-08-20T11:00:00"},
		{"summary": "Project deadline", "start": "2026-08-21T09:00:00", "end": "2026-08-21T10:00:00"},
		{"summary": "Sprint sync", "start": "2026-08-21T10:00:00", "end": "2026-08-21T11:00:00"},
		{"summary": "Public Holiday", "start": "2026-08-22", "all_day": true},
		{"summary": "Mom's birthday", "start": "2026-08-23", "all_day": true}
	]`)

	src := &CalendarSource{Path: path}
	ctx, err := src.Load(context.Background())
	require.NoError(t, err)

	travel := ctx["2026-08-20"]
	assert.True(t, travel.HasTag(schema.TagTravel))
	assert.Equal(t, schema.MediumDensity, travel.Density) // 180 scheduled minutes

	busy := ctx["2026-08-21"]
	assert.True(t, busy.HasTag(schema.TagHighStakes))
	assert.Equal(t, 2, busy.Meetings)
	assert.Equal(t, 120, busy.ScheduledMinutes)
	assert.Equal(t, schema.LowDensity, busy.Density) // exactly 120 minutes is still Low

	holiday := ctx["2026-08-22"]
	assert.True(t, holiday.HasTag(schema.TagHoliday))
	assert.Equal(t, schema.LowDensity, holiday.Density) // all-day events add no minutes

	personal := ctx["2026-08-23"]
	assert.True(t, personal.HasTag(schema.TagPersonal))
}

// Density buckets are strict: a day goes High only above 300 scheduled
// minutes and Medium only above 120.
func TestCalendarDensityBoundaries(t *testing.T) {
	ctx := BuildContextMap([]calendarEvent{
		{Summary: "All-day planning", Start: "2026-08-24T08:00:00", End: "2026-08-24T13:00:00"},
		{Summary: "Workshop", Start: "2026-08-25T08:00:00", End: "2026-08-25T13:01:00"},
	})

	boundary := ctx["2026-08-24"]
	assert.Equal(t, 300, boundary.ScheduledMinutes)
	assert.Equal(t, schema.MediumDensity, boundary.Density)

	over := ctx["2026-08-25"]
	assert.Equal(t, 301, over.ScheduledMinutes)
	assert.Equal(t, schema.HighDensity, over.Density)
}

func TestCalendarSourceEmptyPath(t *testing.T) {
	src := &CalendarSource{}
	ctx, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ctx)
}

func TestSyntheticSourceDeterministic(t *testing.T) {
	now := func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) }
	a := &SyntheticSource{Seed: 42, Days: 30, QuietTail: 7, Now: now}
	b := &SyntheticSource{Seed: 42, Days: 30, QuietTail: 7, Now: now}

	rawsA, err := a.Load(context.Background())
	require.NoError(t, err)
	rawsB, err := b.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, rawsA, rawsB)
	assert.NotEmpty(t, rawsA)

	// The quiet tail really is quiet.
	cutoff := "2026-08-23"
	for _, raw := range rawsA {
		assert.Less(t, raw.Timestamp.(string)[:10], cutoff)
	}
}

func TestScreenAccumulator(t *testing.T) {
	acc := NewScreenAccumulator()
	day := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
	acc.Record(day, 30*time.Minute)
	acc.Record(day.Add(2*time.Hour), 15*time.Minute)
	acc.Record(day.AddDate(0, 0, 1), 10*time.Minute)
	acc.Record(day, -5*time.Minute) // ignored

	raws, err := acc.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, raws, 2)

	byDay := map[string]float64{}
	for _, r := range raws {
		byDay[r.Timestamp.(string)[:10]] = r.Magnitude.(float64)
	}
	assert.Equal(t, 45.0, byDay["2026-08-20"])
	assert.Equal(t, 10.0, byDay["2026-08-21"])
}

func TestNewSyntheticSourceDefaultsSpan(t *testing.T) {
	src := NewSyntheticSource(&contract.Config{}, 1, 0)
	assert.Equal(t, contract.DefaultSpanDays, src.Days)
}

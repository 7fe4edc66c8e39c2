package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cogniahq/cognia/schema"
)

func TestMatchKind(t *testing.T) {
	for _, tc := range []struct {
		raw  string
		want schema.EventKind
	}{
		{"INCOMING", schema.KindIncoming},
		{"OUTGOING", schema.KindOutgoing},
		{"outgoing_call", schema.KindOutgoing},
		{"MISSED", schema.KindMissed},
		{"  miss ", schema.KindMissed},
		{"steps", schema.KindSteps},
		{"sleep_minutes", schema.KindSleep},
		{"active_minutes", schema.KindActive},
		{"screen_minutes", schema.KindScreen},
		{"", schema.KindIncoming},
		{"something else", schema.KindIncoming},
	} {
		t.Run(tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.want, matchKind(tc.raw))
		})
	}
}

func TestCoerceMagnitude(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   any
		want float64
	}{
		{"nil", nil, 0},
		{"float", 12.5, 12.5},
		{"int", 7, 7},
		{"numeric string", "42.5", 42.5},
		{"padded string", " 30 ", 30},
		{"placeholder", "[unavailable]", 0},
		{"garbage", "n/a", 0},
		{"empty string", "", 0},
		{"bool", true, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, coerceMagnitude(tc.in))
		})
	}
}

func TestNormalizeEvent(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	t.Run("full record", func(t *testing.T) {
		ev, err := NormalizeEvent(schema.RawEvent{
			Timestamp: "2026-08-20T09:15:00",
			Kind:      "OUTGOING",
			Subject:   "Maya",
			Magnitude: 180.0,
		}, now)
		require.NoError(t, err)
		assert.Equal(t, schema.KindOutgoing, ev.Kind)
		assert.Equal(t, "Maya", ev.Subject)
		assert.Equal(t, 180.0, ev.Magnitude)
		assert.Equal(t, 2026, ev.Timestamp.Year())
		assert.Equal(t, 9, ev.Timestamp.Hour())
	})

	t.Run("blank subject defaults", func(t *testing.T) {
		ev, err := NormalizeEvent(schema.RawEvent{Timestamp: "2026-08-20", Kind: "MISSED", Subject: "  "}, now)
		require.NoError(t, err)
		assert.Equal(t, "Unknown", ev.Subject)
	})

	t.Run("bad timestamp falls back to now", func(t *testing.T) {
		ev, err := NormalizeEvent(schema.RawEvent{Timestamp: "yesterday-ish", Kind: "INCOMING", Subject: "Sam"}, now)
		require.NoError(t, err)
		assert.True(t, ev.Timestamp.Equal(now))
	})

	t.Run("negative magnitude rejected", func(t *testing.T) {
		_, err := NormalizeEvent(schema.RawEvent{Timestamp: "2026-08-20", Kind: "steps", Magnitude: -5.0}, now)
		var malformed *MalformedEventError
		require.ErrorAs(t, err, &malformed)
	})

	t.Run("empty record rejected", func(t *testing.T) {
		_, err := NormalizeEvent(schema.RawEvent{}, now)
		assert.Error(t, err)
	})
}

func TestNormalizeBatchDropsAndCounts(t *testing.T) {
	now := time.Now()
	raws := []schema.RawEvent{
		{Timestamp: "2026-08-20 10:00:00", Kind: "INCOMING", Subject: "Maya", Magnitude: 60.0},
		{},
		{Timestamp: "2026-08-21 10:00:00", Kind: "steps", Magnitude: -1.0},
		{Timestamp: "2026-08-22 10:00:00", Kind: "MISSED", Subject: "Sam"},
	}
	events, dropped := NormalizeBatch(raws, now)
	assert.Len(t, events, 2)
	assert.Equal(t, 2, dropped)
}

func FuzzCoerceMagnitude(f *testing.F) {
	f.Add("42.5")
	f.Add("[unavailable]")
	f.Add("")
	f.Add("-0")
	f.Fuzz(func(t *testing.T, s string) {
		got := coerceMagnitude(s)
		if got != got {
			t.Fatalf("coerceMagnitude(%q) = NaN", s)
		}
	})
}

// Package core implements the behavioral baseline and deviation detection
// engine: normalization, daily aggregation, continuity repair, window
// splitting, deviation detection, classification, context correlation and
// narrative generation. Everything here is a pure computation over
// in-memory data; connectors own all I/O.
package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/cogniahq/cognia/schema"
)

// MalformedEventError reports a raw record that cannot be normalized into
// a canonical event. Callers are expected to drop the record and continue;
// one bad call record must never blank the whole dashboard.
type MalformedEventError struct {
	Reason string
}

func (e *MalformedEventError) Error() string {
	return fmt.Sprintf("malformed event: %s", e.Reason)
}

// Timestamp layouts accepted at the ingestion boundary, most specific first.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	schema.DateLayout,
}

// NormalizeEvent converts a loosely-typed raw record into a canonical Event.
// Leniency rules:
//   - blank subject becomes "Unknown"
//   - kind strings are case-normalized and fuzzy-matched by substring,
//     with incoming as the default
//   - magnitudes given as decimal strings (including bracket-tagged
//     placeholder text) coerce to 0 instead of failing
//   - unparseable timestamps fall back to now rather than failing ingestion
//
// A record is only rejected when it carries no usable signal at all, or
// when its magnitude is negative after coercion.
func NormalizeEvent(raw schema.RawEvent, now time.Time) (schema.Event, error) {
	if isEmptyRecord(raw) {
		return schema.Event{}, &MalformedEventError{Reason: "record carries no fields"}
	}

	magnitude := coerceMagnitude(raw.Magnitude)
	if magnitude < 0 {
		return schema.Event{}, &MalformedEventError{Reason: fmt.Sprintf("negative magnitude %v", raw.Magnitude)}
	}

	subject := strings.TrimSpace(raw.Subject)
	if subject == "" {
		subject = "Unknown"
	}

	return schema.Event{
		Timestamp: coerceTimestamp(raw.Timestamp, now),
		Kind:      matchKind(raw.Kind),
		Subject:   subject,
		Magnitude: magnitude,
	}, nil
}

// NormalizeBatch normalizes a batch of raw records, dropping malformed ones.
// It returns the canonical events and the number of records dropped.
func NormalizeBatch(raws []schema.RawEvent, now time.Time) ([]schema.Event, int) {
	events := make([]schema.Event, 0, len(raws))
	dropped := 0
	for _, raw := range raws {
		ev, err := NormalizeEvent(raw, now)
		if err != nil {
			dropped++
			continue
		}
		events = append(events, ev)
	}
	return events, dropped
}

// isEmptyRecord reports whether the record has nothing to normalize.
func isEmptyRecord(raw schema.RawEvent) bool {
	return raw.Timestamp == nil &&
		strings.TrimSpace(raw.Kind) == "" &&
		strings.TrimSpace(raw.Subject) == "" &&
		raw.Magnitude == nil
}

// matchKind fuzzy-matches a kind string against the known kinds by
// substring containment, e.g. any string containing "MISS" maps to missed.
func matchKind(s string) schema.EventKind {
	upper := strings.ToUpper(strings.TrimSpace(s))
	switch {
	case strings.Contains(upper, "MISS"):
		return schema.KindMissed
	case strings.Contains(upper, "OUT"):
		return schema.KindOutgoing
	case strings.Contains(upper, "STEP"):
		return schema.KindSteps
	case strings.Contains(upper, "SLEEP"):
		return schema.KindSleep
	case strings.Contains(upper, "ACTIVE"):
		return schema.KindActive
	case strings.Contains(upper, "SCREEN"):
		return schema.KindScreen
	default:
		return schema.KindIncoming
	}
}

// coerceMagnitude converts a loosely-typed magnitude into a float64.
// Placeholder text like "[unavailable]" and anything unparseable become 0.
func coerceMagnitude(v any) float64 {
	switch m := v.(type) {
	case nil:
		return 0
	case float64:
		return m
	case float32:
		return float64(m)
	case int:
		return float64(m)
	case int64:
		return float64(m)
	case string:
		s := strings.TrimSpace(m)
		if s == "" || strings.HasPrefix(s, "[") {
			return 0
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return 0
		}
		return parsed
	default:
		return 0
	}
}

// coerceTimestamp parses a loosely-typed timestamp, falling back to now.
func coerceTimestamp(v any, now time.Time) time.Time {
	switch ts := v.(type) {
	case time.Time:
		return ts
	case string:
		s := strings.TrimSpace(ts)
		for _, layout := range timestampLayouts {
			if parsed, err := time.ParseInLocation(layout, s, now.Location()); err == nil {
				return parsed
			}
		}
		return now
	default:
		return now
	}
}

// Package source provides the connectors that feed the engine: file-backed
// event and context loaders, the synthetic demo generator, and the screen
// time accumulator. All I/O lives here so the engine stays pure.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/cogniahq/cognia/internal/contract"
	"github.com/cogniahq/cognia/schema"
)

// CallLogSource loads webhook-style call records from a JSON file. The
// file holds either a bare array of records or an object with an "events"
// array, which is what the capture webhook writes.
type CallLogSource struct {
	Path string
	Span time.Duration
	Now  func() time.Time
}

var _ contract.EventSource = &CallLogSource{}

// NewCallLogSource builds a source for the configured data path and span.
func NewCallLogSource(cfg *contract.Config) *CallLogSource {
	return &CallLogSource{Path: cfg.DataPath, Span: cfg.Span, Now: time.Now}
}

func (s *CallLogSource) Load(ctx context.Context) ([]schema.RawEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read call log: %w", err)
	}
	raws, err := decodeEventPayload(data)
	if err != nil {
		return nil, fmt.Errorf("parse call log %s: %w", s.Path, err)
	}
	return filterSpan(raws, s.Span, s.Now()), nil
}

func decodeEventPayload(data []byte) ([]schema.RawEvent, error) {
	var raws []schema.RawEvent
	if err := json.Unmarshal(data, &raws); err == nil {
		return raws, nil
	}
	var wrapped struct {
		Events []schema.RawEvent `json:"events"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, err
	}
	return wrapped.Events, nil
}

// filterSpan drops records that verifiably predate the ingestion span.
// Records with unparseable timestamps pass through; whether to keep them
// is the normalizer's call, not the loader's.
func filterSpan(raws []schema.RawEvent, span time.Duration, now time.Time) []schema.RawEvent {
	if span <= 0 {
		return raws
	}
	cutoff := now.Add(-span)
	kept := make([]schema.RawEvent, 0, len(raws))
	for _, raw := range raws {
		if ts, ok := parseAnyTimestamp(raw.Timestamp, now.Location()); ok && ts.Before(cutoff) {
			continue
		}
		kept = append(kept, raw)
	}
	return kept
}

func parseAnyTimestamp(v any, loc *time.Location) (time.Time, bool) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05", schema.DateLayout} {
		if ts, err := time.ParseInLocation(layout, s, loc); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

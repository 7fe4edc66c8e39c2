package source

import (
	"context"
	"sync"
	"time"

	"github.com/cogniahq/cognia/internal/contract"
	"github.com/cogniahq/cognia/schema"
)

// ScreenAccumulator collects foreground screen time samples and exposes
// them as daily screen-minute events. A host poller calls Record once per
// observed interval; the accumulator buckets by calendar day. Safe for
// concurrent recording.
type ScreenAccumulator struct {
	mu      sync.Mutex
	minutes map[string]float64 // day key -> accumulated minutes
}

var _ contract.EventSource = &ScreenAccumulator{}

func NewScreenAccumulator() *ScreenAccumulator {
	return &ScreenAccumulator{minutes: make(map[string]float64)}
}

// Record adds one observed foreground interval starting at the given time.
// Negative durations are ignored.
func (a *ScreenAccumulator) Record(start time.Time, d time.Duration) {
	if d <= 0 {
		return
	}
	key := schema.DayOf(start).Format(schema.DateLayout)
	a.mu.Lock()
	a.minutes[key] += d.Minutes()
	a.mu.Unlock()
}

// Load snapshots the accumulated totals as one screen event per day.
func (a *ScreenAccumulator) Load(ctx context.Context) ([]schema.RawEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	raws := make([]schema.RawEvent, 0, len(a.minutes))
	for key, mins := range a.minutes {
		raws = append(raws, schema.RawEvent{
			Timestamp: key + " 12:00:00",
			Kind:      string(schema.KindScreen),
			Magnitude: mins,
		})
	}
	return raws, nil
}

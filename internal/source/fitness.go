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

// fitnessBucket is one pre-bucketed day as exported by the wearable sync.
type fitnessBucket struct {
	Date             string  `json:"date"`
	Steps            float64 `json:"steps"`
	ActiveMinutes    float64 `json:"active_minutes"`
	SleepMinutes     float64 `json:"sleep_minutes"`
	SedentaryMinutes float64 `json:"sedentary_minutes"`
}

// FitnessSource loads daily fitness buckets from a JSON export and fans
// each bucket out into per-metric events for the shared pipeline. The
// export is already daily, so every event lands at noon of its bucket day.
type FitnessSource struct {
	Path string
	Span time.Duration
	Now  func() time.Time
}

var _ contract.EventSource = &FitnessSource{}

func NewFitnessSource(cfg *contract.Config) *FitnessSource {
	return &FitnessSource{Path: cfg.DataPath, Span: cfg.Span, Now: time.Now}
}

func (s *FitnessSource) Load(ctx context.Context) ([]schema.RawEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read fitness export: %w", err)
	}
	var buckets []fitnessBucket
	if err := json.Unmarshal(data, &buckets); err != nil {
		return nil, fmt.Errorf("parse fitness export %s: %w", s.Path, err)
	}

	raws := make([]schema.RawEvent, 0, len(buckets)*3)
	for _, b := range buckets {
		ts := b.Date + " 12:00:00"
		raws = append(raws,
			schema.RawEvent{Timestamp: ts, Kind: string(schema.KindSteps), Magnitude: b.Steps},
			schema.RawEvent{Timestamp: ts, Kind: string(schema.KindActive), Magnitude: b.ActiveMinutes},
			schema.RawEvent{Timestamp: ts, Kind: string(schema.KindSleep), Magnitude: b.SleepMinutes},
		)
	}
	return filterSpan(raws, s.Span, s.Now()), nil
}

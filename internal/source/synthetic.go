package source

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/cogniahq/cognia/internal/contract"
	"github.com/cogniahq/cognia/schema"
)

// SyntheticSource generates a deterministic, plausible call history for
// demos and smoke tests: steady weekday traffic with a lighter weekend,
// plus an optional quiet tail that reproduces a frequency-drop verdict
// end to end without real data.
type SyntheticSource struct {
	Seed      int64
	Days      int
	QuietTail int
	Now       func() time.Time
}

var _ contract.EventSource = &SyntheticSource{}

var syntheticContacts = []string{"Maya", "Sam", "Alex", "Priya", "Jordan"}

// NewSyntheticSource builds a generator covering the configured span.
func NewSyntheticSource(cfg *contract.Config, seed int64, quietTail int) *SyntheticSource {
	days := int(cfg.Span.Hours() / 24)
	if days <= 0 {
		days = contract.DefaultSpanDays
	}
	return &SyntheticSource{Seed: seed, Days: days, QuietTail: quietTail, Now: time.Now}
}

func (s *SyntheticSource) Load(ctx context.Context) ([]schema.RawEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(s.Seed))
	start := schema.DayOf(s.Now()).AddDate(0, 0, -s.Days)

	var raws []schema.RawEvent
	for d := 0; d < s.Days; d++ {
		day := start.AddDate(0, 0, d)
		calls := 2 + rng.Intn(3)
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			calls = 1 + rng.Intn(2)
		}
		if d >= s.Days-s.QuietTail {
			calls = 0
		}
		for c := 0; c < calls; c++ {
			ts := day.Add(time.Duration(9+rng.Intn(12)) * time.Hour).Add(time.Duration(rng.Intn(60)) * time.Minute)
			kind := "INCOMING"
			if rng.Intn(2) == 0 {
				kind = "OUTGOING"
			}
			if rng.Intn(10) == 0 {
				kind = "MISSED"
			}
			raws = append(raws, schema.RawEvent{
				Timestamp: ts.Format("2006-01-02 15:04:05"),
				Kind:      kind,
				Subject:   syntheticContacts[rng.Intn(len(syntheticContacts))],
				Magnitude: fmt.Sprintf("%d", 30+rng.Intn(570)),
			})
		}
	}
	return raws, nil
}

package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cogniahq/cognia/internal/contract"
	"github.com/cogniahq/cognia/schema"
)

// Scheduled-minutes thresholds for the day density buckets.
const (
	mediumDensityMinutes = 120
	highDensityMinutes   = 300
)

// calendarEvent is one scheduled entry in the calendar export.
type calendarEvent struct {
	Summary string `json:"summary"`
	Start   string `json:"start"`
	End     string `json:"end"`
	AllDay  bool   `json:"all_day"`
}

// CalendarSource builds the day→context map from a calendar export. Tags
// come from keyword heuristics over event titles; density comes from the
// total scheduled minutes per day. The correlator treats a failed load as
// an empty map, so this source failing is never fatal to an analysis.
type CalendarSource struct {
	Path string
}

var _ contract.ContextSource = &CalendarSource{}

func NewCalendarSource(cfg *contract.Config) *CalendarSource {
	return &CalendarSource{Path: cfg.ContextPath}
}

func (s *CalendarSource) Load(ctx context.Context) (schema.ContextMap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.Path == "" {
		return schema.ContextMap{}, nil
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read calendar export: %w", err)
	}
	var events []calendarEvent
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("parse calendar export %s: %w", s.Path, err)
	}
	return BuildContextMap(events), nil
}

// BuildContextMap folds calendar events into per-day context.
func BuildContextMap(events []calendarEvent) schema.ContextMap {
	ctx := schema.ContextMap{}
	for _, ev := range events {
		start, ok := parseAnyTimestamp(ev.Start, time.Local)
		if !ok {
			continue
		}
		key := schema.DayOf(start).Format(schema.DateLayout)
		day := ctx[key]

		day.Meetings++
		if !ev.AllDay {
			if end, ok := parseAnyTimestamp(ev.End, time.Local); ok && end.After(start) {
				day.ScheduledMinutes += int(end.Sub(start).Minutes())
			}
		}
		for _, tag := range tagsFor(ev) {
			if !day.HasTag(tag) {
				day.Tags = append(day.Tags, tag)
			}
		}

		switch {
		case day.ScheduledMinutes > highDensityMinutes:
			day.Density = schema.HighDensity
		case day.ScheduledMinutes > mediumDensityMinutes:
			day.Density = schema.MediumDensity
		default:
			day.Density = schema.LowDensity
		}
		ctx[key] = day
	}
	return ctx
}

// tagsFor derives context tags from an event title.
func tagsFor(ev calendarEvent) []schema.TagKind {
	title := strings.ToLower(ev.Summary)
	var tags []schema.TagKind
	if containsAny(title, "travel", "flight", "trip", "airport") {
		tags = append(tags, schema.TagTravel)
	}
	if containsAny(title, "deadline", "exam", "submission", "review", "launch") {
		tags = append(tags, schema.TagHighStakes)
	}
	if ev.AllDay {
		if containsAny(title, "holiday", "vacation") {
			tags = append(tags, schema.TagHoliday)
		}
		if containsAny(title, "birthday", "anniversary", "wedding") {
			tags = append(tags, schema.TagPersonal)
		}
	}
	return tags
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

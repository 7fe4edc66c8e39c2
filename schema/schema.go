// Package schema has configs, models and global variables for all parts of cognia.
package schema

import "time"

// Event is the canonical per-event record produced by the normalizer.
// Every connector output is converted into this strict shape before any
// aggregation happens; leniency toward messy inputs lives entirely in
// the normalization step.
type Event struct {
	Timestamp time.Time // When the event happened (local time)
	Kind      EventKind // Interaction type or metric family
	Subject   string    // Free-text identity, e.g. contact name ("Unknown" if absent)
	Magnitude float64   // Non-negative value: call seconds, step count, minutes
}

// RawEvent is the loosely-typed input shape accepted by the normalizer.
// Timestamp and Magnitude are deliberately `any` because upstream feeds
// deliver them as strings, numbers or placeholder text interchangeably.
type RawEvent struct {
	Timestamp any    `json:"timestamp"`
	Kind      string `json:"type"`
	Subject   string `json:"name"`
	Magnitude any    `json:"duration"`
}

// Histogram counts events per time-of-day bucket.
// Morning is [06:00, 12:00), afternoon [12:00, 18:00), night covers the rest.
type Histogram struct {
	Morning   int `json:"morning"`
	Afternoon int `json:"afternoon"`
	Night     int `json:"night"`
}

// DailyRow is one day of aggregated behavioral features.
// After continuity repair, rows form a gapless sequence from the minimum
// to the maximum observed date, exactly one row per date.
type DailyRow struct {
	Date          time.Time `json:"date"`
	Count         int       `json:"count"`          // Total events that day
	Answered      int       `json:"answered"`       // Events excluding null-interaction kinds
	TalkSeconds   float64   `json:"talk_seconds"`   // Total magnitude across answered events
	AvgDuration   float64   `json:"avg_duration"`   // TalkSeconds / Answered (0 when Answered is 0)
	Steps         float64   `json:"steps"`          // Step count for fitness feeds
	ActiveMinutes float64   `json:"active_minutes"` // Active minutes for fitness feeds
	SleepMinutes  float64   `json:"sleep_minutes"`  // Sleep minutes for fitness feeds
	ScreenMinutes float64   `json:"screen_minutes"` // Screen-on minutes from the screen accumulator
	Hist          Histogram `json:"hist"`
	IsValid       bool      `json:"is_valid"` // Whether the day carries enough signal to be trusted
	Synthetic     bool      `json:"-"`        // Row was synthesized by the continuity repairer
}

// Key returns the canonical ISO date key for the row.
func (r DailyRow) Key() string {
	return r.Date.Format(DateLayout)
}

// Windows holds the baseline/recent partition of a gapless daily sequence.
// Recent is always the chronologically last rows; the two slices never overlap.
type Windows struct {
	Baseline []DailyRow
	Recent   []DailyRow
}

// SubjectCount is a frequency entry for "most engaged with" reporting.
type SubjectCount struct {
	Subject  string    `json:"subject"`
	Count    int       `json:"count"`
	LastSeen time.Time `json:"last_seen"`
}

// DeviationReport carries the window aggregates, the normalized deviation
// score and the anomaly flags derived from them.
type DeviationReport struct {
	Domain Domain `json:"domain"`

	// Ratio-domain aggregates (calls)
	BaselineFreq     float64 `json:"baseline_freq"`
	RecentFreq       float64 `json:"recent_freq"`
	BaselineDuration float64 `json:"baseline_duration"`
	RecentDuration   float64 `json:"recent_duration"`

	// Continuous-domain aggregates (fitness)
	BaselineSteps  float64 `json:"baseline_steps"`
	RecentSteps    float64 `json:"recent_steps"`
	BaselineActive float64 `json:"baseline_active"`
	RecentActive   float64 `json:"recent_active"`
	BaselineSleep  float64 `json:"baseline_sleep"`
	RecentSleep    float64 `json:"recent_sleep"`

	// Dispersion of the primary metric (daily count for calls, steps for
	// fitness) per window; also drives the confidence stability check.
	BaselinePrimaryStd float64 `json:"baseline_primary_std"`
	RecentPrimaryStd   float64 `json:"recent_primary_std"`

	// ZScore is (recent - baseline) / (baseline std + 1). The +1 keeps the
	// score finite on zero-variance baselines at the cost of compressing it
	// for genuinely low-variance subjects. That trade-off is deliberate.
	ZScore float64 `json:"z_score"`

	Flags []AnomalyFlag `json:"flags"` // Deduplicated, sorted by name
}

// HasFlag reports whether the report carries the given anomaly flag.
func (r *DeviationReport) HasFlag(f AnomalyFlag) bool {
	for _, have := range r.Flags {
		if have == f {
			return true
		}
	}
	return false
}

// Verdict is the daily judgment rendered by the classifier, correlator
// and narrative generator.
type Verdict struct {
	Status      Status     `json:"status"`
	Trend       string     `json:"trend"` // Short label, may carry a sleep-delta suffix
	Confidence  Confidence `json:"confidence"`
	Explanation string     `json:"explanation"`
	Suggestion  string     `json:"suggestion"`
}

// AnalysisResult bundles everything a presentation layer needs from one run.
type AnalysisResult struct {
	Verdict      Verdict         `json:"verdict"`
	Report       DeviationReport `json:"report"`
	QualityScore float64         `json:"quality_score"`
	TotalDays    int             `json:"total_days"`
	ValidDays    int             `json:"valid_days"`
	TopSubject   SubjectCount    `json:"top_subject"`
	RecentRows   []DailyRow      `json:"recent_rows"`
}

package core

import (
	"time"

	"github.com/cogniahq/cognia/internal/contract"
	"github.com/cogniahq/cognia/schema"
)

// AggregateAndRepair turns canonical events into a gapless daily feature
// series plus its quality score. The grid is anchored on now, so a quiet
// stretch right before the present still occupies rows. This is the first
// of the engine's two entry points; connectors load the events,
// presentation layers consume the rows.
func AggregateAndRepair(events []schema.Event, cfg *contract.Config, now time.Time) ([]schema.DailyRow, float64) {
	rows := AggregateDaily(events)
	return RepairContinuity(rows, cfg.Domain, cfg.ValidityFloor, now)
}

// Analyze runs the deviation pipeline over a repaired daily series and a
// calendar context map, returning the final verdict. The second engine
// entry point. Inputs are never mutated, so concurrent runs over shared
// snapshots are safe.
func Analyze(rows []schema.DailyRow, ctx schema.ContextMap, cfg *contract.Config) schema.Verdict {
	if len(rows) == 0 {
		return Classify(0, schema.Windows{}, schema.DeviationReport{Domain: cfg.Domain}, cfg)
	}
	w := SplitWindows(rows, cfg.RecentWindow())
	report := Detect(w, cfg.Domain, cfg)
	verdict := Classify(len(rows), w, report, cfg)
	verdict = Correlate(verdict, w.Recent, ctx)
	return BuildNarrative(verdict, report, "")
}

// AnalyzeFull runs the complete pipeline from raw records to a bundled
// result, including subject ranking for the narrative. Malformed records
// are dropped and counted, never fatal.
func AnalyzeFull(raws []schema.RawEvent, ctx schema.ContextMap, cfg *contract.Config, now time.Time) (*schema.AnalysisResult, int) {
	events, dropped := NormalizeBatch(raws, now)

	rows, quality := AggregateAndRepair(events, cfg, now)
	result := &schema.AnalysisResult{
		QualityScore: quality,
		TotalDays:    len(rows),
	}
	for _, row := range rows {
		if row.IsValid {
			result.ValidDays++
		}
	}
	if subjects := SubjectFrequency(events); len(subjects) > 0 {
		result.TopSubject = subjects[0]
	}

	if len(rows) == 0 {
		result.Report = schema.DeviationReport{Domain: cfg.Domain}
		result.Verdict = Classify(0, schema.Windows{}, result.Report, cfg)
		return result, dropped
	}

	w := SplitWindows(rows, cfg.RecentWindow())
	result.Report = Detect(w, cfg.Domain, cfg)
	verdict := Classify(len(rows), w, result.Report, cfg)
	verdict = Correlate(verdict, w.Recent, ctx)
	result.Verdict = BuildNarrative(verdict, result.Report, result.TopSubject.Subject)
	result.RecentRows = w.Recent
	return result, dropped
}

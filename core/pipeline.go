package core

import (
	"context"
	"fmt"
	"time"

	"github.com/cogniahq/cognia/internal/contract"
	"github.com/cogniahq/cognia/schema"
)

// GetAnalysisResults loads events and context through the given sources and
// runs the full deviation pipeline. A context source failure is degraded to
// an empty context map rather than failing the run; an event source failure
// is fatal since there is nothing to analyze.
func GetAnalysisResults(ctx context.Context, cfg *contract.Config, events contract.EventSource, calendar contract.ContextSource) (*schema.AnalysisResult, int, error) {
	raws, err := events.Load(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("load events: %w", err)
	}

	dayCtx := schema.ContextMap{}
	if calendar != nil {
		loaded, err := calendar.Load(ctx)
		if err != nil {
			contract.LogWarn("context source unavailable, continuing without context", err)
		} else if loaded != nil {
			dayCtx = loaded
		}
	}

	result, dropped := AnalyzeFull(raws, dayCtx, cfg, time.Now())
	return result, dropped, nil
}

// GetDailyHistory loads events and returns the repaired daily series with
// its quality score, bypassing classification.
func GetDailyHistory(ctx context.Context, cfg *contract.Config, events contract.EventSource) ([]schema.DailyRow, float64, error) {
	raws, err := events.Load(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("load events: %w", err)
	}
	now := time.Now()
	normalized, _ := NormalizeBatch(raws, now)
	rows, quality := AggregateAndRepair(normalized, cfg, now)
	return rows, quality, nil
}

// RecordRun persists one completed analysis to the run store: the run row,
// its recent daily rows, and the final verdict. Store errors are returned
// but callers typically downgrade them to warnings; losing a tracking row
// must not fail an analysis that already produced its verdict.
func RecordRun(store contract.RunStore, cfg *contract.Config, start, end time.Time, result *schema.AnalysisResult) error {
	params := map[string]any{
		"domain":        string(cfg.Domain),
		"recent_window": cfg.RecentWindow(),
		"min_history":   cfg.MinHistoryDays,
	}
	runID, err := store.BeginRun(start, cfg.Domain, params)
	if err != nil {
		return fmt.Errorf("begin run: %w", err)
	}
	for _, row := range result.RecentRows {
		if err := store.RecordDailyRow(runID, row); err != nil {
			return fmt.Errorf("record daily row %s: %w", row.Key(), err)
		}
	}
	if err := store.EndRun(runID, end, result.Verdict, result.QualityScore, result.TotalDays); err != nil {
		return fmt.Errorf("end run: %w", err)
	}
	return nil
}

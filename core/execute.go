package core

import (
	"context"
	"fmt"
	"time"

	"github.com/cogniahq/cognia/internal/contract"
	"github.com/cogniahq/cognia/internal/outwriter"
	"github.com/cogniahq/cognia/internal/source"
)

// ExecuteAnalyze runs the full deviation pipeline and prints the verdict.
// It serves as the main entry point for the 'analyze' command.
func ExecuteAnalyze(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	result, dropped, err := GetAnalysisResults(ctx, cfg, source.NewEventSource(cfg), source.NewCalendarSource(cfg))
	if err != nil {
		return err
	}
	if dropped > 0 {
		contract.LogWarn(fmt.Sprintf("dropped %d malformed events during normalization", dropped), nil)
	}

	if err := RecordRun(mgr.GetRunStore(), cfg, start, time.Now(), result); err != nil {
		contract.LogWarn("failed to record run", err)
	}

	writer := outwriter.NewOutWriter()
	return writer.WriteVerdict(result, cfg, time.Since(start))
}

// ExecuteQuality prints the data quality summary for the configured feed.
func ExecuteQuality(ctx context.Context, cfg *contract.Config) error {
	result, _, err := GetAnalysisResults(ctx, cfg, source.NewEventSource(cfg), source.NewCalendarSource(cfg))
	if err != nil {
		return err
	}
	writer := outwriter.NewOutWriter()
	return writer.WriteQuality(result, cfg)
}

// ExecuteHistory prints the repaired daily series.
func ExecuteHistory(ctx context.Context, cfg *contract.Config) error {
	rows, _, err := GetDailyHistory(ctx, cfg, source.NewEventSource(cfg))
	if err != nil {
		return err
	}
	writer := outwriter.NewOutWriter()
	return writer.WriteHistory(rows, cfg)
}

// ExecuteContext prints the calendar context map for the analysis window.
func ExecuteContext(ctx context.Context, cfg *contract.Config) error {
	calendar := source.NewCalendarSource(cfg)
	dayCtx, err := calendar.Load(ctx)
	if err != nil {
		return err
	}
	writer := outwriter.NewOutWriter()
	return writer.WriteContext(dayCtx, cfg)
}

// ExecuteDemo runs the pipeline against a deterministic synthetic feed.
// A non-zero quietTail silences the last N days so deviation handling
// can be exercised without real data.
func ExecuteDemo(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, seed int64, quietTail int) error {
	start := time.Now()
	events := source.NewSyntheticSource(cfg, seed, quietTail)
	result, _, err := GetAnalysisResults(ctx, cfg, events, source.NewCalendarSource(cfg))
	if err != nil {
		return err
	}

	if err := RecordRun(mgr.GetRunStore(), cfg, start, time.Now(), result); err != nil {
		contract.LogWarn("failed to record run", err)
	}

	writer := outwriter.NewOutWriter()
	return writer.WriteVerdict(result, cfg, time.Since(start))
}

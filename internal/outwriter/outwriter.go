// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"golang.org/x/term"

	"github.com/cogniahq/cognia/internal/contract"
	"github.com/cogniahq/cognia/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API
// for the command layer.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteVerdict prints an analysis result using the configured output format.
func (ow *OutWriter) WriteVerdict(result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	return PrintVerdictResult(result, cfg, duration)
}

// WriteHistory prints repaired daily rows using the configured output format.
func (ow *OutWriter) WriteHistory(rows []schema.DailyRow, cfg *contract.Config) error {
	return PrintDailyRows(rows, cfg)
}

// WriteQuality prints a data quality summary using the configured output format.
func (ow *OutWriter) WriteQuality(result *schema.AnalysisResult, cfg *contract.Config) error {
	return PrintQualitySummary(result, cfg)
}

// WriteContext prints the day-context map using the configured output format.
func (ow *OutWriter) WriteContext(ctx schema.ContextMap, cfg *contract.Config) error {
	return PrintContextMap(ctx, cfg)
}

// GetMaxTableSubjectWidth calculates the width available for free-text
// columns in table output based on terminal width.
func GetMaxTableSubjectWidth(cfg *contract.Config) int {
	var termWidth int

	// Absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 {
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed numeric columns and table chrome.
	available := termWidth - 50
	if available < 15 {
		return 15
	}
	if available > 60 {
		return 60
	}
	return available
}

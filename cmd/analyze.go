package cmd

import (
	"github.com/cogniahq/cognia/core"
	"github.com/cogniahq/cognia/internal/contract"
	"github.com/spf13/cobra"
)

// analyzeCmd performs the full baseline-and-deviation analysis.
var analyzeCmd = &cobra.Command{
	Use:   "analyze [data-path]",
	Short: "Compare recent behavior against the established baseline.",
	Long: `Ingest an activity feed, build a behavioral baseline, and judge the most
recent days against it.

The pipeline normalizes raw events, aggregates them into daily feature rows,
repairs gaps in the series, then splits it into a baseline window and a recent
window. Deviation rules raise flags (frequency drop, shortened duration,
no activity, energy decline/surge, sleep loss/gain) which the classifier turns
into a status, trend, and confidence. When calendar context is provided, the
correlator explains negative verdicts using travel and schedule density.

Examples:
  # Analyze a call log export
  cognia analyze calls.json

  # Analyze fitness buckets with a wider recent window
  cognia analyze fitness.json --domain fitness --recent-window 5

  # Bring in calendar context for explanation
  cognia analyze calls.json --context calendar.json

  # Export the verdict as JSON
  cognia analyze calls.json --output json --output-file verdict.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAnalyze(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run analysis", err)
		}
	},
}

package cmd

import (
	"github.com/cogniahq/cognia/core"
	"github.com/cogniahq/cognia/internal/contract"
	"github.com/spf13/cobra"
)

// qualityCmd reports how trustworthy the ingested series is.
var qualityCmd = &cobra.Command{
	Use:   "quality [data-path]",
	Short: "Report data quality for an activity feed.",
	Long: `Summarize how complete and trustworthy the ingested series is.

Quality is the share of days carrying a real signal: call days with at least
one event, fitness days above the validity floor. Low quality means the
verdict rests on thin data.

Examples:
  # Check a call log before trusting its verdict
  cognia quality calls.json

  # Check a fitness feed with a stricter floor
  cognia quality fitness.json --domain fitness --validity-floor 1000`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteQuality(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot check quality", err)
		}
	},
}

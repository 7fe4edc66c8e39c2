package cmd

import (
	"github.com/cogniahq/cognia/core"
	"github.com/cogniahq/cognia/internal/contract"
	"github.com/spf13/cobra"
)

// historyCmd shows the repaired daily series without a verdict.
var historyCmd = &cobra.Command{
	Use:   "history [data-path]",
	Short: "Show the repaired daily feature rows.",
	Long: `Print the daily feature series built from an activity feed.

The series is gapless: missing days are filled with synthetic zero rows so
every date between the first and last observation is present. Use this to
inspect what the deviation rules actually see.

Examples:
  # Show the last two weeks of call features
  cognia history calls.json

  # Show more rows with two decimal places
  cognia history calls.json --limit 30 --precision 2

  # Export daily rows to Parquet for analytics
  cognia history calls.json --output parquet --output-file rows.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteHistory(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot show history", err)
		}
	},
}

package cmd

import (
	"github.com/cogniahq/cognia/core"
	"github.com/cogniahq/cognia/internal/contract"
	"github.com/spf13/cobra"
)

// contextCmd inspects the calendar-derived day context.
var contextCmd = &cobra.Command{
	Use:   "context",
	Short: "Show the day-level context derived from a calendar export.",
	Long: `Print the per-day context map built from a calendar export.

Each day carries its meeting count, scheduled minutes, schedule density, and
tags (Travel, High Stakes, Holiday, Personal) inferred from event summaries.
The correlator uses this map to explain negative verdicts.

Examples:
  # Inspect what the correlator would see
  cognia context --context calendar.json

  # Export the context map as CSV
  cognia context --context calendar.json --output csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteContext(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot show context", err)
		}
	},
}

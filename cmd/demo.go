package cmd

import (
	"github.com/cogniahq/cognia/core"
	"github.com/cogniahq/cognia/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// demoCmd runs the pipeline against a deterministic synthetic feed.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the pipeline against a synthetic activity feed.",
	Long: `Generate a deterministic synthetic call feed and analyze it end to end.

Useful for trying the tool without exporting real data, and for demonstrating
deviation handling: --quiet-tail silences the last N days, which should drive
the verdict away from Normal.

Examples:
  # A steady month of synthetic calls
  cognia demo

  # Force a deviation by silencing the last week
  cognia demo --quiet-tail 7

  # Different history, same pipeline
  cognia demo --seed 7 --span "60 days"`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		seed := viper.GetInt64("seed")
		quietTail := viper.GetInt("quiet-tail")
		if err := core.ExecuteDemo(rootCtx, cfg, storeManager, seed, quietTail); err != nil {
			contract.LogFatal("Cannot run demo", err)
		}
	},
}

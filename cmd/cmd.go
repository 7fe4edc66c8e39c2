// Package cmd defines the command-line interface for cognia.
package cmd

import (
	"github.com/cogniahq/cognia/internal/contract"
	"github.com/cogniahq/cognia/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(qualityCmd)
	rootCmd.AddCommand(contextCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(runsCmd)

	// Add the runs subcommands to the parent runs command
	runsCmd.AddCommand(runsClearCmd)
	runsCmd.AddCommand(runsStatusCmd)
	runsCmd.AddCommand(runsExportCmd)
	runsCmd.AddCommand(runsMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("context", "", "Path to a calendar export used for day-level context")
	rootCmd.PersistentFlags().StringP("domain", "d", string(schema.CallsDomain), "Analysis domain: calls or fitness")
	rootCmd.PersistentFlags().String("span", "", "Ingestion span (e.g. '30 days', '6 weeks'); empty means the default")
	rootCmd.PersistentFlags().Int("recent-window", 0, "Days under evaluation (0 = domain default)")
	rootCmd.PersistentFlags().Int("min-history", contract.DefaultMinHistoryDays, "Minimum days of history required for a verdict")
	rootCmd.PersistentFlags().Float64("freq-drop-ratio", contract.DefaultFreqDropRatio, "Recent/baseline frequency ratio that flags a drop")
	rootCmd.PersistentFlags().Float64("duration-drop-ratio", contract.DefaultDurationDropRatio, "Recent/baseline duration ratio that flags a drop")
	rootCmd.PersistentFlags().Float64("z-decline", contract.DefaultZDecline, "Z-score below which fitness activity counts as declining")
	rootCmd.PersistentFlags().Float64("z-improve", contract.DefaultZImprove, "Z-score above which fitness activity counts as surging")
	rootCmd.PersistentFlags().Int("sleep-delta", contract.DefaultSleepDeltaMinutes, "Absolute sleep shift in minutes that raises a flag")
	rootCmd.PersistentFlags().Float64("validity-floor", contract.DefaultValidityFloor, "Step count below which a fitness day is treated as unworn")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of daily rows to display")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("store-backend", string(schema.SQLiteBackend), "Run store backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("store-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of demoCmd to Viper
	demoCmd.Flags().Int64("seed", 42, "Random seed for the synthetic feed")
	demoCmd.Flags().Int("quiet-tail", 0, "Silence the last N synthetic days to force a deviation")
	if err := viper.BindPFlags(demoCmd.Flags()); err != nil {
		contract.LogFatal("Error binding demo flags", err)
	}

	// Bind all flags of runsMigrateCmd to Viper
	runsMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(runsMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding runs migrate flags", err)
	}
}

package iostore

import (
	"errors"
	"fmt"

	"github.com/cogniahq/cognia/internal/parquet"
)

// ExecuteRunsExport exports recorded run data to Parquet files, one file
// per table, named from the given output prefix.
func ExecuteRunsExport(outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	store := Manager.GetRunStore()

	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get run store status: %w", err)
	}
	if status.TotalRuns == 0 {
		return errors.New("no run data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total runs: %d\n", status.TotalRuns)
	fmt.Printf("Total daily rows: %d\n", status.TableSizeBytes[dailyRowsTable])

	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}
	dailyRows, err := store.GetAllDailyRows()
	if err != nil {
		return fmt.Errorf("failed to retrieve daily rows: %w", err)
	}

	runsFile := outputFile + ".runs.parquet"
	if err := parquet.WriteRunsParquet(parquet.ConvertRunRecords(runs), runsFile); err != nil {
		return fmt.Errorf("failed to write runs: %w", err)
	}
	fmt.Printf("Exported %d runs to: %s\n", len(runs), runsFile)

	rowsFile := outputFile + ".daily_rows.parquet"
	if err := parquet.WriteDailyFeaturesParquet(parquet.ConvertDailyRowRecords(dailyRows), rowsFile); err != nil {
		return fmt.Errorf("failed to write daily rows: %w", err)
	}
	fmt.Printf("Exported %d daily rows to: %s\n", len(dailyRows), rowsFile)

	return nil
}

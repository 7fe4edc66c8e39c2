package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/cogniahq/cognia/internal/contract"
	"github.com/cogniahq/cognia/internal/parquet"
	"github.com/cogniahq/cognia/schema"
)

// PrintDailyRows outputs the repaired daily feature series, dispatching
// based on the output format configured. Rows beyond the configured result
// limit are trimmed from the front, keeping the newest days.
func PrintDailyRows(rows []schema.DailyRow, cfg *contract.Config) error {
	if cfg.ResultLimit > 0 && len(rows) > cfg.ResultLimit {
		rows = rows[len(rows)-cfg.ResultLimit:]
	}
	fmtFloat := createFloatFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONDailyRows(rows, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVDailyRows(rows, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := printParquetDailyRows(rows, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		if err := printDailyRowsTable(rows, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing history table output: %w", err)
		}
	}
	return nil
}

func printJSONDailyRows(rows []schema.DailyRow, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, rows)
	}, "Wrote JSON daily history")
}

func printCSVDailyRows(rows []schema.DailyRow, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVDailyRows(csvWriter, rows, fmtFloat)
	}, "Wrote CSV daily history")
}

// printParquetDailyRows writes the series to a Parquet file. Unlike the
// text formats this cannot stream to stdout, so an output file is required.
func printParquetDailyRows(rows []schema.DailyRow, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return errors.New("--output-file is required for parquet output")
	}
	features := make([]parquet.DailyFeature, len(rows))
	for i, row := range rows {
		features[i] = parquet.DailyFeature{
			Date:          row.Key(),
			Count:         int32(row.Count),
			AvgDuration:   row.AvgDuration,
			Steps:         row.Steps,
			ActiveMinutes: row.ActiveMinutes,
			SleepMinutes:  row.SleepMinutes,
			IsValid:       row.IsValid,
		}
	}
	if err := parquet.WriteDailyFeaturesParquet(features, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote Parquet daily history to %s\n", cfg.OutputFile)
	return nil
}

// writeCSVDailyRows writes the daily series to a CSV writer.
func writeCSVDailyRows(w *csv.Writer, rows []schema.DailyRow, fmtFloat func(float64) string) error {
	header := []string{
		"date",
		"count",
		"avg_duration",
		"steps",
		"active_minutes",
		"sleep_minutes",
		"screen_minutes",
		"morning",
		"afternoon",
		"night",
		"is_valid",
		"synthetic",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			row.Key(),
			fmt.Sprintf("%d", row.Count),
			fmtFloat(row.AvgDuration),
			fmtFloat(row.Steps),
			fmtFloat(row.ActiveMinutes),
			fmtFloat(row.SleepMinutes),
			fmtFloat(row.ScreenMinutes),
			fmt.Sprintf("%d", row.Hist.Morning),
			fmt.Sprintf("%d", row.Hist.Afternoon),
			fmt.Sprintf("%d", row.Hist.Night),
			fmt.Sprintf("%t", row.IsValid),
			fmt.Sprintf("%t", row.Synthetic),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

// printDailyRowsTable prints the series in a human-readable table.
func printDailyRowsTable(rows []schema.DailyRow, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(os.Stdout)

	if cfg.Domain == schema.FitnessDomain {
		table.Header([]string{"Date", "Steps", "Active", "Sleep", "Valid"})
	} else {
		table.Header([]string{"Date", "Calls", "Avg Dur", "AM/PM/Night", "Valid"})
	}

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, row := range rows {
		valid := "yes"
		if !row.IsValid {
			valid = "no"
		}
		if row.Synthetic {
			valid += " (filled)"
		}
		if cfg.Domain == schema.FitnessDomain {
			data = append(data, []string{
				row.Key(),
				fmtFloat(row.Steps),
				fmtFloat(row.ActiveMinutes),
				fmtFloat(row.SleepMinutes),
				valid,
			})
		} else {
			data = append(data, []string{
				row.Key(),
				fmt.Sprintf("%d", row.Count),
				fmtFloat(row.AvgDuration),
				fmt.Sprintf("%d/%d/%d", row.Hist.Morning, row.Hist.Afternoon, row.Hist.Night),
				valid,
			})
		}
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/cogniahq/cognia/internal/contract"
	"github.com/cogniahq/cognia/schema"
)

// PrintVerdictResult outputs the analysis verdict, dispatching based on the
// output format configured.
func PrintVerdictResult(result *schema.AnalysisResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFloatFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONVerdict(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVVerdict(result, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		if err := printVerdictText(result, cfg, fmtFloat, duration); err != nil {
			return fmt.Errorf("error writing verdict output: %w", err)
		}
	}
	return nil
}

func printJSONVerdict(result *schema.AnalysisResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, result)
	}, "Wrote JSON verdict")
}

func printCSVVerdict(result *schema.AnalysisResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVVerdict(csvWriter, result, fmtFloat)
	}, "Wrote CSV verdict")
}

// writeCSVVerdict writes the verdict as a single CSV record.
func writeCSVVerdict(w *csv.Writer, result *schema.AnalysisResult, fmtFloat func(float64) string) error {
	header := []string{
		"domain",
		"status",
		"trend",
		"confidence",
		"explanation",
		"suggestion",
		"quality_score",
		"total_days",
		"valid_days",
		"top_subject",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	row := []string{
		string(result.Report.Domain),
		string(result.Verdict.Status),
		result.Verdict.Trend,
		string(result.Verdict.Confidence),
		result.Verdict.Explanation,
		result.Verdict.Suggestion,
		fmtFloat(result.QualityScore),
		fmt.Sprintf("%d", result.TotalDays),
		fmt.Sprintf("%d", result.ValidDays),
		result.TopSubject.Subject,
	}
	return w.Write(row)
}

// printVerdictText prints the human-readable verdict summary.
func printVerdictText(result *schema.AnalysisResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	v := result.Verdict

	fmt.Printf("Status: %s\n", contract.GetColorStatusLabel(v.Status))
	fmt.Printf("Trend: %s\n", v.Trend)
	fmt.Printf("Confidence: %s\n", v.Confidence)
	fmt.Printf("Explanation: %s\n", v.Explanation)
	fmt.Printf("Suggestion: %s\n", v.Suggestion)
	fmt.Println()

	report := result.Report
	if report.Domain == schema.FitnessDomain {
		fmt.Printf("Steps (median): %s baseline vs %s recent\n", fmtFloat(report.BaselineSteps), fmtFloat(report.RecentSteps))
		fmt.Printf("Active minutes (mean): %s baseline vs %s recent\n", fmtFloat(report.BaselineActive), fmtFloat(report.RecentActive))
		fmt.Printf("Sleep minutes (mean): %s baseline vs %s recent\n", fmtFloat(report.BaselineSleep), fmtFloat(report.RecentSleep))
		fmt.Printf("Z-score: %s\n", fmtFloat(report.ZScore))
	} else {
		fmt.Printf("Daily calls (mean): %s baseline vs %s recent\n", fmtFloat(report.BaselineFreq), fmtFloat(report.RecentFreq))
		fmt.Printf("Call duration (sec): %s baseline vs %s recent\n", fmtFloat(report.BaselineDuration), fmtFloat(report.RecentDuration))
		if result.TopSubject.Subject != "" {
			subject := contract.TruncateSubject(result.TopSubject.Subject, GetMaxTableSubjectWidth(cfg))
			fmt.Printf("Top contact: %s (%d interactions)\n", subject, result.TopSubject.Count)
		}
	}
	if len(report.Flags) > 0 {
		fmt.Printf("Flags: ")
		for i, f := range report.Flags {
			if i > 0 {
				fmt.Printf(", ")
			}
			fmt.Printf("%s", f)
		}
		fmt.Println()
	}

	fmt.Printf("\nData quality: %s%% over %d days (%d valid)\n", fmtFloat(result.QualityScore), result.TotalDays, result.ValidDays)
	fmt.Printf("Analysis completed in %v. Store backend: %s\n", duration, cfg.StoreBackend)
	return nil
}

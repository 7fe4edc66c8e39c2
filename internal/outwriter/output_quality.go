package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/cogniahq/cognia/internal/contract"
	"github.com/cogniahq/cognia/schema"
)

// qualityView is the serialization shape for quality output.
type qualityView struct {
	Domain       schema.Domain `json:"domain"`
	QualityScore float64       `json:"quality_score"`
	TotalDays    int           `json:"total_days"`
	ValidDays    int           `json:"valid_days"`
	MissingDays  int           `json:"missing_days"`
}

func qualityViewOf(result *schema.AnalysisResult) qualityView {
	return qualityView{
		Domain:       result.Report.Domain,
		QualityScore: result.QualityScore,
		TotalDays:    result.TotalDays,
		ValidDays:    result.ValidDays,
		MissingDays:  result.TotalDays - result.ValidDays,
	}
}

// PrintQualitySummary outputs the data quality summary, dispatching based
// on the output format configured.
func PrintQualitySummary(result *schema.AnalysisResult, cfg *contract.Config) error {
	fmtFloat := createFloatFormatter(cfg.Precision)
	view := qualityViewOf(result)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, view)
		}, "Wrote JSON quality summary")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVQuality(csvWriter, view, fmtFloat)
		}, "Wrote CSV quality summary")
	default:
		fmt.Printf("Domain: %s\n", view.Domain)
		fmt.Printf("Quality Score: %s%%\n", fmtFloat(view.QualityScore))
		fmt.Printf("Total Days: %d\n", view.TotalDays)
		fmt.Printf("Valid Days: %d\n", view.ValidDays)
		fmt.Printf("Missing/Invalid Days: %d\n", view.MissingDays)
		return nil
	}
}

func writeCSVQuality(w *csv.Writer, view qualityView, fmtFloat func(float64) string) error {
	if err := w.Write([]string{"domain", "quality_score", "total_days", "valid_days", "missing_days"}); err != nil {
		return err
	}
	return w.Write([]string{
		string(view.Domain),
		fmtFloat(view.QualityScore),
		fmt.Sprintf("%d", view.TotalDays),
		fmt.Sprintf("%d", view.ValidDays),
		fmt.Sprintf("%d", view.MissingDays),
	})
}

// Package parquet provides data structures and functions for exporting
// recorded analysis runs to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/cogniahq/cognia/schema"
)

// AnalysisRun represents a single recorded analysis run with metadata.
// This struct maps to the cognia_runs database table.
type AnalysisRun struct {
	// RunID is the unique identifier for this run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the run began
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// Domain is the behavioral domain analyzed (calls or fitness)
	Domain string `parquet:"domain,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`

	// Status is the final verdict status for this run
	Status string `parquet:"status,snappy"`

	// Trend is the trend label, possibly carrying a sleep-delta suffix
	Trend string `parquet:"trend,snappy"`

	// Confidence qualifies how much the verdict should be trusted
	Confidence string `parquet:"confidence,snappy"`

	// QualityScore is the percentage of valid days over the analyzed range
	QualityScore float64 `parquet:"quality_score,snappy"`

	// TotalDays is the number of repaired days covered by the run
	TotalDays int32 `parquet:"total_days,snappy"`
}

// DailyFeature represents one repaired daily feature row of a run.
// This struct maps to the cognia_daily_rows database table.
type DailyFeature struct {
	// RunID references the parent run
	RunID int64 `parquet:"run_id,snappy"`

	// Date is the calendar day in YYYY-MM-DD form
	Date string `parquet:"row_date,snappy"`

	// Count is the number of interactions on the day
	Count int32 `parquet:"call_count,snappy"`

	// AvgDuration is the mean talk time per answered call, in seconds
	AvgDuration float64 `parquet:"avg_duration,snappy"`

	// Steps is the daily step total
	Steps float64 `parquet:"steps,snappy"`

	// ActiveMinutes is the daily active-minute total
	ActiveMinutes float64 `parquet:"active_minutes,snappy"`

	// SleepMinutes is the daily sleep-minute total
	SleepMinutes float64 `parquet:"sleep_minutes,snappy"`

	// IsValid marks whether the day cleared the domain validity rule
	IsValid bool `parquet:"is_valid,snappy"`
}

// ConvertRunRecords maps store records into their Parquet representation.
func ConvertRunRecords(records []schema.RunRecord) []AnalysisRun {
	runs := make([]AnalysisRun, len(records))
	for i, r := range records {
		runs[i] = AnalysisRun{
			RunID:        r.RunID,
			StartTime:    r.StartTime,
			EndTime:      r.EndTime,
			Domain:       r.Domain,
			ConfigParams: r.ConfigParams,
			Status:       r.Status,
			Trend:        r.Trend,
			Confidence:   r.Confidence,
			QualityScore: r.QualityScore,
			TotalDays:    r.TotalDays,
		}
	}
	return runs
}

// ConvertDailyRowRecords maps store records into their Parquet representation.
func ConvertDailyRowRecords(records []schema.DailyRowRecord) []DailyFeature {
	features := make([]DailyFeature, len(records))
	for i, r := range records {
		features[i] = DailyFeature{
			RunID:         r.RunID,
			Date:          r.Date,
			Count:         r.Count,
			AvgDuration:   r.AvgDuration,
			Steps:         r.Steps,
			ActiveMinutes: r.ActiveMinutes,
			SleepMinutes:  r.SleepMinutes,
			IsValid:       r.IsValid,
		}
	}
	return features
}

// MockFetchRuns generates sample AnalysisRun data for demonstration.
func MockFetchRuns() []AnalysisRun {
	now := time.Now()
	startTime1 := now.Add(-2 * time.Hour)
	endTime1 := startTime1.Add(3 * time.Second)
	configParams1 := `{"domain":"calls","recent_window":7,"min_history":7}`

	startTime2 := now.Add(-24 * time.Hour)
	endTime2 := startTime2.Add(2 * time.Second)
	configParams2 := `{"domain":"fitness","recent_window":3,"min_history":7}`

	startTime3 := now.Add(-10 * time.Minute)
	// Note: endTime3 and configParams3 are nil to demonstrate nullable fields

	return []AnalysisRun{
		{
			RunID:        1,
			StartTime:    startTime1,
			EndTime:      &endTime1,
			Domain:       "calls",
			ConfigParams: &configParams1,
			Status:       "Normal",
			Trend:        "Stable",
			Confidence:   "Medium",
			QualityScore: 96.7,
			TotalDays:    30,
		},
		{
			RunID:        2,
			StartTime:    startTime2,
			EndTime:      &endTime2,
			Domain:       "fitness",
			ConfigParams: &configParams2,
			Status:       "Needs Attention",
			Trend:        "Declining (Sleep Loss)",
			Confidence:   "High",
			QualityScore: 80.0,
			TotalDays:    30,
		},
		{
			RunID:        3,
			StartTime:    startTime3,
			EndTime:      nil, // Still running - nullable field
			Domain:       "calls",
			ConfigParams: nil, // No config stored - nullable field
			Status:       "Insufficient Data",
			Trend:        "Unknown",
			Confidence:   "Low",
			QualityScore: 0,
			TotalDays:    0,
		},
	}
}

// MockFetchDailyFeatures generates sample DailyFeature data for demonstration.
func MockFetchDailyFeatures() []DailyFeature {
	return []DailyFeature{
		{
			RunID:       1,
			Date:        "2026-08-28",
			Count:       3,
			AvgDuration: 145.5,
			IsValid:     true,
		},
		{
			RunID:       1,
			Date:        "2026-08-29",
			Count:       0,
			AvgDuration: 0,
			IsValid:     false,
		},
		{
			RunID:         2,
			Date:          "2026-08-29",
			Steps:         8421,
			ActiveMinutes: 52,
			SleepMinutes:  415,
			IsValid:       true,
		},
	}
}

// WriteRunsParquet writes a slice of AnalysisRun structs to a Parquet file.
func WriteRunsParquet(data []AnalysisRun, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Schema is inferred from the AnalysisRun struct tags
	writer := parquet.NewGenericWriter[AnalysisRun](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}

// WriteDailyFeaturesParquet writes a slice of DailyFeature structs to a Parquet file.
func WriteDailyFeaturesParquet(data []DailyFeature, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[DailyFeature](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}

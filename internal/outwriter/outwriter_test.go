package outwriter

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cogniahq/cognia/internal/contract"
	"github.com/cogniahq/cognia/schema"
)

func sampleResult() *schema.AnalysisResult {
	return &schema.AnalysisResult{
		Verdict: schema.Verdict{
			Status:      schema.StatusSlightlyOff,
			Trend:       "Declining",
			Confidence:  schema.MediumConfidence,
			Explanation: "unexplained deviation; monitor further",
			Suggestion:  "a quiet stretch; a short walk or call could reset the day",
		},
		Report: schema.DeviationReport{
			Domain:       schema.CallsDomain,
			BaselineFreq: 3.0,
			RecentFreq:   1.0,
			Flags:        []schema.AnomalyFlag{schema.FlagFrequencyDrop},
		},
		QualityScore: 93.3,
		TotalDays:    30,
		ValidDays:    28,
		TopSubject:   schema.SubjectCount{Subject: "Maya", Count: 12},
	}
}

func sampleRows() []schema.DailyRow {
	return []schema.DailyRow{
		{
			Date:        time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
			Count:       3,
			AvgDuration: 120.5,
			Hist:        schema.Histogram{Morning: 1, Afternoon: 2},
			IsValid:     true,
		},
		{
			Date:      time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
			Synthetic: true,
		},
	}
}

func TestWriteCSVVerdict(t *testing.T) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	require.NoError(t, writeCSVVerdict(w, sampleResult(), createFloatFormatter(1)))
	w.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "status,trend,confidence")
	assert.Contains(t, lines[1], "Slightly Off")
	assert.Contains(t, lines[1], "93.3")
	assert.Contains(t, lines[1], "Maya")
}

func TestWriteCSVDailyRows(t *testing.T) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	require.NoError(t, writeCSVDailyRows(w, sampleRows(), createFloatFormatter(1)))
	w.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "2026-08-28")
	assert.Contains(t, lines[1], "120.5")
	assert.Contains(t, lines[2], "true") // synthetic filler row
}

func TestWriteCSVQuality(t *testing.T) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	view := qualityViewOf(sampleResult())
	require.NoError(t, writeCSVQuality(w, view, createFloatFormatter(1)))
	w.Flush()

	assert.Equal(t, 2, view.MissingDays)
	assert.Contains(t, buf.String(), "calls,93.3,30,28,2")
}

func TestWriteCSVContext(t *testing.T) {
	ctx := schema.ContextMap{
		"2026-08-20": {Tags: []schema.TagKind{schema.TagTravel, schema.TagHighStakes}, Meetings: 2, ScheduledMinutes: 180, Density: schema.MediumDensity},
		"2026-08-19": {Density: schema.LowDensity},
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	require.NoError(t, writeCSVContext(w, ctx, []string{"2026-08-19", "2026-08-20"}))
	w.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[2], "Travel|High Stakes")
	assert.Contains(t, lines[2], "180")
}

func TestWriteJSONIndents(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, sampleResult()))
	assert.Contains(t, buf.String(), "\n  \"verdict\"")
}

func TestGetMaxTableSubjectWidthOverride(t *testing.T) {
	assert.Equal(t, 60, GetMaxTableSubjectWidth(&contract.Config{Width: 200}))
	assert.Equal(t, 30, GetMaxTableSubjectWidth(&contract.Config{Width: 80}))
	assert.Equal(t, 15, GetMaxTableSubjectWidth(&contract.Config{Width: 40}))
}

func TestPrintDailyRowsTableDoesNotError(t *testing.T) {
	cfg := &contract.Config{Output: schema.TextOut, Precision: 1, Width: 100}
	require.NoError(t, PrintDailyRows(sampleRows(), cfg))
}

func TestPrintVerdictTextDoesNotError(t *testing.T) {
	cfg := &contract.Config{Output: schema.TextOut, Precision: 1, Width: 100, StoreBackend: schema.NoneBackend}
	require.NoError(t, PrintVerdictResult(sampleResult(), cfg, time.Millisecond))
}

func TestPrintDailyRowsParquetRequiresFile(t *testing.T) {
	cfg := &contract.Config{Output: schema.ParquetOut, Precision: 1}
	err := PrintDailyRows(sampleRows(), cfg)
	assert.Error(t, err)
}

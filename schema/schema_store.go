package schema

import "time"

// RunStoreStatus represents the status of the run tracking store.
type RunStoreStatus struct {
	Backend        string           `json:"backend"`
	Connected      bool             `json:"connected"`
	TotalRuns      int              `json:"total_runs"`
	LastRunID      int64            `json:"last_run_id"`
	LastRunTime    time.Time        `json:"last_run_time"`
	OldestRunTime  time.Time        `json:"oldest_run_time"`
	TotalDaysKept  int              `json:"total_days_kept"`
	TableSizeBytes map[string]int64 `json:"table_size_bytes"`
}

// RunRecord represents a row from the cognia_runs table.
type RunRecord struct {
	RunID        int64
	StartTime    time.Time
	EndTime      *time.Time
	Domain       string
	ConfigParams *string
	Status       string
	Trend        string
	Confidence   string
	QualityScore float64
	TotalDays    int32
}

// DailyRowRecord represents a row from the cognia_daily_rows table.
type DailyRowRecord struct {
	RunID         int64
	Date          string
	Count         int32
	AvgDuration   float64
	Steps         float64
	ActiveMinutes float64
	SleepMinutes  float64
	IsValid       bool
}

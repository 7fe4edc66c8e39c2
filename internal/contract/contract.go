// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/cogniahq/cognia/schema"
)

// EventSource defines how raw behavioral events reach the engine.
// Connectors own all I/O; the engine itself never touches files or sockets.
type EventSource interface {
	// Load returns the raw event records for the configured span.
	// Individual malformed records are the normalizer's problem, not the
	// source's; the source only fails when the feed as a whole is unreadable.
	Load(ctx context.Context) ([]schema.RawEvent, error)
}

// ContextSource defines how day-level context (calendar load, travel tags)
// reaches the correlator. A failing context source must never break the
// deviation pipeline, so callers treat errors as "empty context".
type ContextSource interface {
	Load(ctx context.Context) (schema.ContextMap, error)
}

// RunStore defines the interface for tracking analysis runs and their rows.
// This allows the store layer to be mocked for testing.
type RunStore interface {
	// BeginRun creates a new run and returns its unique ID.
	BeginRun(startTime time.Time, domain schema.Domain, configParams map[string]any) (int64, error)

	// EndRun finalizes the run with its verdict and quality metadata.
	EndRun(runID int64, endTime time.Time, verdict schema.Verdict, quality float64, totalDays int) error

	// RecordDailyRow stores one repaired daily feature row for the run.
	RecordDailyRow(runID int64, row schema.DailyRow) error

	// GetStatus returns status information about the store.
	GetStatus() (schema.RunStoreStatus, error)

	// GetAllRuns returns every recorded run, newest first.
	GetAllRuns() ([]schema.RunRecord, error)

	// GetAllDailyRows returns every recorded daily row.
	GetAllDailyRows() ([]schema.DailyRowRecord, error)

	// Close closes the underlying connection.
	Close() error
}

// StoreManager defines the interface for accessing the run store.
type StoreManager interface {
	GetRunStore() RunStore
}

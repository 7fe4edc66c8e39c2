package source

import (
	"github.com/cogniahq/cognia/internal/contract"
	"github.com/cogniahq/cognia/schema"
)

// NewEventSource returns the file-backed event source for the configured
// domain: the call log reader for calls, the fitness export reader for
// fitness.
func NewEventSource(cfg *contract.Config) contract.EventSource {
	if cfg.Domain == schema.FitnessDomain {
		return NewFitnessSource(cfg)
	}
	return NewCallLogSource(cfg)
}

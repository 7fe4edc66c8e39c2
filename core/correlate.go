package core

import (
	"strings"

	"github.com/cogniahq/cognia/schema"
)

// Canonical correlator explanations.
const (
	ExplainTravel      = "deviation likely caused by travel"
	ExplainHighLoad    = "schedule density correlates with reduced activity"
	ExplainUnexplained = "unexplained deviation; monitor further"
)

// Correlate reinterprets a negative verdict against calendar context.
// It is a read-only lookup layer: it never raises or clears anomaly
// flags, only rewrites the explanation and confidence when the recent
// window overlaps with known context. Positive and neutral verdicts
// pass through untouched. An empty context map is valid input and
// simply leaves the deviation unexplained.
func Correlate(verdict schema.Verdict, recent []schema.DailyRow, ctx schema.ContextMap) schema.Verdict {
	if !isNegative(verdict) {
		return verdict
	}

	travelDays, highLoadDays := 0, 0
	for _, row := range recent {
		day, ok := ctx[row.Key()]
		if !ok {
			continue
		}
		if day.HasTag(schema.TagTravel) {
			travelDays++
		}
		if day.HasTag(schema.TagHighStakes) || day.Density == schema.HighDensity {
			highLoadDays++
		}
	}

	switch {
	case travelDays > 0:
		verdict.Explanation = ExplainTravel
		verdict.Confidence = schema.HighConfidence
	case highLoadDays > 0:
		verdict.Explanation = ExplainHighLoad
		verdict.Confidence = schema.HighConfidence
	default:
		verdict.Explanation = ExplainUnexplained
	}
	return verdict
}

func isNegative(v schema.Verdict) bool {
	return v.Status == schema.StatusNeedsAttention || strings.HasPrefix(v.Trend, TrendDeclining)
}

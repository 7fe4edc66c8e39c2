package core

import (
	"github.com/cogniahq/cognia/internal/contract"
	"github.com/cogniahq/cognia/schema"
)

// Trend labels. Sleep flags append a suffix rather than changing the label,
// since a sleep shift is an orthogonal signal to the primary metric.
const (
	TrendUnknown   = "Unknown"
	TrendStable    = "Stable"
	TrendDeclining = "Declining"
	TrendImproving = "Improving"

	sleepLossSuffix = " (Sleep Loss)"
	sleepGainSuffix = " (Sleep +)"
)

// Classify renders a status/trend/confidence triple from the deviation
// report. Rules, in priority order:
//
//  1. Too little history, or an empty baseline, short-circuits to
//     Insufficient Data. No deviation math applies.
//  2. Primary flag count drives the status: zero flags is Normal, one is
//     Slightly Off, two or more is Needs Attention. Sleep flags are
//     excluded from the count.
//  3. Fitness z-score flags override the count: a surge means
//     Energetic/Improving (not a problem to raise), a decline means
//     Needs Attention/Declining even as a lone flag.
//
// Confidence starts Medium and is demoted to Low when the recent window
// is noisier than twice the baseline dispersion.
func Classify(totalDays int, w schema.Windows, report schema.DeviationReport, cfg *contract.Config) schema.Verdict {
	if len(w.Baseline) == 0 || totalDays < cfg.MinHistoryDays {
		return schema.Verdict{
			Status:      schema.StatusInsufficientData,
			Trend:       TrendUnknown,
			Confidence:  schema.LowConfidence,
			Explanation: "not enough history to establish a baseline",
		}
	}

	verdict := schema.Verdict{Confidence: schema.MediumConfidence}

	switch countPrimaryFlags(report.Flags) {
	case 0:
		verdict.Status = schema.StatusNormal
	case 1:
		verdict.Status = schema.StatusSlightlyOff
	default:
		verdict.Status = schema.StatusNeedsAttention
	}

	verdict.Trend = TrendStable
	switch {
	case report.HasFlag(schema.FlagEnergySurge):
		verdict.Status = schema.StatusEnergetic
		verdict.Trend = TrendImproving
	case report.HasFlag(schema.FlagEnergyDecline):
		// A declining z-score is urgent on its own; the count-based
		// mapping applies to the calls rules only.
		verdict.Status = schema.StatusNeedsAttention
		verdict.Trend = TrendDeclining
	case verdict.Status != schema.StatusNormal:
		verdict.Trend = TrendDeclining
	}

	switch {
	case report.HasFlag(schema.FlagSleepLoss):
		verdict.Trend += sleepLossSuffix
	case report.HasFlag(schema.FlagSleepGain):
		verdict.Trend += sleepGainSuffix
	}

	if report.RecentPrimaryStd > 2*report.BaselinePrimaryStd {
		verdict.Confidence = schema.LowConfidence
	}

	verdict.Explanation = baseExplanation(verdict)
	return verdict
}

// countPrimaryFlags counts the flags that bear on the primary metric.
func countPrimaryFlags(flags []schema.AnomalyFlag) int {
	n := 0
	for _, f := range flags {
		if f == schema.FlagSleepLoss || f == schema.FlagSleepGain {
			continue
		}
		n++
	}
	return n
}

func baseExplanation(v schema.Verdict) string {
	switch v.Status {
	case schema.StatusNormal:
		return "behavior is within the established baseline"
	case schema.StatusEnergetic:
		return "activity is trending well above the baseline"
	default:
		return "unexplained deviation; monitor further"
	}
}

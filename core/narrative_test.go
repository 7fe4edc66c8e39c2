package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cogniahq/cognia/schema"
)

func TestBuildNarrativeMentionsTopSubject(t *testing.T) {
	report := schema.DeviationReport{Domain: schema.CallsDomain}
	verdict := BuildNarrative(schema.Verdict{Status: schema.StatusNormal}, report, "Maya")
	assert.Contains(t, verdict.Suggestion, "Maya")
}

func TestBuildNarrativeWithoutSubject(t *testing.T) {
	report := schema.DeviationReport{Domain: schema.FitnessDomain}
	verdict := BuildNarrative(schema.Verdict{Status: schema.StatusNormal}, report, "")
	assert.NotEmpty(t, verdict.Suggestion)
	assert.NotContains(t, verdict.Suggestion, "%s")
}

func TestBuildNarrativePerStatus(t *testing.T) {
	report := schema.DeviationReport{Domain: schema.FitnessDomain}
	for _, status := range []schema.Status{
		schema.StatusInsufficientData,
		schema.StatusNormal,
		schema.StatusSlightlyOff,
		schema.StatusNeedsAttention,
		schema.StatusEnergetic,
	} {
		verdict := BuildNarrative(schema.Verdict{Status: status}, report, "")
		assert.NotEmpty(t, verdict.Suggestion, "status %s", status)
	}
}

// Suggestions end up in CSV cells and narrow terminals, so they stick to
// plain ASCII punctuation.
func TestBuildNarrativeASCIIPunctuation(t *testing.T) {
	for _, domain := range []schema.Domain{schema.CallsDomain, schema.FitnessDomain} {
		report := schema.DeviationReport{Domain: domain}
		for _, status := range []schema.Status{
			schema.StatusInsufficientData,
			schema.StatusNormal,
			schema.StatusSlightlyOff,
			schema.StatusNeedsAttention,
			schema.StatusEnergetic,
		} {
			verdict := BuildNarrative(schema.Verdict{Status: status}, report, "Maya")
			for _, r := range verdict.Suggestion {
				assert.Less(t, r, rune(128), "status %s: %q", status, verdict.Suggestion)
			}
		}
	}
}

func TestBuildNarrativeEchoesCorrelatorExplanations(t *testing.T) {
	report := schema.DeviationReport{Domain: schema.FitnessDomain}

	v := BuildNarrative(schema.Verdict{Status: schema.StatusNeedsAttention, Explanation: ExplainTravel}, report, "")
	assert.Contains(t, v.Suggestion, "travel")

	v = BuildNarrative(schema.Verdict{Status: schema.StatusNeedsAttention, Explanation: ExplainHighLoad}, report, "")
	assert.Contains(t, v.Suggestion, "schedule")
}

func TestBuildNarrativeDeterministic(t *testing.T) {
	report := schema.DeviationReport{Domain: schema.CallsDomain}
	in := schema.Verdict{Status: schema.StatusSlightlyOff, Trend: TrendDeclining}
	assert.Equal(t, BuildNarrative(in, report, "Sam"), BuildNarrative(in, report, "Sam"))
}

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cogniahq/cognia/schema"
)

func TestClassifyInsufficientHistory(t *testing.T) {
	w := SplitWindows(countRows(2, 3, 2), 7)
	verdict := Classify(3, w, schema.DeviationReport{Domain: schema.CallsDomain}, testConfig(schema.CallsDomain))

	assert.Equal(t, schema.StatusInsufficientData, verdict.Status)
	assert.Equal(t, TrendUnknown, verdict.Trend)
	assert.Equal(t, schema.LowConfidence, verdict.Confidence)
}

func TestClassifyEmptyBaseline(t *testing.T) {
	verdict := Classify(30, schema.Windows{}, schema.DeviationReport{}, testConfig(schema.CallsDomain))
	assert.Equal(t, schema.StatusInsufficientData, verdict.Status)
}

func TestClassifyFlagCount(t *testing.T) {
	w := SplitWindows(makeSeries(14), 7)
	cfg := testConfig(schema.CallsDomain)

	for _, tc := range []struct {
		name  string
		flags []schema.AnomalyFlag
		want  schema.Status
		trend string
	}{
		{"no flags", nil, schema.StatusNormal, TrendStable},
		{"one flag", []schema.AnomalyFlag{schema.FlagFrequencyDrop}, schema.StatusSlightlyOff, TrendDeclining},
		{"two flags", []schema.AnomalyFlag{schema.FlagFrequencyDrop, schema.FlagShortenedDuration}, schema.StatusNeedsAttention, TrendDeclining},
		{"three flags", []schema.AnomalyFlag{schema.FlagFrequencyDrop, schema.FlagShortenedDuration, schema.FlagNoActivity}, schema.StatusNeedsAttention, TrendDeclining},
	} {
		t.Run(tc.name, func(t *testing.T) {
			report := schema.DeviationReport{Domain: schema.CallsDomain, Flags: tc.flags}
			verdict := Classify(14, w, report, cfg)
			assert.Equal(t, tc.want, verdict.Status)
			assert.Equal(t, tc.trend, verdict.Trend)
		})
	}
}

func TestClassifyEnergeticOverride(t *testing.T) {
	w := SplitWindows(makeSeries(14), 3)
	report := schema.DeviationReport{
		Domain: schema.FitnessDomain,
		ZScore: 2.4,
		Flags:  []schema.AnomalyFlag{schema.FlagEnergySurge},
	}
	verdict := Classify(14, w, report, testConfig(schema.FitnessDomain))
	assert.Equal(t, schema.StatusEnergetic, verdict.Status)
	assert.Equal(t, TrendImproving, verdict.Trend)
}

// A declining z-score escalates straight to Needs Attention even as a
// lone flag; the count-based mapping is only for the calls rules.
func TestClassifyEnergyDeclineEscalates(t *testing.T) {
	baseline := stepRows(7000, 8000, 9000, 8000, 7000, 9000, 8000)
	recent := stepRows(4000, 4000, 4000)
	w := schema.Windows{Baseline: baseline, Recent: recent}

	report := Detect(w, schema.FitnessDomain, testConfig(schema.FitnessDomain))
	require.Equal(t, []schema.AnomalyFlag{schema.FlagEnergyDecline}, report.Flags)

	verdict := Classify(10, w, report, testConfig(schema.FitnessDomain))
	assert.Equal(t, schema.StatusNeedsAttention, verdict.Status)
	assert.Equal(t, TrendDeclining, verdict.Trend)
}

// A sleep shift alone must not degrade the status; it only annotates
// the trend label.
func TestClassifySleepFlagsAreOrthogonal(t *testing.T) {
	w := SplitWindows(makeSeries(14), 3)
	cfg := testConfig(schema.FitnessDomain)

	report := schema.DeviationReport{Domain: schema.FitnessDomain, Flags: []schema.AnomalyFlag{schema.FlagSleepLoss}}
	verdict := Classify(14, w, report, cfg)
	assert.Equal(t, schema.StatusNormal, verdict.Status)
	assert.Equal(t, TrendStable+" (Sleep Loss)", verdict.Trend)

	report.Flags = []schema.AnomalyFlag{schema.FlagSleepGain}
	verdict = Classify(14, w, report, cfg)
	assert.Equal(t, schema.StatusNormal, verdict.Status)
	assert.Equal(t, TrendStable+" (Sleep +)", verdict.Trend)
}

func TestClassifyConfidenceDemotedOnNoisyRecent(t *testing.T) {
	w := SplitWindows(makeSeries(14), 7)
	cfg := testConfig(schema.CallsDomain)

	report := schema.DeviationReport{Domain: schema.CallsDomain, BaselinePrimaryStd: 1.0, RecentPrimaryStd: 2.5}
	assert.Equal(t, schema.LowConfidence, Classify(14, w, report, cfg).Confidence)

	report.RecentPrimaryStd = 1.5
	assert.Equal(t, schema.MediumConfidence, Classify(14, w, report, cfg).Confidence)
}

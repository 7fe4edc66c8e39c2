package core

import (
	"github.com/cogniahq/cognia/internal/contract"
	"github.com/cogniahq/cognia/schema"
)

// Detect compares the recent window against the baseline window and
// returns a deviation report with any anomaly flags raised. Thresholds
// come from configuration; the math per domain:
//
//   - calls: mean daily frequency and per-call average duration, with
//     drop flags raised when recent falls below the configured fraction
//     of baseline. A silent recent window always raises no_activity.
//   - fitness: median daily steps with a smoothed z-score
//     (recent-baseline delta over baseline std + 1, so a flat baseline
//     cannot blow up the score), plus sleep-shift flags on the mean
//     sleep delta.
func Detect(w schema.Windows, domain schema.Domain, cfg *contract.Config) schema.DeviationReport {
	report := schema.DeviationReport{Domain: domain}
	if len(w.Baseline) == 0 || len(w.Recent) == 0 {
		return report
	}
	if domain == schema.FitnessDomain {
		detectFitness(&report, w, cfg)
	} else {
		detectCalls(&report, w, cfg)
	}
	report.Flags = schema.DedupFlags(report.Flags)
	return report
}

func detectCalls(report *schema.DeviationReport, w schema.Windows, cfg *contract.Config) {
	report.BaselineFreq = Mean(column(w.Baseline, pickCount))
	report.RecentFreq = Mean(column(w.Recent, pickCount))
	report.BaselineDuration = windowAvgDuration(w.Baseline)
	report.RecentDuration = windowAvgDuration(w.Recent)
	report.BaselinePrimaryStd = StdDev(column(w.Baseline, pickCount))
	report.RecentPrimaryStd = StdDev(column(w.Recent, pickCount))

	if totalCount(w.Recent) == 0 {
		report.Flags = append(report.Flags, schema.FlagNoActivity)
	}
	if report.BaselineFreq > 0 && report.RecentFreq < report.BaselineFreq*cfg.FreqDropRatio {
		report.Flags = append(report.Flags, schema.FlagFrequencyDrop)
	}
	if report.BaselineDuration > 0 && report.RecentDuration < report.BaselineDuration*cfg.DurationDropRatio {
		report.Flags = append(report.Flags, schema.FlagShortenedDuration)
	}
}

func detectFitness(report *schema.DeviationReport, w schema.Windows, cfg *contract.Config) {
	report.BaselineSteps = Median(column(w.Baseline, pickSteps))
	report.RecentSteps = Median(column(w.Recent, pickSteps))
	report.BaselineActive = Mean(column(w.Baseline, pickActive))
	report.RecentActive = Mean(column(w.Recent, pickActive))
	report.BaselineSleep = Mean(column(w.Baseline, pickSleep))
	report.RecentSleep = Mean(column(w.Recent, pickSleep))
	report.BaselinePrimaryStd = StdDev(column(w.Baseline, pickSteps))
	report.RecentPrimaryStd = StdDev(column(w.Recent, pickSteps))

	// The +1 keeps a perfectly flat baseline from dividing by zero while
	// barely perturbing the score at realistic step dispersions.
	report.ZScore = (report.RecentSteps - report.BaselineSteps) / (report.BaselinePrimaryStd + 1)

	if report.ZScore < cfg.ZDeclineThreshold {
		report.Flags = append(report.Flags, schema.FlagEnergyDecline)
	}
	if report.ZScore > cfg.ZImproveThreshold {
		report.Flags = append(report.Flags, schema.FlagEnergySurge)
	}

	sleepDelta := report.RecentSleep - report.BaselineSleep
	sleepShift := float64(cfg.SleepDeltaMinutes)
	if sleepDelta <= -sleepShift {
		report.Flags = append(report.Flags, schema.FlagSleepLoss)
	} else if sleepDelta >= sleepShift {
		report.Flags = append(report.Flags, schema.FlagSleepGain)
	}
}

// windowAvgDuration averages talk time per answered call across a whole
// window, weighting days with more calls accordingly.
func windowAvgDuration(rows []schema.DailyRow) float64 {
	talk, answered := 0.0, 0
	for _, row := range rows {
		talk += row.TalkSeconds
		answered += row.Answered
	}
	if answered == 0 {
		return 0
	}
	return talk / float64(answered)
}

func totalCount(rows []schema.DailyRow) int {
	total := 0
	for _, row := range rows {
		total += row.Count
	}
	return total
}

func column(rows []schema.DailyRow, pick func(schema.DailyRow) float64) []float64 {
	out := make([]float64, len(rows))
	for i, row := range rows {
		out[i] = pick(row)
	}
	return out
}

func pickCount(row schema.DailyRow) float64  { return float64(row.Count) }
func pickSteps(row schema.DailyRow) float64  { return row.Steps }
func pickActive(row schema.DailyRow) float64 { return row.ActiveMinutes }
func pickSleep(row schema.DailyRow) float64  { return row.SleepMinutes }

package core

import (
	"math"
	"time"

	"github.com/cogniahq/cognia/internal/contract"
	"github.com/cogniahq/cognia/schema"
)

// RepairContinuity fills calendar gaps with synthetic zero rows and stamps
// per-day validity, so that every downstream window covers a contiguous
// date range. The grid runs from the first observed day through the last
// complete day before now, whichever of that and the last observed day is
// later; trailing silence therefore shows up as synthetic rows instead of
// vanishing. The returned quality score is the share of valid days over
// the full repaired range, as a percentage rounded to one decimal.
//
// Validity per domain: a calls day is valid when it saw at least one
// interaction; a fitness day is valid when its step count clears the
// device-noise floor.
func RepairContinuity(rows []schema.DailyRow, domain schema.Domain, validityFloor float64, now time.Time) ([]schema.DailyRow, float64) {
	if len(rows) == 0 {
		return nil, 0
	}

	sorted := schema.CloneRows(rows)
	schema.SortRowsByDate(sorted)

	byKey := make(map[string]schema.DailyRow, len(sorted))
	for _, row := range sorted {
		byKey[row.Key()] = row
	}

	first := schema.DayOf(sorted[0].Date)
	last := schema.DayOf(sorted[len(sorted)-1].Date)
	if tail := schema.DayOf(now).AddDate(0, 0, -1); tail.After(last) {
		last = tail
	}

	repaired := make([]schema.DailyRow, 0, len(sorted))
	valid := 0
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		row, ok := byKey[day.Format(schema.DateLayout)]
		if !ok {
			row = schema.DailyRow{Date: day, Synthetic: true}
		}
		row.IsValid = isValidDay(row, domain, validityFloor)
		if row.IsValid {
			valid++
		}
		repaired = append(repaired, row)
	}

	quality := roundTo(float64(valid)/float64(len(repaired))*100, contract.DefaultPrecision)
	return repaired, quality
}

func isValidDay(row schema.DailyRow, domain schema.Domain, validityFloor float64) bool {
	if domain == schema.FitnessDomain {
		return row.Steps > validityFloor
	}
	return row.Count > 0
}

func roundTo(v float64, digits int) float64 {
	pow := math.Pow(10, float64(digits))
	return math.Round(v*pow) / pow
}

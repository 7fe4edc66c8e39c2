package core

import "github.com/cogniahq/cognia/schema"

// SplitWindows partitions a contiguous daily series into a baseline window
// and a recent window of the last k days. When the series is too short to
// split cleanly, the baseline keeps every row and the recent window holds
// only the final day, so both windows stay non-empty for any non-empty
// input.
func SplitWindows(rows []schema.DailyRow, recentDays int) schema.Windows {
	if len(rows) == 0 {
		return schema.Windows{}
	}
	if recentDays < 1 {
		recentDays = 1
	}
	if len(rows) <= recentDays {
		return schema.Windows{
			Baseline: schema.CloneRows(rows),
			Recent:   schema.CloneRows(rows[len(rows)-1:]),
		}
	}
	cut := len(rows) - recentDays
	return schema.Windows{
		Baseline: schema.CloneRows(rows[:cut]),
		Recent:   schema.CloneRows(rows[cut:]),
	}
}

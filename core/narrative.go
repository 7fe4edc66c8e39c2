package core

import (
	"fmt"
	"strings"

	"github.com/cogniahq/cognia/schema"
)

// BuildNarrative fills in the verdict's suggestion line. Pure formatting:
// no thresholds, no lookups, deterministic given its inputs. The top
// subject personalizes call-domain suggestions when one is known.
func BuildNarrative(verdict schema.Verdict, report schema.DeviationReport, topSubject string) schema.Verdict {
	verdict.Suggestion = suggestionFor(verdict, report, topSubject)
	return verdict
}

func suggestionFor(v schema.Verdict, report schema.DeviationReport, topSubject string) string {
	if v.Status == schema.StatusInsufficientData {
		return "keep collecting data for a few more days before drawing conclusions"
	}

	sleepNote := ""
	if strings.Contains(v.Trend, sleepLossSuffix) {
		sleepNote = "; an earlier night would help"
	}

	switch v.Status {
	case schema.StatusNormal:
		if report.Domain == schema.CallsDomain && topSubject != "" {
			return fmt.Sprintf("all steady; why not reach out to %s today", topSubject) + sleepNote
		}
		return "all steady; keep the current routine" + sleepNote
	case schema.StatusEnergetic:
		return "great momentum; a good week to take on something ambitious"
	case schema.StatusSlightlyOff:
		if report.Domain == schema.CallsDomain && topSubject != "" {
			return fmt.Sprintf("a quiet stretch; consider a quick call to %s", topSubject) + sleepNote
		}
		return "a quiet stretch; a short walk or call could reset the day" + sleepNote
	default: // Needs Attention
		if v.Explanation == ExplainTravel {
			return "deviation is explained by travel; re-check once the trip ends"
		}
		if v.Explanation == ExplainHighLoad {
			return "a packed schedule is crowding out activity; block some recovery time"
		}
		if report.Domain == schema.CallsDomain && topSubject != "" {
			return fmt.Sprintf("contact has dropped off noticeably; checking in with %s would be a good start", topSubject)
		}
		return "sustained decline against baseline; worth a deliberate change of pace" + sleepNote
	}
}

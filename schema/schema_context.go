package schema

// ContextDay is the independent day-level context attached to a calendar date.
// It is produced by the context connector and is read-only to the engine:
// context explains deviations, it never detects them.
type ContextDay struct {
	Tags             []TagKind `json:"tags"`
	Meetings         int       `json:"meetings_count"`
	ScheduledMinutes int       `json:"total_duration_minutes"`
	Density          Density   `json:"schedule_density"`
}

// HasTag reports whether the day carries the given tag.
func (c ContextDay) HasTag(tag TagKind) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ContextMap maps ISO date keys (DateLayout) to their day-level context.
// A missing date simply means "no context available"; an empty map is a
// fully supported degraded mode.
type ContextMap map[string]ContextDay

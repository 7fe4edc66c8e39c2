package contract

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// spanDurationRe captures "N [units]", e.g. "30 days", "2 weeks".
var spanDurationRe = regexp.MustCompile(`^(\d+)\s+(year|month|week|day|hour|minute)s?$`)

// ParseSpanDuration converts strings like "30 days" or "720h" into a single
// time.Duration. It first tries Go's built-in time.ParseDuration for
// standard formats, then falls back to custom parsing for human-readable
// formats.
func ParseSpanDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)

	if duration, err := time.ParseDuration(s); err == nil {
		if duration <= 0 {
			return 0, errors.New("span must be positive")
		}
		return duration, nil
	}

	s = strings.ToLower(s)
	matches := spanDurationRe.FindStringSubmatch(s)
	if len(matches) == 0 {
		return 0, fmt.Errorf("invalid span format: %s", s)
	}

	value, _ := strconv.Atoi(matches[1])
	if value == 0 {
		return 0, errors.New("span must be positive")
	}

	switch matches[2] {
	case "year":
		return time.Duration(value) * 365 * 24 * time.Hour, nil
	case "month":
		return time.Duration(value) * 30 * 24 * time.Hour, nil
	case "week":
		return time.Duration(value) * 7 * 24 * time.Hour, nil
	case "day":
		return time.Duration(value) * 24 * time.Hour, nil
	case "hour":
		return time.Duration(value) * time.Hour, nil
	case "minute":
		return time.Duration(value) * time.Minute, nil
	default:
		return 0, fmt.Errorf("unsupported time unit: %s", matches[2])
	}
}

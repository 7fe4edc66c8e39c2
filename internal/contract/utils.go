package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/cogniahq/cognia/schema"
	"github.com/fatih/color"
)

// Color variables for console output.
var (
	AttentionColor = color.New(color.FgRed, color.Bold) // urgent deviation
	OffColor       = color.New(color.FgYellow)          // mild deviation, standard caution
	NormalColor    = color.New(color.FgGreen)           // consistent with baseline
	EnergeticColor = color.New(color.FgCyan)            // positive deviation
	UnknownColor   = color.New(color.FgWhite)           // not enough data
)

// GetStatusLabel returns the plain status label used in CSV, JSON and
// table printing.
func GetStatusLabel(status schema.Status) string {
	return string(status)
}

// GetColorStatusLabel returns a colored status label for console output.
func GetColorStatusLabel(status schema.Status) string {
	text := GetStatusLabel(status)
	switch status {
	case schema.StatusNeedsAttention:
		return AttentionColor.Sprint(text)
	case schema.StatusSlightlyOff:
		return OffColor.Sprint(text)
	case schema.StatusNormal:
		return NormalColor.Sprint(text)
	case schema.StatusEnergetic:
		return EnergeticColor.Sprint(text)
	default:
		return UnknownColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based
// on the provided file path. It falls back to os.Stdout when no path is set.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	f, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("cannot create output file %s: %w", filePath, err)
	}
	return f, nil
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "❌ %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning without aborting.
func LogWarn(msg string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠️  %s: %v\n", msg, err)
		return
	}
	fmt.Fprintf(os.Stderr, "⚠️  %s\n", msg)
}

// ParseBoolString parses yes/no style flags into a bool.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "on", "":
		return true, nil
	case "no", "false", "0", "off":
		return false, nil
	default:
		return false, fmt.Errorf("unrecognized boolean value %q", s)
	}
}

// TruncateSubject shortens a subject name for narrow table columns.
func TruncateSubject(subject string, maxWidth int) string {
	if maxWidth <= 3 || len(subject) <= maxWidth {
		return subject
	}
	return subject[:maxWidth-3] + "..."
}

package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cogniahq/cognia/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatusLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    schema.Status
		expected string
	}{
		{"normal", schema.StatusNormal, "Normal"},
		{"slightly off", schema.StatusSlightlyOff, "Slightly Off"},
		{"needs attention", schema.StatusNeedsAttention, "Needs Attention"},
		{"energetic", schema.StatusEnergetic, "Energetic"},
		{"insufficient data", schema.StatusInsufficientData, "Insufficient Data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetStatusLabel(tt.input))
		})
	}
}

func TestGetColorStatusLabelContainsText(t *testing.T) {
	// With color disabled the label should be the plain text; either way
	// the status word must survive the formatting.
	for _, status := range []schema.Status{
		schema.StatusNormal,
		schema.StatusSlightlyOff,
		schema.StatusNeedsAttention,
		schema.StatusEnergetic,
		schema.StatusInsufficientData,
	} {
		assert.Contains(t, GetColorStatusLabel(status), string(status))
	}
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    bool
		expectError bool
	}{
		{"yes", "yes", true, false},
		{"true", "true", true, false},
		{"one", "1", true, false},
		{"on", "on", true, false},
		{"empty defaults to true", "", true, false},
		{"no", "no", false, false},
		{"false", "false", false, false},
		{"zero", "0", false, false},
		{"off", "off", false, false},
		{"uppercase YES", "YES", true, false},
		{"whitespace padded", "  no  ", false, false},
		{"unrecognized", "maybe", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBoolString(tt.input)

			if tt.expectError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestTruncateSubject(t *testing.T) {
	tests := []struct {
		name     string
		subject  string
		maxWidth int
		expected string
	}{
		{"short name untouched", "Maya", 15, "Maya"},
		{"exact width untouched", "Alexandra", 9, "Alexandra"},
		{"long name truncated", "Bartholomew Higgins", 10, "Barthol..."},
		{"tiny width untouched", "Maya", 3, "Maya"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateSubject(tt.subject, tt.maxWidth))
		})
	}
}

func TestSelectOutputFile(t *testing.T) {
	t.Run("empty path falls back to stdout", func(t *testing.T) {
		f, err := SelectOutputFile("")
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, f)
	})

	t.Run("creates the named file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.csv")
		f, err := SelectOutputFile(path)
		require.NoError(t, err)
		defer func() { _ = f.Close() }()

		_, err = os.Stat(path)
		assert.NoError(t, err)
	})

	t.Run("unwritable path errors", func(t *testing.T) {
		_, err := SelectOutputFile(filepath.Join(t.TempDir(), "missing", "out.csv"))
		require.Error(t, err)
	})
}

package contract

import (
	"testing"
)

// FuzzParseSpanDuration fuzzes the span parser with arbitrary strings.
// Whatever comes in, the parser must either error or return a positive
// duration; it must never panic or accept a non-positive span.
func FuzzParseSpanDuration(f *testing.F) {
	seeds := []string{
		"30 days",
		"720h",
		"6 weeks",
		"1 year",
		"0 days",
		"-24h",
		"a fortnight",
		"",
		"  2 months  ",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		d, err := ParseSpanDuration(input)
		if err == nil && d <= 0 {
			t.Errorf("accepted non-positive span %v for input %q", d, input)
		}
	})
}

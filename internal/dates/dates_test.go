package dates

import (
	"testing"
	"time"
)

func TestParseDayFirst(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		day   int
		month time.Month
		year  int
	}{
		{name: "dots two-digit year", input: "12.08.25", day: 12, month: time.August, year: 2025},
		{name: "dashes four-digit year", input: "12-08-2025", day: 12, month: time.August, year: 2025},
		{name: "slashes", input: "03/04/2025", day: 3, month: time.April, year: 2025},
		{name: "unpadded", input: "5-9-25", day: 5, month: time.September, year: 2025},
		{name: "day month name year", input: "12 August 2025", day: 12, month: time.August, year: 2025},
		{name: "month name first", input: "August 12, 2025", day: 12, month: time.August, year: 2025},
		{name: "ordinal suffix", input: "12th August 2025", day: 12, month: time.August, year: 2025},
		{name: "iso", input: "2025-08-12", day: 12, month: time.August, year: 2025},
		{name: "embedded in prose", input: "apply before 12.08.25 at noon", day: 12, month: time.August, year: 2025},
		{name: "month name in prose", input: "the deadline is 12 August 2025 sharp", day: 12, month: time.August, year: 2025},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Parse(tc.input)
			if !ok {
				t.Fatalf("Parse(%q) failed, want %d %s %d", tc.input, tc.day, tc.month, tc.year)
			}
			if got.Day() != tc.day || got.Month() != tc.month || got.Year() != tc.year {
				t.Errorf("Parse(%q) = %v, want day=%d month=%s year=%d",
					tc.input, got, tc.day, tc.month, tc.year)
			}
		})
	}
}

func TestParseFailure(t *testing.T) {
	inputs := []string{"", "   ", "Not Specified", "not specified", "rolling basis", "ASAP", "???"}
	for _, input := range inputs {
		if _, ok := Parse(input); ok {
			t.Errorf("Parse(%q) succeeded, want failure", input)
		}
	}
}

func TestNormalizeTwoDigitYear(t *testing.T) {
	// every well-formed DD.MM.YY must land in 20YY
	testCases := []struct {
		input string
		want  string
	}{
		{"12.08.25", "12-08-2025"},
		{"01.01.00", "01-01-2000"},
		{"31.12.99", "31-12-2099"},
		{"5.6.30", "05-06-2030"},
	}
	for _, tc := range testCases {
		if got := Normalize(tc.input); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"12.08.25", "2025-08-12", "12 August 2025", "03/04/2025"}
	for _, input := range inputs {
		once := Normalize(input)
		if once == "" {
			t.Fatalf("Normalize(%q) failed", input)
		}
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: first=%q second=%q", input, once, twice)
		}
	}
}

func TestNormalizeFailureIsEmpty(t *testing.T) {
	if got := Normalize("no deadline mentioned"); got != "" {
		t.Errorf("Normalize on unparseable input = %q, want empty", got)
	}
}

func TestDisplay(t *testing.T) {
	testCases := []struct {
		name   string
		stored string
		want   string
	}{
		{name: "empty becomes placeholder", stored: "", want: NotSpecified},
		{name: "canonical unchanged", stored: "12-08-2025", want: "12-08-2025"},
		{name: "non-canonical reformatted", stored: "2025-08-12", want: "12-08-2025"},
		{name: "unparseable passes through", stored: "rolling basis", want: "rolling basis"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Display(tc.stored); got != tc.want {
				t.Errorf("Display(%q) = %q, want %q", tc.stored, got, tc.want)
			}
		})
	}
}

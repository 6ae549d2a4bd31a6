package dates

import (
	"testing"
	"time"
)

func TestClassifyAt(t *testing.T) {
	now := time.Date(2025, time.August, 10, 15, 30, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		deadline string
		want     Urgency
	}{
		{name: "empty", deadline: "", want: UrgencyGray},
		{name: "placeholder", deadline: "Not Specified", want: UrgencyGray},
		{name: "unparseable", deadline: "rolling basis", want: UrgencyGray},
		{name: "yesterday", deadline: "09-08-2025", want: UrgencyRed},
		{name: "long past", deadline: "01-01-2024", want: UrgencyRed},
		{name: "today", deadline: "10-08-2025", want: UrgencyOrange},
		{name: "tomorrow", deadline: "11-08-2025", want: UrgencyOrange},
		{name: "in two days", deadline: "12-08-2025", want: UrgencyYellow},
		{name: "in three days", deadline: "13-08-2025", want: UrgencyYellow},
		{name: "in four days", deadline: "14-08-2025", want: UrgencyGreen},
		{name: "far future", deadline: "01-01-2026", want: UrgencyGreen},
		{name: "non-canonical input", deadline: "12.08.25", want: UrgencyYellow},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyAt(tc.deadline, now); got != tc.want {
				t.Errorf("ClassifyAt(%q, %v) = %s, want %s", tc.deadline, now, got, tc.want)
			}
		})
	}
}

func TestClassifyAtIgnoresTimeOfDay(t *testing.T) {
	// late in the evening, a deadline earlier the same day is still "today"
	now := time.Date(2025, time.August, 10, 23, 59, 0, 0, time.UTC)
	if got := ClassifyAt("10-08-2025", now); got != UrgencyOrange {
		t.Errorf("same-day deadline late in the day = %s, want %s", got, UrgencyOrange)
	}
}

func TestClassifyAtSpecExample(t *testing.T) {
	// 12.08.25 is green with more than 3 days to go, red once the date passes
	if got := ClassifyAt("12-08-2025", time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)); got != UrgencyGreen {
		t.Errorf("deadline 12-08-2025 on 01-08-2025 = %s, want %s", got, UrgencyGreen)
	}
	if got := ClassifyAt("12-08-2025", time.Date(2025, time.August, 14, 0, 0, 0, 0, time.UTC)); got != UrgencyRed {
		t.Errorf("deadline 12-08-2025 on 14-08-2025 = %s, want %s", got, UrgencyRed)
	}
}

func TestClassifyNeverPanics(t *testing.T) {
	inputs := []string{"", "Not Specified", "garbage", "99-99-9999", "0.0.0", "\x00"}
	for _, input := range inputs {
		_ = Classify(input)
	}
}

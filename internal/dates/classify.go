package dates

import (
	"strings"
	"time"
)

// Urgency is the coarse color bucket describing how close a deadline is.
type Urgency string

const (
	UrgencyGray   Urgency = "gray"   // no deadline or unparseable
	UrgencyRed    Urgency = "red"    // past deadline
	UrgencyOrange Urgency = "orange" // due today or tomorrow
	UrgencyYellow Urgency = "yellow" // due within three days
	UrgencyGreen  Urgency = "green"  // more than three days out
)

// ClassifyAt maps a display deadline to an urgency bucket relative to now.
// The comparison is on calendar dates; time-of-day is truncated. It is pure
// and never fails: anything that does not parse is gray.
// Parameters:
//   - displayDeadline: deadline text as rendered by Display.
//   - now: reference time.
// Returns:
//   - Urgency: color bucket for the deadline.
func ClassifyAt(displayDeadline string, now time.Time) Urgency {
	s := strings.TrimSpace(displayDeadline)
	if s == "" || strings.EqualFold(s, NotSpecified) {
		return UrgencyGray
	}

	deadline, ok := Parse(s)
	if !ok {
		return UrgencyGray
	}

	delta := daysBetween(now, deadline)
	switch {
	case delta < 0:
		return UrgencyRed
	case delta <= 1:
		return UrgencyOrange
	case delta <= 3:
		return UrgencyYellow
	default:
		return UrgencyGreen
	}
}

// Classify is ClassifyAt bound to the current time.
// Parameters:
//   - displayDeadline: deadline text as rendered by Display.
// Returns:
//   - Urgency: color bucket for the deadline.
func Classify(displayDeadline string) Urgency {
	return ClassifyAt(displayDeadline, time.Now())
}

// daysBetween returns the whole calendar days from now's date to t's date.
func daysBetween(now, t time.Time) int {
	a := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

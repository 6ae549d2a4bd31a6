// Package dates normalizes the loosely formatted deadline strings that job
// postings carry into one canonical textual form, and classifies how close a
// deadline is. Parsing is day-first: "12.08.25" is 12 August 2025.
package dates

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// CanonicalLayout is the stored textual representation of a date. Display and
// storage share it, so a stored value re-normalizes to itself.
const CanonicalLayout = "02-01-2006"

// NotSpecified is the display placeholder for absent deadlines.
const NotSpecified = "Not Specified"

var (
	// d-m-y with -, / or . separators and a 2- or 4-digit year
	numericDate = regexp.MustCompile(`^(\d{1,2})[./-](\d{1,2})[./-](\d{2}|\d{4})$`)

	// date-like fragments inside prose, numeric or month-name forms
	fuzzyNumeric   = regexp.MustCompile(`\b\d{1,2}[./-]\d{1,2}[./-](?:\d{4}|\d{2})\b`)
	fuzzyMonthName = regexp.MustCompile(`(?i)\b\d{1,2}(?:st|nd|rd|th)?\s+(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?,?\s+\d{2,4}\b|(?i)\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{2,4}\b`)

	ordinalSuffix = regexp.MustCompile(`(?i)(\d{1,2})(st|nd|rd|th)\b`)
)

// Parse interprets a loosely formatted date string. Day-first numeric forms
// with -, / or . separators are tried first; a 2-digit year is read as 20YY.
// Anything else falls through to lenient parsing, and as a last resort a
// date-like fragment is extracted from surrounding prose.
// Parameters:
//   - raw: free-form date text, possibly embedded in prose.
// Returns:
//   - time.Time: parsed date when ok is true.
//   - bool: false when no date could be recovered.
func Parse(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, NotSpecified) {
		return time.Time{}, false
	}

	if t, ok := parseNumeric(s); ok {
		return t, true
	}

	// Lenient pass for month-name and ISO-ish forms. Day-first is forced so
	// 03/04/2025 reads as 3 April, matching the numeric pass above.
	cleaned := ordinalSuffix.ReplaceAllString(s, "$1")
	if t, err := dateparse.ParseAny(cleaned,
		dateparse.PreferMonthFirst(false),
		dateparse.RetryAmbiguousDateWithSwap(true),
	); err == nil {
		return t, true
	}

	// Fuzzy pass: pull a date-like fragment out of prose and retry on it.
	if frag := fuzzyNumeric.FindString(s); frag != "" {
		if t, ok := parseNumeric(frag); ok {
			return t, true
		}
	}
	if frag := fuzzyMonthName.FindString(s); frag != "" {
		frag = ordinalSuffix.ReplaceAllString(frag, "$1")
		if t, err := dateparse.ParseAny(frag,
			dateparse.PreferMonthFirst(false),
			dateparse.RetryAmbiguousDateWithSwap(true),
		); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// parseNumeric handles the plain day-month-year shapes directly so the
// day-first and 20YY rules never depend on third-party guessing.
func parseNumeric(s string) (time.Time, bool) {
	m := numericDate.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}
	year := m[3]
	if len(year) == 2 {
		year = "20" + year
	}
	t, err := time.ParseInLocation("2-1-2006", m[1]+"-"+m[2]+"-"+year, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Normalize converts a raw date string to the canonical storage form.
// Parameters:
//   - raw: free-form date text.
// Returns:
//   - string: DD-MM-YYYY on success, empty string when parsing fails.
func Normalize(raw string) string {
	t, ok := Parse(raw)
	if !ok {
		return ""
	}
	return t.Format(CanonicalLayout)
}

// Display renders a stored deadline for the list view. Valid dates are
// reformatted through the canonical layout; an empty value becomes the
// NotSpecified placeholder; a non-empty unparseable value passes through
// unchanged so the record stays visible.
// Parameters:
//   - stored: the persisted deadline text.
// Returns:
//   - string: display representation.
func Display(stored string) string {
	s := strings.TrimSpace(stored)
	if s == "" {
		return NotSpecified
	}
	if t, ok := Parse(s); ok {
		return t.Format(CanonicalLayout)
	}
	return s
}

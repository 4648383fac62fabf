// Package dates handles the calendar date format used in all persisted and
// reported fields. Dates are stored as day-month-year strings; the literal
// Unknown is a valid value wherever a date could not be determined.
package dates

import (
	"regexp"
	"strings"
	"time"
)

// Layout is the day-month-year format used in every persisted field.
const Layout = "02-01-2006"

// Unknown is the sentinel value for dates that could not be determined.
const Unknown = "Unknown"

// isoLayout is accepted on input for snapshots written before the
// day-month-year convention was adopted.
const isoLayout = "2006-01-02"

// compactLayout matches timestamp tokens like 20240115 in archive filenames.
const compactLayout = "20060102"

var tokenPattern = regexp.MustCompile(`(\d{2}-\d{2}-\d{4})|(\d{4}-\d{2}-\d{2})|(\d{8})`)

// Format renders a time in the day-month-year layout.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Parse parses a day-month-year date string. Unknown and empty strings
// are not parseable.
func Parse(s string) (time.Time, error) {
	return time.Parse(Layout, strings.TrimSpace(s))
}

// IsUnknown reports whether a date value is absent or the Unknown sentinel.
func IsUnknown(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || s == Unknown
}

// Normalize coerces a stored date value into the day-month-year layout.
// Unknown stays Unknown, day-month-year values pass through, year-month-day
// values are flipped, and anything unrecognized becomes the fallback date.
func Normalize(s, fallback string) string {
	if IsUnknown(s) {
		return Unknown
	}

	s = strings.TrimSpace(s)
	if _, err := time.Parse(Layout, s); err == nil {
		return s
	}
	if t, err := time.Parse(isoLayout, s); err == nil {
		return Format(t)
	}
	return fallback
}

// FromFilename extracts a nominal "as of" date from a timestamp token
// embedded in a file name. It recognizes day-month-year, year-month-day,
// and compact yyyymmdd tokens; when no token parses, it returns Unknown.
func FromFilename(name string) string {
	for _, token := range tokenPattern.FindAllString(name, -1) {
		if t, err := time.Parse(Layout, token); err == nil && plausibleYear(t) {
			return Format(t)
		}
		if t, err := time.Parse(isoLayout, token); err == nil && plausibleYear(t) {
			return Format(t)
		}
		if t, err := time.Parse(compactLayout, token); err == nil && plausibleYear(t) {
			return Format(t)
		}
	}
	return Unknown
}

// plausibleYear guards against tokens like 00000000 that technically parse.
func plausibleYear(t time.Time) bool {
	return t.Year() >= 2000 && t.Year() <= 2100
}

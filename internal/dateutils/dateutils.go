// Package dateutils parses and checks the calendar dates of a budget project.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Date layouts accepted for project dates
const (
	DateLayoutISO       = "2006-01-02"
	DateLayoutNorwegian = "02.01.2006"
	DateLayoutShort     = "2.1.2006"
	DateLayoutSlash     = "02/01/2006"
)

// CommonFormats is the list of layouts tried, in order, when parsing a date
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutNorwegian,
	DateLayoutShort,
	DateLayoutSlash,
	"2006/01/02",
}

var whitespace = regexp.MustCompile(`\s+`)

// CleanDateString trims the input and collapses inner whitespace runs
func CleanDateString(dateStr string) string {
	return whitespace.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// ParseDate tries each of CommonFormats and returns the parsed date and the
// layout that matched.
func ParseDate(dateStr string) (time.Time, string, error) {
	dateStr = CleanDateString(dateStr)
	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, format, nil
		}
	}
	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// ToISODate formats a date as YYYY-MM-DD
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// NormalizeDate parses dateStr in any accepted layout and returns it as an
// ISO date. An empty input stays empty so a date can be cleared.
func NormalizeDate(dateStr string) (string, error) {
	if CleanDateString(dateStr) == "" {
		return "", nil
	}
	t, _, err := ParseDate(dateStr)
	if err != nil {
		return "", err
	}
	return ToISODate(t), nil
}

// ValidateRange returns an error when both dates are set and end falls
// before start. Both values must already be ISO dates or empty.
func ValidateRange(start, end string) error {
	if start == "" || end == "" {
		return nil
	}
	s, err := time.Parse(DateLayoutISO, start)
	if err != nil {
		return fmt.Errorf("invalid start date %q: %w", start, err)
	}
	e, err := time.Parse(DateLayoutISO, end)
	if err != nil {
		return fmt.Errorf("invalid end date %q: %w", end, err)
	}
	if e.Before(s) {
		return fmt.Errorf("end date %s is before start date %s", end, start)
	}
	return nil
}

// DaysBetween returns the number of whole days from start to end, counting
// both ends, or 0 when either date is missing or invalid.
func DaysBetween(start, end string) int {
	s, err := time.Parse(DateLayoutISO, start)
	if err != nil {
		return 0
	}
	e, err := time.Parse(DateLayoutISO, end)
	if err != nil || e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

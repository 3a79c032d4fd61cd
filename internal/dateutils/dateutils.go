// Package dateutils provides date parsing and normalization for the varied
// formats found in statement and alert data.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Layouts referenced individually elsewhere in the application.
const (
	DateLayoutISO    = "2006-01-02"
	DateLayoutIndian = "02-01-2006"
)

// AcceptedFormats is the ordered list of layouts tried when parsing a date
// string. Day-first layouts come before month-first ones: with ambiguous
// input the day-first reading wins, matching the source data's locale.
var AcceptedFormats = []string{
	DateLayoutISO,       // YYYY-MM-DD
	"02/01/2006",        // DD/MM/YYYY
	DateLayoutIndian,    // DD-MM-YYYY
	"2006/01/02",        // YYYY/MM/DD
	"02.01.2006",        // DD.MM.YYYY
	"2.1.2006",          // D.M.YYYY
	"2006-01-02 15:04:05",
	"02 Jan 2006",
	"2 Jan 2006",
	"Jan 2, 2006",
	"02 January 2006",
	"January 2, 2006",
}

var spacePattern = regexp.MustCompile(`\s+`)

// ParseDate attempts to parse a date string against AcceptedFormats in
// order; the first layout that parses wins.
func ParseDate(dateStr string) (time.Time, error) {
	cleaned := CleanDateString(dateStr)
	if cleaned == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}

	for _, format := range AcceptedFormats {
		if t, err := time.Parse(format, cleaned); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// Normalize converts a date string to the DD-MM-YYYY format used on stored
// transactions. Unparseable input is returned unchanged so the original
// value survives for inspection.
func Normalize(dateStr string) string {
	if dateStr == "" {
		return ""
	}
	t, err := ParseDate(dateStr)
	if err != nil {
		return dateStr
	}
	return t.Format(DateLayoutIndian)
}

// CleanDateString trims and collapses whitespace in a date string.
func CleanDateString(dateStr string) string {
	return spacePattern.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// DayDiff returns the absolute difference between two dates in whole days,
// ignoring the time-of-day component.
func DayDiff(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	diff := int(a.Sub(b).Hours() / 24)
	if diff < 0 {
		diff = -diff
	}
	return diff
}

// ExtractYear extracts the year from a date string, or zero when the date
// cannot be parsed.
func ExtractYear(dateStr string) int {
	t, err := ParseDate(dateStr)
	if err != nil {
		return 0
	}
	return t.Year()
}

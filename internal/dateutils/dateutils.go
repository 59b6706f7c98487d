// Package dateutils provides common date and time operations used throughout the application.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutEuropean = "02.01.2006"
	DateLayoutUS       = "01/02/2006"
	DateLayoutFull     = "2006-01-02 15:04:05"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// parseFormats are tried in order by ParseDateString. Remote collaborators
// are asked for ISO dates but occasionally answer with a timestamp or a
// written-out date.
var parseFormats = []string{
	DateLayoutISO,
	DateLayoutFull,
	DateLayoutISO + "T15:04:05Z",
	DateLayoutISO + "T15:04:05-07:00",
	"2006/01/02",
	DateLayoutEuropean,
	DateLayoutUS,
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"02 Jan 2006",
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// IsISODate reports whether s is a valid calendar date in YYYY-MM-DD form.
func IsISODate(s string) bool {
	_, err := time.Parse(DateLayoutISO, s)
	return err == nil
}

// CleanDateString removes unwanted characters and normalizes a date string
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	return whitespaceRe.ReplaceAllString(dateStr, " ")
}

// ParseDateString attempts to parse a date string using multiple common formats.
// The result is interpreted in loc; a nil loc means time.Local.
func ParseDateString(dateStr string, loc *time.Location) (time.Time, error) {
	cleanDate := CleanDateString(dateStr)
	if cleanDate == "" {
		return time.Time{}, fmt.Errorf("unable to parse date: empty string")
	}
	if loc == nil {
		loc = time.Local
	}

	for _, format := range parseFormats {
		if t, err := time.ParseInLocation(format, cleanDate, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// NormalizeISODate parses dateStr with ParseDateString and returns it as
// YYYY-MM-DD.
func NormalizeISODate(dateStr string) (string, error) {
	t, err := ParseDateString(dateStr, time.UTC)
	if err != nil {
		return "", err
	}
	return ToISODate(t), nil
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

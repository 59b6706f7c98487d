package dateutils

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

type monthPatterns struct {
	month    time.Month
	monthDay *regexp.Regexp
	dayMonth *regexp.Regexp
}

// MonthAbbreviations maps each month to the short form accepted in
// transcripts, in calendar order.
var MonthAbbreviations = [12]string{
	"jan", "feb", "mar", "apr", "may", "jun",
	"jul", "aug", "sep", "oct", "nov", "dec",
}

var monthScan = buildMonthPatterns()

func buildMonthPatterns() []monthPatterns {
	out := make([]monthPatterns, 0, 12)
	for i, abbr := range MonthAbbreviations {
		m := time.Month(i + 1)
		name := strings.ToLower(m.String())
		alt := "(?:" + name + "|" + abbr + ")"
		out = append(out, monthPatterns{
			month:    m,
			monthDay: regexp.MustCompile(alt + `\s+(\d{1,2})(?:st|nd|rd|th)?`),
			dayMonth: regexp.MustCompile(`(\d{1,2})(?:st|nd|rd|th)?\s+` + alt),
		})
	}
	return out
}

// ResolveDate finds the date a lower-cased transcript refers to, relative to
// today. "yesterday" and "tomorrow" take precedence over month names; months
// are scanned January to December and, for each, the first "month day"
// then the first "day month" phrase is tried; the first valid one wins. A
// day that does not exist in the month (feb 30) discards that phrase and
// the scan moves on to the next pattern. Without any date phrase the result is today.
//
// Arithmetic happens in today's location so the calendar day never shifts.
func ResolveDate(lower string, today time.Time) time.Time {
	today = StartOfDay(today)

	switch {
	case strings.Contains(lower, "yesterday"):
		return today.AddDate(0, 0, -1)
	case strings.Contains(lower, "tomorrow"):
		return today.AddDate(0, 0, 1)
	}

	for _, mp := range monthScan {
		for _, re := range []*regexp.Regexp{mp.monthDay, mp.dayMonth} {
			// only the first phrase per pattern is considered
			m := re.FindStringSubmatch(lower)
			if m == nil {
				continue
			}
			if d, ok := calendarDate(today, mp.month, m[1]); ok {
				return d
			}
		}
	}

	return today
}

// ResolveISODate is ResolveDate formatted as YYYY-MM-DD.
func ResolveISODate(lower string, today time.Time) string {
	return ToISODate(ResolveDate(lower, today))
}

func calendarDate(today time.Time, month time.Month, dayText string) (time.Time, bool) {
	day, err := strconv.Atoi(dayText)
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, false
	}

	d := time.Date(today.Year(), month, day, 0, 0, 0, 0, today.Location())
	// time.Date normalises overflow (feb 30 -> mar 1)
	if d.Month() != month || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}

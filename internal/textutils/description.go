package textutils

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"fjacquet/voice-expense/internal/models"
)

const (
	monthNames = `january|february|march|april|may|june|july|august|september|october|november|december`
	monthAbbrs = `jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec`
)

var (
	relativeDateRe = regexp.MustCompile(`(?i)\b(?:today|yesterday|tomorrow)\b`)
	monthDayRe     = regexp.MustCompile(`(?i)\b(?:` + monthNames + `|` + monthAbbrs + `)\s+\d{1,2}(?:st|nd|rd|th)?\b`)
	dayMonthRe     = regexp.MustCompile(`(?i)\b\d{1,2}(?:st|nd|rd|th)?\s+(?:` + monthNames + `|` + monthAbbrs + `)\b`)
	stopWordRe     = regexp.MustCompile(`(?i)\b(?:for|on|at|in|the|a|an|and|or|to|from|with|by|spent|cost|paid|dollars?|bucks?|usd)\b`)
	spacesRe       = regexp.MustCompile(`\s+`)
	leadingPunctRe = regexp.MustCompile(`^\s*[,.-]\s*`)
	trailPunctRe   = regexp.MustCompile(`\s*[,.-]\s*$`)
	numericTokenRe = regexp.MustCompile(`\$?\d+(?:\.\d{1,2})?`)
)

// CleanDescription turns a raw transcript into a short label by removing the
// matched amount text, the winning category's keywords, date phrases and
// filler words. keywords should be nil when the category is the catch-all.
// The result is never empty.
func CleanDescription(transcript, amountText string, keywords []string) string {
	description := transcript

	if amountText != "" {
		amountRe := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(amountText))
		description = amountRe.ReplaceAllString(description, "")
	}

	for _, keyword := range keywords {
		description = WholeWordPattern(keyword).ReplaceAllString(description, "")
	}

	description = relativeDateRe.ReplaceAllString(description, "")
	description = monthDayRe.ReplaceAllString(description, "")
	description = dayMonthRe.ReplaceAllString(description, "")
	description = stopWordRe.ReplaceAllString(description, "")

	description = spacesRe.ReplaceAllString(description, " ")
	description = leadingPunctRe.ReplaceAllString(description, "")
	description = trailPunctRe.ReplaceAllString(description, "")
	description = strings.TrimSpace(description)

	if description != "" {
		return CapitalizeFirst(description)
	}

	fallback := strings.TrimSpace(numericTokenRe.ReplaceAllString(transcript, ""))
	if fallback != "" {
		return CapitalizeFirst(fallback)
	}
	return models.DefaultDescription
}

// CapitalizeFirst upper-cases the first rune of s.
func CapitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

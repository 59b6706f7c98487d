package currencyutils

import (
	"regexp"

	"fjacquet/voice-expense/internal/textutils"

	"github.com/shopspring/decimal"
)

const numberGroup = `(\d+(?:\.\d{1,2})?)`

// AmountPattern is one strategy of the amount pattern set. Group 1 of Re
// holds either digits or, when Spelled is set, a number word.
type AmountPattern struct {
	Name    string
	Re      *regexp.Regexp
	Spelled bool
}

// AmountPatterns is tried in order; the first pattern that matches wins.
var AmountPatterns = []AmountPattern{
	{Name: "symbol", Re: regexp.MustCompile(`\$` + numberGroup)},
	{Name: "dollars", Re: regexp.MustCompile(numberGroup + ` dollars?`)},
	{Name: "bucks", Re: regexp.MustCompile(numberGroup + ` bucks?`)},
	{Name: "usd", Re: regexp.MustCompile(`(?i)` + numberGroup + ` usd`)},
	{Name: "spelled", Re: regexp.MustCompile(`(` + textutils.NumberWordAlternation() + `) dollars?`), Spelled: true},
	{Name: "bare", Re: regexp.MustCompile(numberGroup)},
}

// AmountMatch is the outcome of ExtractAmount. Text is the verbatim matched
// substring, empty when nothing matched.
type AmountMatch struct {
	Value   decimal.Decimal
	Text    string
	Pattern string
}

// Found reports whether any pattern matched.
func (m AmountMatch) Found() bool {
	return m.Text != ""
}

// ExtractAmount returns the most plausible amount in a lower-cased transcript.
// Only the first match of the highest-priority pattern is used; multiple
// amounts are never summed. Without a match the value is zero.
func ExtractAmount(lower string) AmountMatch {
	for _, p := range AmountPatterns {
		m := p.Re.FindStringSubmatch(lower)
		if m == nil || m[1] == "" {
			continue
		}

		var value decimal.Decimal
		if p.Spelled {
			value = decimal.NewFromInt(int64(textutils.WordToNumber(m[1])))
		} else {
			v, err := decimal.NewFromString(m[1])
			if err != nil {
				continue
			}
			value = v
		}

		return AmountMatch{Value: value, Text: m[0], Pattern: p.Name}
	}

	return AmountMatch{Value: decimal.Zero}
}

// Package textutils provides text extraction and manipulation utilities for transcripts.
package textutils

import "strings"

// NumberWords lists the spelled-out cardinals understood by WordToNumber,
// in the order they are tried by amount patterns.
var NumberWords = []string{
	"one", "two", "three", "four", "five",
	"six", "seven", "eight", "nine", "ten",
	"eleven", "twelve", "thirteen", "fourteen", "fifteen",
	"sixteen", "seventeen", "eighteen", "nineteen", "twenty",
	"thirty", "forty", "fifty", "sixty", "seventy",
	"eighty", "ninety", "hundred", "thousand",
}

var numberWordValues = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14, "fifteen": 15,
	"sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19, "twenty": 20,
	"thirty": 30, "forty": 40, "fifty": 50, "sixty": 60, "seventy": 70,
	"eighty": 80, "ninety": 90, "hundred": 100, "thousand": 1000,
}

// WordToNumber returns the value of a single spelled-out number word, or 0
// when the word is not recognized. Compound forms such as "twenty-five" are
// not combined.
func WordToNumber(word string) int {
	return numberWordValues[strings.ToLower(strings.TrimSpace(word))]
}

// NumberWordAlternation returns NumberWords joined as a regexp alternation.
func NumberWordAlternation() string {
	return strings.Join(NumberWords, "|")
}

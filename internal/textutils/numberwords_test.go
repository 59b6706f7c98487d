package textutils_test

import (
	"regexp"
	"testing"

	"fjacquet/voice-expense/internal/textutils"

	"github.com/stretchr/testify/assert"
)

func TestWordToNumber(t *testing.T) {
	tests := []struct {
		word     string
		expected int
	}{
		{"one", 1},
		{"nine", 9},
		{"ten", 10},
		{"fifteen", 15},
		{"nineteen", 19},
		{"twenty", 20},
		{"forty", 40},
		{"ninety", 90},
		{"hundred", 100},
		{"thousand", 1000},
		{"Fifteen", 15},
		{" twelve ", 12},
		{"zero", 0},
		{"million", 0},
		{"", 0},
		// compound words are not combined
		{"twenty-five", 0},
		{"fourty", 0},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.expected, textutils.WordToNumber(tt.word))
		})
	}
}

func TestNumberWordsAllResolve(t *testing.T) {
	for _, w := range textutils.NumberWords {
		assert.NotZero(t, textutils.WordToNumber(w), w)
	}
}

func TestNumberWordAlternation(t *testing.T) {
	re := regexp.MustCompile(`^(?:` + textutils.NumberWordAlternation() + `)$`)
	assert.True(t, re.MatchString("seventeen"))
	assert.True(t, re.MatchString("hundred"))
	assert.False(t, re.MatchString("zero"))
}

package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateString(t *testing.T) {
	tests := []struct {
		name      string
		dateStr   string
		expectErr bool
		expectedY int
		expectedM time.Month
		expectedD int
	}{
		{"ISO format", "2023-01-15", false, 2023, time.January, 15},
		{"ISO timestamp", "2023-01-15T10:30:00Z", false, 2023, time.January, 15},
		{"Full timestamp", "2023-01-15 10:30:45", false, 2023, time.January, 15},
		{"Slashes", "2023/01/15", false, 2023, time.January, 15},
		{"European format", "15.01.2023", false, 2023, time.January, 15},
		{"US format", "01/15/2023", false, 2023, time.January, 15},
		{"Written out", "January 15, 2023", false, 2023, time.January, 15},
		{"Extra spaces", "  2023-01-15  ", false, 2023, time.January, 15},
		{"Empty string", "", true, 0, 0, 0},
		{"Invalid format", "not a date", true, 0, 0, 0},
		{"Invalid calendar date", "2023-02-30", true, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			date, err := ParseDateString(tc.dateStr, time.UTC)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedY, date.Year())
			assert.Equal(t, tc.expectedM, date.Month())
			assert.Equal(t, tc.expectedD, date.Day())
		})
	}
}

func TestNormalizeISODate(t *testing.T) {
	got, err := NormalizeISODate("March 5, 2024")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", got)

	_, err = NormalizeISODate("soon")
	assert.Error(t, err)
}

func TestIsISODate(t *testing.T) {
	assert.True(t, IsISODate("2024-02-29"))
	assert.False(t, IsISODate("2023-02-29"))
	assert.False(t, IsISODate("05.03.2024"))
	assert.False(t, IsISODate(""))
}

func TestCleanDateString(t *testing.T) {
	assert.Equal(t, "Jan 2, 2006", CleanDateString("  Jan   2,\t2006 "))
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("UTC-8", -8*3600)
	in := time.Date(2024, 3, 10, 23, 45, 0, 0, loc)
	got := StartOfDay(in)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}

package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSheetDate(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"01.01.2024", true},
		{"31.12.2024", true},
		{"31.02.2024", false}, // right shape, impossible date
		{"01.13.2024", false}, // month out of range
		{"2024.01.01", false}, // wrong shape
		{"1.1.2024", false},
		{"01.01.2024 ", false},
		{"notes", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := ParseSheetDate(tt.name)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.name, d.Format("02.01.2006"))
			}
		})
	}
}

func TestSelectSheets(t *testing.T) {
	names := []string{
		"Summary",
		"03.01.2024",
		"01.01.2024",
		"31.02.2024", // impossible date, excluded
		"05.01.2024",
		"10.01.2024", // outside the range
	}
	from, err := time.Parse("02.01.2006", "01.01.2024")
	require.NoError(t, err)
	to, err := time.Parse("02.01.2006", "05.01.2024")
	require.NoError(t, err)

	// Workbook order is preserved; both endpoints are inclusive.
	got := SelectSheets(names, from, to)
	assert.Equal(t, []string{"03.01.2024", "01.01.2024", "05.01.2024"}, got)
}

func TestSelectSheetsNoMatches(t *testing.T) {
	from, _ := time.Parse("02.01.2006", "01.01.2024")
	to, _ := time.Parse("02.01.2006", "05.01.2024")
	assert.Empty(t, SelectSheets([]string{"Summary", "Totals"}, from, to))
}

package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{8, "8"},
		{0, "0"},
		{-2, "-2"},
		{1.5, "1.500"},
		{0.25, "0.250"},
		{1234.5678, "1234.568"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatQuantity(tt.in))
	}
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "37.50", FormatRate(37.5))
	assert.Equal(t, "0.00", FormatRate(0))
	assert.Equal(t, "16.67", FormatRate(16.666666))
}

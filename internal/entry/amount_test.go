package entry

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"1500", 1500},
		{" 1500 ", 1500},
		{"１５００", 1500},
		{"0", 0},
		{"1500.0", 1500},
		{"+20", 20},
		{"1000000000000", MaxAmount},
		{"１００００００００００００", MaxAmount},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.input)
		require.NoError(t, err, "input: %q", tt.input)
		assert.Equal(t, tt.want, got, "input: %q", tt.input)
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	for _, input := range []string{"abc", "12.5", "1e3", "1E3", "-1", "1,500", "NaN", "1000000000001", strconv.FormatInt(math.MaxInt64, 10), "9223372036854775808"} {
		_, err := ParseAmount(input)
		assert.ErrorIs(t, err, ErrInvalidAmount, "input: %q", input)
	}
}

func TestParseAmount_Empty(t *testing.T) {
	for _, input := range []string{"", "   ", "　"} {
		_, err := ParseAmount(input)
		assert.ErrorIs(t, err, ErrMissingRequiredField, "input: %q", input)
	}
}

package currencyutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "223.00", "223"},
		{"rupee symbol", "₹1,234.56", "1234.56"},
		{"dollar with space", "$ 223", "223"},
		{"thousands separator", "12,34,567.89", "1234567.89"},
		{"embedded spaces", "1 234.56", "1234.56"},
		{"negative", "-500.25", "-500.25"},
		{"negative with symbol", "-₹500", "-500"},
		{"empty", "", "0"},
		{"junk", "abc", "0"},
		{"lone symbol", "₹", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expected, err := decimal.NewFromString(tt.expected)
			assert.NoError(t, err)
			assert.True(t, expected.Equal(ParseAmount(tt.input)), "input %q", tt.input)
		})
	}
}

func TestStandardizeAmount(t *testing.T) {
	assert.Equal(t, "1234.56", StandardizeAmount("₹1,234.56"))
	assert.Equal(t, "-500", StandardizeAmount(" -₹500 "))
	assert.Equal(t, "", StandardizeAmount("-"))
}

func TestIsPositive(t *testing.T) {
	assert.True(t, IsPositive(decimal.NewFromInt(1)))
	assert.False(t, IsPositive(decimal.Zero))
	assert.False(t, IsPositive(decimal.NewFromInt(-1)))
}

func TestAbsDiff(t *testing.T) {
	a := decimal.NewFromInt(223)
	b := decimal.RequireFromString("273.50")
	assert.True(t, decimal.RequireFromString("50.5").Equal(AbsDiff(a, b)))
	assert.True(t, decimal.RequireFromString("50.5").Equal(AbsDiff(b, a)))
	assert.True(t, AbsDiff(a, a).IsZero())
}

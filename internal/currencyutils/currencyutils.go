// Package currencyutils provides amount parsing and decimal helpers used
// throughout the application.
package currencyutils

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var symbolPattern = regexp.MustCompile(`[₹$€£¥,\s]`)

// ParseAmount parses a string representation of an amount into a decimal
// value. It strips currency symbols, thousands separators and whitespace
// ("₹1,234.56" -> 1234.56). Unparseable input yields decimal.Zero rather
// than an error: a junk amount must degrade to a neutral contribution, never
// abort a batch run.
func ParseAmount(amountStr string) decimal.Decimal {
	standardized := StandardizeAmount(amountStr)
	if standardized == "" {
		return decimal.Zero
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// StandardizeAmount converts common currency string formats into a form
// decimal.NewFromString accepts. Handles "₹1,234.56", "$ 223", "1 234.56".
func StandardizeAmount(amountStr string) string {
	amountStr = strings.TrimSpace(amountStr)

	isNegative := strings.HasPrefix(amountStr, "-")
	amountStr = strings.TrimPrefix(amountStr, "-")

	amountStr = symbolPattern.ReplaceAllString(amountStr, "")

	if isNegative && amountStr != "" {
		return "-" + amountStr
	}
	return amountStr
}

// IsPositive checks if an amount is greater than zero.
func IsPositive(amount decimal.Decimal) bool {
	return amount.GreaterThan(decimal.Zero)
}

// AbsDiff returns the absolute difference between two amounts.
func AbsDiff(a, b decimal.Decimal) decimal.Decimal {
	return a.Sub(b).Abs()
}

package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatINR renders an amount in whole rupees with Indian digit grouping:
// the last three digits form one group and every two digits before that
// form another (₹1,23,45,678).
func FormatINR(amount decimal.Decimal) string {
	rounded := amount.Round(0)
	negative := rounded.IsNegative()
	digits := rounded.Abs().String()

	result := "₹" + applyIndianGrouping(digits)
	if negative {
		result = "-" + result
	}
	return result
}

// FormatRate renders a fractional rate such as 0.15 as "15%".
func FormatRate(rate decimal.Decimal) string {
	return rate.Shift(2).String() + "%"
}

func applyIndianGrouping(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	groups := []string{s[n-3:]}
	remaining := s[:n-3]
	for len(remaining) > 2 {
		groups = append(groups, remaining[len(remaining)-2:])
		remaining = remaining[:len(remaining)-2]
	}
	if len(remaining) > 0 {
		groups = append(groups, remaining)
	}

	for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
		groups[i], groups[j] = groups[j], groups[i]
	}
	return strings.Join(groups, ",")
}

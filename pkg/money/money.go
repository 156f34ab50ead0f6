// Package money provides formatting and rate helpers for monetary amounts
// expressed as shopspring decimals. Award figures are sterling throughout.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// GBP formats an amount as pounds sterling with thousands separators and two
// decimal places, e.g. "£1,234.56". Negative amounts render as "-£250.00".
func GBP(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-£" + Grouped(amount.Neg())
	}
	return "£" + Grouped(amount)
}

// Grouped returns the amount with thousands separators but no currency symbol.
func Grouped(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	fixed := amount.StringFixed(2)
	intPart, decPart, _ := strings.Cut(fixed, ".")
	if len(intPart) > 3 {
		var b strings.Builder
		for i := 0; i < len(intPart); i++ {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				b.WriteByte(',')
			}
			b.WriteByte(intPart[i])
		}
		intPart = b.String()
	}
	return sign + intPart + "." + decPart
}

// Percent formats a fractional rate (0.40) as a whole percentage ("40%").
func Percent(rate decimal.Decimal) string {
	return rate.Mul(hundred).StringFixed(0) + "%"
}

// Fraction converts a percentage figure (5) into its fractional multiplier (0.05).
func Fraction(pct decimal.Decimal) decimal.Decimal {
	return pct.Div(hundred)
}

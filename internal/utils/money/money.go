// Package money implements fixed-scale minor-unit arithmetic for amounts.
// All sums and comparisons inside the ledger happen on int64 minor units
// (1/10000 of a currency unit); decimal strings exist only at boundaries.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits tracked per amount.
const Scale = 4

// ToMinorUnits converts an amount to integer minor units, rounding anything
// beyond the tracked scale half-up.
func ToMinorUnits(d decimal.Decimal) int64 {
	return d.Shift(Scale).Round(0).IntPart()
}

// FromMinorUnits converts integer minor units back to a decimal amount.
func FromMinorUnits(m int64) decimal.Decimal {
	return decimal.New(m, -Scale)
}

// Format renders an amount with exactly Scale fractional digits.
func Format(d decimal.Decimal) string {
	return d.StringFixed(Scale)
}

// FormatMinor renders minor units as a fixed-scale decimal string.
func FormatMinor(m int64) string {
	return Format(FromMinorUnits(m))
}

// ParseAmount parses a decimal string into a non-negative amount.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount %q must not be negative", s)
	}
	return d, nil
}

// FloorPercent computes floor(pct/100 * amount) at whole currency units,
// matching how commissions are charged.
func FloorPercent(amount, pct decimal.Decimal) decimal.Decimal {
	return amount.Mul(pct).Div(decimal.NewFromInt(100)).Floor()
}

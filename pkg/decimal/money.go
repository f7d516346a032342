package decimal

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// CurrencyWidth is the field width used for right-aligned whole-unit amounts
const CurrencyWidth = 15

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Whole rounds to whole currency units using banker's rounding
func (m Money) Whole() Money {
	return Money{m.Decimal.RoundBank(0)}
}

// IsNegligible reports whether the amount is strictly within tolerance of zero
func (m Money) IsNegligible(tolerance decimal.Decimal) bool {
	return m.Decimal.Abs().LessThan(tolerance)
}

// Grouped returns the whole-unit amount with comma thousands separators, e.g. "-1,234,567".
// Amounts that round to zero print as "0".
func (m Money) Grouped() string {
	return humanize.BigComma(m.Whole().Decimal.BigInt())
}

// Format renders "$" followed by the grouped whole-unit amount right-aligned in CurrencyWidth
func (m Money) Format() string {
	return fmt.Sprintf("$%*s", CurrencyWidth, m.Grouped())
}

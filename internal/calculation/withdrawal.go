package calculation

import (
	"fmt"

	"github.com/rpgo/nestegg/internal/domain"
	"github.com/shopspring/decimal"
)

// divisionPrecision is the number of decimal places kept by divisions.
const divisionPrecision int32 = 28

var (
	decimalOne    = decimal.NewFromInt(1)
	monthsPerYear = decimal.NewFromInt(12)
)

// GrowthFactor returns (1 + rate)^years.
func GrowthFactor(rate decimal.Decimal, years int) decimal.Decimal {
	return decimalOne.Add(rate).Pow(decimal.NewFromInt(int64(years)))
}

// CalculateNestEgg compounds the current savings over the accumulation years
func CalculateNestEgg(currentSavings, rate decimal.Decimal, accumulationYears int) decimal.Decimal {
	return currentSavings.Mul(GrowthFactor(rate, accumulationYears))
}

// CalculateAnnualWithdrawal sizes the constant end-of-year withdrawal that
// amortizes nestEgg over years at rate (ordinary annuity payment):
//
//	PMT = PV * r * (1 + r)^n / ((1 + r)^n - 1)
//
// A zero rate makes the formula undefined, so the nest egg is split evenly instead.
func CalculateAnnualWithdrawal(nestEgg, rate decimal.Decimal, years int) (decimal.Decimal, domain.WithdrawalMethod, error) {
	if years < 1 {
		return decimal.Zero, "", fmt.Errorf("%w: years in retirement must be at least 1 (got %d)", domain.ErrInvalidConfiguration, years)
	}
	if rate.IsZero() {
		return nestEgg.DivRound(decimal.NewFromInt(int64(years)), divisionPrecision), domain.WithdrawalStraightLine, nil
	}

	growth := GrowthFactor(rate, years)
	if !growth.IsPositive() {
		return decimal.Zero, "", fmt.Errorf("%w: growth factor %s is not positive", domain.ErrInvalidConfiguration, growth.String())
	}
	denominator := growth.Sub(decimalOne)
	if denominator.IsZero() {
		return nestEgg.DivRound(decimal.NewFromInt(int64(years)), divisionPrecision), domain.WithdrawalStraightLine, nil
	}
	// The schedule amplifies a withdrawal error by up to the growth factor,
	// so the quotient keeps as many extra places as the factor has digits.
	precision := divisionPrecision + integerDigits(growth)
	return nestEgg.Mul(rate).Mul(growth).DivRound(denominator, precision), domain.WithdrawalAnnuity, nil
}

func integerDigits(d decimal.Decimal) int32 {
	return int32(len(d.Truncate(0).Abs().String()))
}

// MonthlyWithdrawal converts an annual withdrawal to a monthly amount (no intra-year compounding)
func MonthlyWithdrawal(annual decimal.Decimal) decimal.Decimal {
	return annual.DivRound(monthsPerYear, divisionPrecision)
}

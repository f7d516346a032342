package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidConfiguration is returned when projection parameters cannot produce a schedule.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Parameters holds the five inputs of a retirement projection.
type Parameters struct {
	CurrentAge        int             `json:"current_age"`
	CurrentSavings    decimal.Decimal `json:"current_savings"`
	RetirementAge     int             `json:"retirement_age"`
	YearsInRetirement int             `json:"years_in_retirement"`
	AnnualGrowthRate  decimal.Decimal `json:"annual_growth_rate"` // fraction per year, 0.07 = 7%
}

// DefaultParameters returns the parameter set used when none is supplied.
func DefaultParameters() Parameters {
	return Parameters{
		CurrentAge:        44,
		CurrentSavings:    decimal.NewFromInt(2000000),
		RetirementAge:     50,
		YearsInRetirement: 20,
		AnnualGrowthRate:  decimal.NewFromFloat(0.07),
	}
}

// AccumulationYears is the number of compounding years before retirement.
func (p Parameters) AccumulationYears() int {
	return p.RetirementAge - p.CurrentAge
}

// RetirementEndAge is the age at which the distribution phase ends.
func (p Parameters) RetirementEndAge() int {
	return p.RetirementAge + p.YearsInRetirement
}

// Validate checks the parameters and wraps ErrInvalidConfiguration on failure.
func (p Parameters) Validate() error {
	if p.CurrentAge < 0 {
		return fmt.Errorf("%w: current age cannot be negative (got %d)", ErrInvalidConfiguration, p.CurrentAge)
	}
	if p.RetirementAge <= p.CurrentAge {
		return fmt.Errorf("%w: retirement age (%d) must be greater than current age (%d)", ErrInvalidConfiguration, p.RetirementAge, p.CurrentAge)
	}
	if p.YearsInRetirement < 1 {
		return fmt.Errorf("%w: years in retirement must be at least 1 (got %d)", ErrInvalidConfiguration, p.YearsInRetirement)
	}
	if p.CurrentSavings.IsNegative() {
		return fmt.Errorf("%w: current savings cannot be negative (got %s)", ErrInvalidConfiguration, p.CurrentSavings.String())
	}
	// 1+rate must stay positive for compounding and discounting
	if p.AnnualGrowthRate.LessThanOrEqual(decimal.NewFromInt(-1)) {
		return fmt.Errorf("%w: annual growth rate must be greater than -100%% (got %s)", ErrInvalidConfiguration, p.AnnualGrowthRate.String())
	}
	return nil
}

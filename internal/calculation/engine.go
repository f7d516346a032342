package calculation

import (
	"fmt"

	"github.com/rpgo/nestegg/internal/domain"
	"github.com/shopspring/decimal"
)

// ProjectionEngine runs the accumulation and distribution phases of a retirement projection
type ProjectionEngine struct {
	Logger Logger
}

// NewProjectionEngine creates a new projection engine with a no-op logger
func NewProjectionEngine() *ProjectionEngine {
	return &ProjectionEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the projection engine. If nil is provided, a no-op logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// Compute validates the parameters and builds the projection result.
// No partial result is returned when validation fails.
func (pe *ProjectionEngine) Compute(params domain.Parameters) (*domain.ProjectionResult, error) {
	if err := params.Validate(); err != nil {
		pe.Logger.Warnf("rejected projection parameters: %v", err)
		return nil, err
	}

	rate := params.AnnualGrowthRate
	accumulationYears := params.AccumulationYears()

	// Phase 1: accumulation
	nestEgg := CalculateNestEgg(params.CurrentSavings, rate, accumulationYears)
	pe.Logger.Debugf("accumulation: %d years at %s -> nest egg %s", accumulationYears, rate.String(), nestEgg.StringFixed(2))

	// Phase 2: distribution
	annual, method, err := CalculateAnnualWithdrawal(nestEgg, rate, params.YearsInRetirement)
	if err != nil {
		return nil, fmt.Errorf("failed to size annual withdrawal: %w", err)
	}
	if method == domain.WithdrawalStraightLine {
		pe.Logger.Infof("growth rate is zero; using straight-line depletion over %d years", params.YearsInRetirement)
	}
	monthly := MonthlyWithdrawal(annual)
	pe.Logger.Debugf("distribution: %s withdrawal %s/year (%s/month) over %d years", method, annual.StringFixed(2), monthly.StringFixed(2), params.YearsInRetirement)

	schedule := SimulateDistribution(nestEgg, annual, rate, params.RetirementAge, params.YearsInRetirement)

	result := &domain.ProjectionResult{
		Parameters:          params,
		AccumulationYears:   accumulationYears,
		NestEggAtRetirement: nestEgg,
		AnnualWithdrawal:    annual,
		MonthlyWithdrawal:   monthly,
		WithdrawalMethod:    method,
		Schedule:            schedule,
	}
	pe.Logger.Debugf("final balance at age %d: %s", result.RetirementEndAge(), result.FinalBalance().StringFixed(2))
	return result, nil
}

// Project runs a projection over the five scalar inputs with a default engine.
func Project(currentAge int, currentSavings decimal.Decimal, retirementAge, yearsInRetirement int, annualGrowthRate decimal.Decimal) (*domain.ProjectionResult, error) {
	return NewProjectionEngine().Compute(domain.Parameters{
		CurrentAge:        currentAge,
		CurrentSavings:    currentSavings,
		RetirementAge:     retirementAge,
		YearsInRetirement: yearsInRetirement,
		AnnualGrowthRate:  annualGrowthRate,
	})
}

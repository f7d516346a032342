package domain

import (
	money "github.com/rpgo/nestegg/pkg/decimal"
	"github.com/shopspring/decimal"
)

// WithdrawalMethod identifies how the constant annual withdrawal was sized.
type WithdrawalMethod string

const (
	// WithdrawalAnnuity sizes the withdrawal with the ordinary-annuity payment formula.
	WithdrawalAnnuity WithdrawalMethod = "annuity"
	// WithdrawalStraightLine divides the nest egg evenly; used when the growth rate is zero.
	WithdrawalStraightLine WithdrawalMethod = "straight_line"
)

// DepletionTolerance is the largest final balance magnitude still reported as fully depleted.
var DepletionTolerance = decimal.NewFromInt(1)

// RetirementYear is a single row of the distribution schedule
type RetirementYear struct {
	Age          int             `json:"age"`
	StartBalance decimal.Decimal `json:"start_balance"` // before this year's growth and withdrawal
	Withdrawal   decimal.Decimal `json:"withdrawal"`
	EndBalance   decimal.Decimal `json:"end_balance"`
}

// Growth returns the interest credited during the year.
func (ry RetirementYear) Growth() decimal.Decimal {
	return ry.EndBalance.Add(ry.Withdrawal).Sub(ry.StartBalance)
}

// ProjectionResult is the outcome of a two-phase projection. It is built once
// by the calculation engine and only read afterwards.
type ProjectionResult struct {
	Parameters          Parameters       `json:"parameters"`
	AccumulationYears   int              `json:"accumulation_years"`
	NestEggAtRetirement decimal.Decimal  `json:"nest_egg_at_retirement"`
	AnnualWithdrawal    decimal.Decimal  `json:"annual_withdrawal"`
	MonthlyWithdrawal   decimal.Decimal  `json:"monthly_withdrawal"`
	WithdrawalMethod    WithdrawalMethod `json:"withdrawal_method"`
	Schedule            []RetirementYear `json:"schedule"`
}

// FinalBalance returns the end balance of the last schedule row, or zero for an empty schedule.
func (pr *ProjectionResult) FinalBalance() decimal.Decimal {
	if len(pr.Schedule) == 0 {
		return decimal.Zero
	}
	return pr.Schedule[len(pr.Schedule)-1].EndBalance
}

// IsDepleted reports whether the final balance is within DepletionTolerance of zero.
func (pr *ProjectionResult) IsDepleted() bool {
	return money.NewMoneyFromDecimal(pr.FinalBalance()).IsNegligible(DepletionTolerance)
}

// RetirementEndAge returns the age at which the schedule ends.
func (pr *ProjectionResult) RetirementEndAge() int {
	return pr.Parameters.RetirementEndAge()
}

// TotalWithdrawn sums the withdrawals over the whole schedule.
func (pr *ProjectionResult) TotalWithdrawn() decimal.Decimal {
	total := decimal.Zero
	for _, y := range pr.Schedule {
		total = total.Add(y.Withdrawal)
	}
	return total
}

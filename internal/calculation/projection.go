package calculation

import (
	"github.com/rpgo/nestegg/internal/domain"
	"github.com/shopspring/decimal"
)

// SimulateDistribution draws the withdrawal from the balance once per year.
// Each year the balance earns rate before the withdrawal is taken; the row
// records the balance as it stood before either.
func SimulateDistribution(nestEgg, withdrawal, rate decimal.Decimal, retirementAge, years int) []domain.RetirementYear {
	schedule := make([]domain.RetirementYear, 0, years)

	balance := nestEgg
	for year := 1; year <= years; year++ {
		interest := balance.Mul(rate)
		newBalance := balance.Add(interest).Sub(withdrawal)

		schedule = append(schedule, domain.RetirementYear{
			Age:          retirementAge + year - 1,
			StartBalance: balance,
			Withdrawal:   withdrawal,
			EndBalance:   newBalance,
		})
		balance = newBalance
	}

	return schedule
}

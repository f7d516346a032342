package output

import (
	"github.com/goccy/go-json"
	"github.com/rpgo/nestegg/internal/domain"
)

// JSONFormatter serializes the projection result as pretty-printed JSON.
// Amounts are rounded to cents; the rate keeps its full precision.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	view := *result
	view.NestEggAtRetirement = result.NestEggAtRetirement.Round(2)
	view.AnnualWithdrawal = result.AnnualWithdrawal.Round(2)
	view.MonthlyWithdrawal = result.MonthlyWithdrawal.Round(2)
	view.Schedule = make([]domain.RetirementYear, len(result.Schedule))
	for i, y := range result.Schedule {
		view.Schedule[i] = domain.RetirementYear{
			Age:          y.Age,
			StartBalance: y.StartBalance.Round(2),
			Withdrawal:   y.Withdrawal.Round(2),
			EndBalance:   y.EndBalance.Round(2),
		}
	}

	out := struct {
		domain.ProjectionResult
		FinalBalance string `json:"final_balance"`
		Depleted     bool   `json:"depleted"`
	}{view, result.FinalBalance().StringFixed(2), result.IsDepleted()}
	return json.MarshalIndent(out, "", "  ")
}

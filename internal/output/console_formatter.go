package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/nestegg/internal/domain"
)

const (
	bannerWidth    = 60
	separatorWidth = 54
	labelWidth     = 21
)

// ConsoleFormatter renders the fixed-width projection summary and retirement schedule.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	var buf bytes.Buffer
	p := result.Parameters
	banner := strings.Repeat("=", bannerWidth)

	fmt.Fprintln(&buf, banner)
	fmt.Fprintln(&buf, "          RETIREMENT PROJECTION SUMMARY")
	fmt.Fprintln(&buf, banner)
	labelLine(&buf, "Current age", intToString(p.CurrentAge))
	labelLine(&buf, "Current savings", FormatCurrency(p.CurrentSavings))
	labelLine(&buf, "Retirement age", intToString(p.RetirementAge))
	labelLine(&buf, "Years in retirement", fmt.Sprintf("%d  (ages %d–%d)", p.YearsInRetirement, p.RetirementAge, result.RetirementEndAge()))
	labelLine(&buf, "Assumed growth rate", FormatPercentage(p.AnnualGrowthRate)+" / year")
	fmt.Fprintln(&buf)
	labelLine(&buf, "Growth phase", fmt.Sprintf("%d years", result.AccumulationYears))
	labelLine(&buf, fmt.Sprintf("Portfolio at %d", p.RetirementAge), FormatCurrency(result.NestEggAtRetirement))
	fmt.Fprintln(&buf)
	labelLine(&buf, "Annual withdrawal", FormatCurrency(result.AnnualWithdrawal))
	labelLine(&buf, "Monthly withdrawal", FormatCurrency(result.MonthlyWithdrawal))
	fmt.Fprintln(&buf, banner)

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "  Year-by-year balance during retirement")
	fmt.Fprintf(&buf, "  %4s  %15s  %13s  %15s\n", "Age", "Start Balance", "Withdrawal", "End Balance")
	fmt.Fprintln(&buf, "  "+strings.Repeat("-", separatorWidth))
	for _, yr := range result.Schedule {
		fmt.Fprintf(&buf, "  %4d  %15s  %13s  %15s\n", yr.Age, FormatCurrency(yr.StartBalance), FormatCurrency(yr.Withdrawal), FormatCurrency(yr.EndBalance))
	}

	fmt.Fprintln(&buf, banner)
	if result.IsDepleted() {
		fmt.Fprintln(&buf, "  Portfolio reaches exactly $0 at end of retirement.")
	} else {
		fmt.Fprintf(&buf, "  Remaining balance at end : %s\n", FormatCurrency(result.FinalBalance()))
	}
	fmt.Fprintln(&buf, banner)

	return buf.Bytes(), nil
}

func labelLine(buf *bytes.Buffer, label, value string) {
	fmt.Fprintf(buf, "  %-*s: %s\n", labelWidth, label, value)
}

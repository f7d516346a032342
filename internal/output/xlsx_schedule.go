package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/nestegg/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet  = "Summary"
	scheduleSheet = "Schedule"

	// built-in "#,##0.00"
	numFmtCurrency = 4
	// built-in "0.00%"
	numFmtPercent = 10
)

// XLSXScheduleExporter writes a workbook with a parameter summary sheet and
// the year-by-year schedule. Amounts are stored as numbers rounded to cents.
type XLSXScheduleExporter struct{}

func (x XLSXScheduleExporter) Name() string { return "xlsx" }

func (x XLSXScheduleExporter) Format(result *domain.ProjectionResult) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(scheduleSheet); err != nil {
		return nil, err
	}
	currency, err := f.NewStyle(&excelize.Style{NumFmt: numFmtCurrency})
	if err != nil {
		return nil, err
	}
	percent, err := f.NewStyle(&excelize.Style{NumFmt: numFmtPercent})
	if err != nil {
		return nil, err
	}

	p := result.Parameters
	summary := [][]interface{}{
		{"Current age", p.CurrentAge},
		{"Current savings", cents(p.CurrentSavings)},
		{"Retirement age", p.RetirementAge},
		{"Years in retirement", p.YearsInRetirement},
		{"Annual growth rate", p.AnnualGrowthRate.InexactFloat64()},
		{"Growth phase (years)", result.AccumulationYears},
		{"Portfolio at retirement", cents(result.NestEggAtRetirement)},
		{"Annual withdrawal", cents(result.AnnualWithdrawal)},
		{"Monthly withdrawal", cents(result.MonthlyWithdrawal)},
		{"Withdrawal method", string(result.WithdrawalMethod)},
		{"Final balance", cents(result.FinalBalance())},
	}
	if err := setRows(f, summarySheet, summary); err != nil {
		return nil, err
	}
	for _, cell := range []string{"B2", "B7", "B8", "B9", "B11"} {
		if err := f.SetCellStyle(summarySheet, cell, cell, currency); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(summarySheet, "B5", "B5", percent); err != nil {
		return nil, err
	}

	rows := [][]interface{}{{"Age", "Start Balance", "Withdrawal", "End Balance"}}
	for _, yr := range result.Schedule {
		rows = append(rows, []interface{}{yr.Age, cents(yr.StartBalance), cents(yr.Withdrawal), cents(yr.EndBalance)})
	}
	if err := setRows(f, scheduleSheet, rows); err != nil {
		return nil, err
	}
	if len(result.Schedule) > 0 {
		last := fmt.Sprintf("D%d", len(rows))
		if err := f.SetCellStyle(scheduleSheet, "B2", last, currency); err != nil {
			return nil, err
		}
	}
	for _, sheet := range []string{summarySheet, scheduleSheet} {
		if err := f.SetColWidth(sheet, "A", "D", 22); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func setRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for r, row := range rows {
		for c, value := range row {
			cellRef, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cellRef, value); err != nil {
				return err
			}
		}
	}
	return nil
}

func cents(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

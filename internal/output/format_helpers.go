package output

import (
	"strconv"

	money "github.com/rpgo/nestegg/pkg/decimal"
	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// FormatCurrency formats a decimal as "$" plus a comma-grouped whole amount right-aligned in 15 columns.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatPercentage formats a fractional rate (0.07) as a percentage with one decimal ("7.0%").
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimalHundred).StringFixedBank(1) + "%"
}

func intToString(i int) string { return strconv.Itoa(i) }

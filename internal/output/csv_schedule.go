package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/nestegg/internal/domain"
)

// CSVScheduleExporter writes one row per retirement year.
type CSVScheduleExporter struct{}

func (c CSVScheduleExporter) Name() string { return "csv" }

func (c CSVScheduleExporter) Format(result *domain.ProjectionResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Age", "StartBalance", "Withdrawal", "EndBalance"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, yr := range result.Schedule {
		row := []string{
			intToString(yr.Age),
			yr.StartBalance.StringFixed(2),
			yr.Withdrawal.StringFixed(2),
			yr.EndBalance.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSXScheduleExporter(t *testing.T) {
	out, err := XLSXScheduleExporter{}.Format(buildDefaultResult(t))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "Schedule"}, f.GetSheetList())

	rows, err := f.GetRows("Schedule")
	require.NoError(t, err)
	require.Len(t, rows, 21)
	assert.Equal(t, []string{"Age", "Start Balance", "Withdrawal", "End Balance"}, rows[0])

	raw := excelize.Options{RawCellValue: true}
	age, err := f.GetCellValue("Schedule", "A2", raw)
	require.NoError(t, err)
	assert.Equal(t, "50", age)
	withdrawal, err := f.GetCellValue("Schedule", "C2", raw)
	require.NoError(t, err)
	assert.Equal(t, "283316.66", withdrawal)
	lastAge, err := f.GetCellValue("Schedule", "A21", raw)
	require.NoError(t, err)
	assert.Equal(t, "69", lastAge)

	method, err := f.GetCellValue("Summary", "B10")
	require.NoError(t, err)
	assert.Equal(t, "annuity", method)
}

func TestXLSXScheduleExporterRemainingBalance(t *testing.T) {
	out, err := XLSXScheduleExporter{}.Format(buildShortResult())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	final, err := f.GetCellValue("Summary", "B11", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "580.5", final)
}

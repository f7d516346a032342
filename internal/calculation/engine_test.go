package calculation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/rpgo/nestegg/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLogger captures formatted messages by level.
type recordingLogger struct {
	messages map[string][]string
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{messages: map[string][]string{}}
}

func (r *recordingLogger) log(level, format string, args ...any) {
	r.messages[level] = append(r.messages[level], fmt.Sprintf(format, args...))
}

func (r *recordingLogger) Debugf(format string, args ...any) { r.log("debug", format, args...) }
func (r *recordingLogger) Infof(format string, args ...any)  { r.log("info", format, args...) }
func (r *recordingLogger) Warnf(format string, args ...any)  { r.log("warn", format, args...) }
func (r *recordingLogger) Errorf(format string, args ...any) { r.log("error", format, args...) }

func TestCompute_DefaultScenario(t *testing.T) {
	engine := NewProjectionEngine()
	result, err := engine.Compute(domain.DefaultParameters())
	require.NoError(t, err)

	assert.Equal(t, 6, result.AccumulationYears)
	assert.Equal(t, "3001460.703698", result.NestEggAtRetirement.String())
	assert.Equal(t, "283316.66", result.AnnualWithdrawal.StringFixed(2))
	assert.Equal(t, "23609.72", result.MonthlyWithdrawal.StringFixed(2))
	assert.Equal(t, domain.WithdrawalAnnuity, result.WithdrawalMethod)

	require.Len(t, result.Schedule, 20)
	assert.Equal(t, 50, result.Schedule[0].Age)
	assert.Equal(t, 69, result.Schedule[19].Age)
	assert.Equal(t, "2928246.30", result.Schedule[0].EndBalance.StringFixed(2))
	assert.Equal(t, "264781.92", result.Schedule[19].StartBalance.StringFixed(2))
	// the last year's start grows into exactly one withdrawal
	lastStart := result.AnnualWithdrawal.DivRound(decimal.RequireFromString("1.07"), 28)
	assert.True(t, lastStart.Sub(result.Schedule[19].StartBalance).Abs().LessThan(decimal.NewFromFloat(1e-6)),
		"last start %s, want %s", result.Schedule[19].StartBalance, lastStart)
	assert.True(t, result.FinalBalance().Abs().LessThan(decimal.NewFromInt(1)),
		"final balance %s should be within 1 of zero", result.FinalBalance())
	assert.True(t, result.IsDepleted())
	assert.Equal(t, domain.DefaultParameters(), result.Parameters)
}

func TestCompute_ScheduleInvariants(t *testing.T) {
	tests := []struct {
		name   string
		params domain.Parameters
	}{
		{"default", domain.DefaultParameters()},
		{"single retirement year", domain.Parameters{CurrentAge: 30, CurrentSavings: decimal.NewFromInt(100000), RetirementAge: 65, YearsInRetirement: 1, AnnualGrowthRate: decimal.NewFromFloat(0.05)}},
		{"long horizon", domain.Parameters{CurrentAge: 25, CurrentSavings: decimal.NewFromInt(50000), RetirementAge: 60, YearsInRetirement: 40, AnnualGrowthRate: decimal.NewFromFloat(0.0625)}},
		{"negative rate", domain.Parameters{CurrentAge: 55, CurrentSavings: decimal.NewFromInt(800000), RetirementAge: 62, YearsInRetirement: 25, AnnualGrowthRate: decimal.NewFromFloat(-0.02)}},
		{"zero savings", domain.Parameters{CurrentAge: 40, CurrentSavings: decimal.Zero, RetirementAge: 67, YearsInRetirement: 20, AnnualGrowthRate: decimal.NewFromFloat(0.04)}},
		{"zero rate", domain.Parameters{CurrentAge: 40, CurrentSavings: decimal.NewFromInt(900000), RetirementAge: 67, YearsInRetirement: 30, AnnualGrowthRate: decimal.Zero}},
		{"growth factor beyond 28 digits", domain.Parameters{CurrentAge: 20, CurrentSavings: decimal.NewFromInt(1000000), RetirementAge: 25, YearsInRetirement: 1000, AnnualGrowthRate: decimal.RequireFromString("0.0731")}},
	}

	tolerance := decimal.NewFromFloat(1e-6)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NewProjectionEngine().Compute(tt.params)
			require.NoError(t, err)

			p := tt.params
			require.Len(t, result.Schedule, p.YearsInRetirement)
			assert.True(t, result.Schedule[0].StartBalance.Equal(result.NestEggAtRetirement))

			for i, row := range result.Schedule {
				assert.Equal(t, p.RetirementAge+i, row.Age)
				assert.True(t, row.Withdrawal.Equal(result.AnnualWithdrawal))

				expected := row.StartBalance.Mul(decimal.NewFromInt(1).Add(p.AnnualGrowthRate)).Sub(row.Withdrawal)
				diff := expected.Sub(row.EndBalance).Abs()
				scale := decimal.Max(expected.Abs(), decimal.NewFromInt(1))
				assert.True(t, diff.LessThanOrEqual(scale.Mul(tolerance)),
					"row %d: end balance %s, want %s", i, row.EndBalance, expected)

				if i+1 < len(result.Schedule) {
					assert.True(t, row.EndBalance.Equal(result.Schedule[i+1].StartBalance),
						"row %d end balance does not chain into row %d", i, i+1)
				}
			}
			assert.True(t, result.IsDepleted(), "final balance %s not depleted", result.FinalBalance())
		})
	}
}

func TestCompute_ZeroRateStraightLine(t *testing.T) {
	params := domain.Parameters{
		CurrentAge:        50,
		CurrentSavings:    decimal.NewFromInt(600000),
		RetirementAge:     60,
		YearsInRetirement: 24,
		AnnualGrowthRate:  decimal.Zero,
	}
	logger := newRecordingLogger()
	engine := NewProjectionEngine()
	engine.SetLogger(logger)

	result, err := engine.Compute(params)
	require.NoError(t, err)

	assert.True(t, result.NestEggAtRetirement.Equal(decimal.NewFromInt(600000)))
	assert.True(t, result.AnnualWithdrawal.Equal(decimal.NewFromInt(25000)))
	assert.Equal(t, domain.WithdrawalStraightLine, result.WithdrawalMethod)
	for _, row := range result.Schedule {
		assert.True(t, row.EndBalance.Equal(row.StartBalance.Sub(row.Withdrawal)))
	}
	assert.True(t, result.FinalBalance().IsZero())
	assert.NotEmpty(t, logger.messages["info"])
}

func TestCompute_InvalidConfiguration(t *testing.T) {
	tests := []struct {
		name   string
		params domain.Parameters
	}{
		{"retirement before current age", domain.Parameters{CurrentAge: 44, CurrentSavings: decimal.NewFromInt(1000), RetirementAge: 40, YearsInRetirement: 20, AnnualGrowthRate: decimal.NewFromFloat(0.07)}},
		{"no retirement years", domain.Parameters{CurrentAge: 44, CurrentSavings: decimal.NewFromInt(1000), RetirementAge: 50, YearsInRetirement: 0, AnnualGrowthRate: decimal.NewFromFloat(0.07)}},
		{"negative savings", domain.Parameters{CurrentAge: 44, CurrentSavings: decimal.NewFromInt(-5), RetirementAge: 50, YearsInRetirement: 20, AnnualGrowthRate: decimal.NewFromFloat(0.07)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := newRecordingLogger()
			engine := NewProjectionEngine()
			engine.SetLogger(logger)

			result, err := engine.Compute(tt.params)
			assert.Nil(t, result)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidConfiguration))
			assert.Len(t, logger.messages["warn"], 1)
		})
	}
}

func TestProject_EntryPoint(t *testing.T) {
	result, err := Project(44, decimal.NewFromInt(2000000), 50, 20, decimal.NewFromFloat(0.07))
	require.NoError(t, err)
	assert.Len(t, result.Schedule, 20)

	_, err = Project(44, decimal.NewFromInt(2000000), 40, 20, decimal.NewFromFloat(0.07))
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
}

func TestSetLogger_NilFallsBackToNop(t *testing.T) {
	engine := NewProjectionEngine()
	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger)
}

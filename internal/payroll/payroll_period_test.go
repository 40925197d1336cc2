package payroll_test

import (
	"testing"
	"time"

	"cadebeck-hr/internal/payroll"
	payrollerrors "cadebeck-hr/internal/payroll/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParsePeriod(t *testing.T) {
	p, err := payroll.ParsePeriod("02/2028")
	assert.NoError(t, err)
	assert.Equal(t, date(2028, 2, 1), p.Start())
	assert.Equal(t, date(2028, 2, 29), p.End())
	assert.Equal(t, "02/2028", p.String())
	assert.Equal(t, "022028", p.Compact())

	p, err = payroll.ParsePeriod("12/2026")
	assert.NoError(t, err)
	assert.Equal(t, date(2026, 12, 31), p.End())

	for _, bad := range []string{"", "2026-03", "13/2026", "3/2026x"} {
		_, err := payroll.ParsePeriod(bad)
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidPeriodFormat, bad)
	}
}

func TestIsEligible(t *testing.T) {
	period, _ := payroll.ParsePeriod("03/2026")
	claimed := uuid.New()
	ended := date(2026, 2, 28)
	endsMid := date(2026, 3, 15)

	tests := []struct {
		name string
		item payroll.LineItem
		want bool
	}{
		{
			name: "recurring started earlier",
			item: payroll.LineItem{Status: payroll.ItemStatusActive, IsRecurring: true, EffectiveDate: date(2025, 6, 1)},
			want: true,
		},
		{
			name: "recurring already attached to earlier payroll",
			item: payroll.LineItem{Status: payroll.ItemStatusActive, IsRecurring: true, EffectiveDate: date(2025, 6, 1), PayrollID: &claimed},
			want: true,
		},
		{
			name: "recurring starts next month",
			item: payroll.LineItem{Status: payroll.ItemStatusActive, IsRecurring: true, EffectiveDate: date(2026, 4, 1)},
			want: false,
		},
		{
			name: "recurring expired before period",
			item: payroll.LineItem{Status: payroll.ItemStatusActive, IsRecurring: true, EffectiveDate: date(2025, 6, 1), EndDate: &ended},
			want: false,
		},
		{
			name: "recurring ending inside period",
			item: payroll.LineItem{Status: payroll.ItemStatusActive, IsRecurring: true, EffectiveDate: date(2025, 6, 1), EndDate: &endsMid},
			want: true,
		},
		{
			name: "inactive",
			item: payroll.LineItem{Status: payroll.ItemStatusInactive, IsRecurring: true, EffectiveDate: date(2025, 6, 1)},
			want: false,
		},
		{
			name: "one-off inside period",
			item: payroll.LineItem{Status: payroll.ItemStatusActive, EffectiveDate: date(2026, 3, 31)},
			want: true,
		},
		{
			name: "one-off from earlier period",
			item: payroll.LineItem{Status: payroll.ItemStatusActive, EffectiveDate: date(2026, 2, 10)},
			want: false,
		},
		{
			name: "one-off already claimed",
			item: payroll.LineItem{Status: payroll.ItemStatusActive, EffectiveDate: date(2026, 3, 5), PayrollID: &claimed},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, payroll.IsEligible(tt.item, period))
		})
	}
}

func TestSumByCategory(t *testing.T) {
	items := []payroll.LineItem{
		{Category: "housing", Amount: decimal.RequireFromString("5000")},
		{Category: "transport", Amount: decimal.RequireFromString("1200.505")},
		{Category: "housing", Amount: decimal.RequireFromString("250")},
	}

	byCategory, total := payroll.SumByCategory(items)
	assert.True(t, byCategory["housing"].Equal(decimal.RequireFromString("5250")))
	assert.True(t, byCategory["transport"].Equal(decimal.RequireFromString("1200.51")))
	assert.True(t, total.Equal(decimal.RequireFromString("6450.51")))

	byCategory, total = payroll.SumByCategory(nil)
	assert.Empty(t, byCategory)
	assert.True(t, total.IsZero())
}

func TestPayroll_CanTransition(t *testing.T) {
	draft := payroll.Payroll{Status: payroll.StatusDraft}
	assert.True(t, draft.CanTransition(payroll.StatusProcessed))
	assert.False(t, draft.CanTransition(payroll.StatusPaid))

	processed := payroll.Payroll{Status: payroll.StatusProcessed}
	assert.True(t, processed.CanTransition(payroll.StatusPaid))
	assert.False(t, processed.CanTransition(payroll.StatusDraft))

	paid := payroll.Payroll{Status: payroll.StatusPaid}
	assert.False(t, paid.CanTransition(payroll.StatusProcessed))
	assert.False(t, paid.CanTransition(payroll.StatusPaid))
}

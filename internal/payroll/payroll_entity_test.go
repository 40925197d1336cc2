package payroll_test

import (
	"testing"

	"cadebeck-hr/internal/payroll"
	"cadebeck-hr/internal/tax"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPayroll_HasStatutoryFields(t *testing.T) {
	tests := []struct {
		name string
		p    payroll.Payroll
		want bool
	}{
		{"never calculated", payroll.Payroll{GrossPay: dec("60000")}, false},
		{"zero basic keeps nssf at zero", payroll.Payroll{GrossPay: dec("60000"), PAYE: dec("12063.35"), NHIF: dec("1300")}, true},
		{"only paye", payroll.Payroll{GrossPay: dec("20000"), PAYE: dec("1000")}, true},
		{"empty row", payroll.Payroll{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.HasStatutoryFields())
		})
	}
}

func TestPayroll_ApplyBreakdownRecordsTableVersion(t *testing.T) {
	tables := tax.DefaultTables()
	tables.Version = "ke-2026-07"
	b := tax.NewCalculator(tables).CalculateAll(decimal.Zero, dec("60000"), decimal.Zero, 0)

	var p payroll.Payroll
	p.ApplyBreakdown(b)

	assert.Equal(t, "ke-2026-07", p.TaxTableVersion)
	assert.True(t, p.NSSF.IsZero())
	assert.True(t, p.HasStatutoryFields())
}

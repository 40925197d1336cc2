package loan_test

import (
	"testing"

	"cadebeck-hr/internal/loan"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAmortize(t *testing.T) {
	t.Run("installment capped at remaining balance", func(t *testing.T) {
		inst := loan.Amortize(loan.EmployeeLoan{
			RemainingBalance:   d("1000"),
			MonthlyInstallment: d("1500"),
			InterestRate:       d("0"),
		})

		assert.True(t, inst.Amount.Equal(d("1000")))
		assert.True(t, inst.BalanceAfter.IsZero())
		assert.True(t, inst.Completed)
		assert.False(t, inst.NegativePrincipal())
	})

	t.Run("interest accrues on balance before repayment", func(t *testing.T) {
		inst := loan.Amortize(loan.EmployeeLoan{
			RemainingBalance:   d("12000"),
			MonthlyInstallment: d("1100"),
			InterestRate:       d("12"),
		})

		assert.True(t, inst.Interest.Equal(d("120")), inst.Interest.String())
		assert.True(t, inst.Principal.Equal(d("980")), inst.Principal.String())
		assert.True(t, inst.BalanceBefore.Equal(d("12000")))
		assert.True(t, inst.BalanceAfter.Equal(d("10900")))
		assert.False(t, inst.Completed)
	})

	t.Run("interest above installment keeps negative principal", func(t *testing.T) {
		inst := loan.Amortize(loan.EmployeeLoan{
			RemainingBalance:   d("100000"),
			MonthlyInstallment: d("500"),
			InterestRate:       d("24"),
		})

		assert.True(t, inst.Interest.Equal(d("2000")))
		assert.True(t, inst.Principal.Equal(d("-1500")))
		assert.True(t, inst.NegativePrincipal())
	})
}

func TestAmortize_NeverOverpays(t *testing.T) {
	total, monthly := loan.Terms(d("10000"), d("10"), 7)
	l := loan.EmployeeLoan{
		TotalAmount:        total,
		RemainingBalance:   total,
		MonthlyInstallment: monthly,
		InterestRate:       d("10"),
	}

	paid := decimal.Zero
	runs := 0
	for l.RemainingBalance.IsPositive() && runs < 20 {
		inst := loan.Amortize(l)
		paid = paid.Add(inst.Amount)
		l.RemainingBalance = inst.BalanceAfter
		runs++
	}

	assert.Equal(t, 7, runs)
	assert.True(t, paid.Equal(total), "paid %s total %s", paid, total)
	assert.True(t, l.RemainingBalance.IsZero())
}

func TestTerms(t *testing.T) {
	total, monthly := loan.Terms(d("12000"), d("12"), 12)
	assert.True(t, total.Equal(d("13440")), total.String())
	assert.True(t, monthly.Equal(d("1120")), monthly.String())

	total, monthly = loan.Terms(d("1000"), d("0"), 3)
	assert.True(t, total.Equal(d("1000")))
	assert.True(t, monthly.Equal(d("333.34")), monthly.String())
}

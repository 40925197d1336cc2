package loan

import (
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// Installment is one period of reducing-balance amortization.
type Installment struct {
	Amount        decimal.Decimal
	Interest      decimal.Decimal
	Principal     decimal.Decimal
	BalanceBefore decimal.Decimal
	BalanceAfter  decimal.Decimal
	Completed     bool
}

// NegativePrincipal reports interest exceeding the installment. The value is
// recorded as computed, never clamped.
func (i Installment) NegativePrincipal() bool {
	return i.Principal.IsNegative()
}

// Amortize computes the next repayment of l. Interest accrues monthly on the
// balance before the repayment; the repayment never exceeds that balance.
func Amortize(l EmployeeLoan) Installment {
	before := l.RemainingBalance
	amount := decimal.Min(l.MonthlyInstallment, before).Round(2)
	interest := before.Mul(l.InterestRate).Div(hundred).Div(twelve).Round(2)
	after := before.Sub(amount)

	return Installment{
		Amount:        amount,
		Interest:      interest,
		Principal:     amount.Sub(interest),
		BalanceBefore: before,
		BalanceAfter:  after,
		Completed:     !after.IsPositive(),
	}
}

// Terms derives total repayable and monthly installment using simple
// interest over the term.
func Terms(principal, annualRate decimal.Decimal, installments int) (total, monthly decimal.Decimal) {
	months := decimal.NewFromInt(int64(installments))
	interest := principal.Mul(annualRate).Div(hundred).Mul(months).Div(twelve)
	total = principal.Add(interest).Round(2)
	monthly = total.Div(months).RoundUp(2)
	return total, monthly
}

package loan

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type RepaymentResult struct {
	LoanNumber        string
	Repayment         LoanRepayment
	Completed         bool
	NegativePrincipal bool
}

// ApplyRepayments records one repayment for every active loan of the employee
// that still carries a balance. repo is expected to be bound to the payroll
// transaction.
func ApplyRepayments(
	ctx context.Context,
	repo Repository,
	employeeID uuid.UUID,
	payrollID uuid.UUID,
	paidOn time.Time,
) ([]RepaymentResult, error) {
	loans, err := repo.ListActiveWithBalance(ctx, employeeID.String())
	if err != nil {
		return nil, err
	}

	results := make([]RepaymentResult, 0, len(loans))
	for i := range loans {
		l := &loans[i]
		inst := Amortize(*l)

		repayment := LoanRepayment{
			ID:               uuid.New(),
			LoanID:           l.ID,
			EmployeeID:       l.EmployeeID,
			PayrollID:        &payrollID,
			Amount:           inst.Amount,
			PrincipalPortion: inst.Principal,
			InterestPortion:  inst.Interest,
			BalanceBefore:    inst.BalanceBefore,
			BalanceAfter:     inst.BalanceAfter,
			RepaymentDate:    paidOn,
		}
		if err := repo.CreateRepayment(ctx, &repayment); err != nil {
			return nil, err
		}

		l.RemainingBalance = inst.BalanceAfter
		l.PaidInstallments++
		if inst.Completed {
			l.Status = StatusCompleted
			completedAt := paidOn
			l.CompletedAt = &completedAt
		}
		if err := repo.Update(ctx, l); err != nil {
			return nil, err
		}

		results = append(results, RepaymentResult{
			LoanNumber:        l.LoanNumber,
			Repayment:         repayment,
			Completed:         inst.Completed,
			NegativePrincipal: inst.NegativePrincipal(),
		})
	}

	return results, nil
}

package loan_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cadebeck-hr/internal/loan"
	loanMock "cadebeck-hr/internal/loan/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestApplyRepayments(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	payrollID := uuid.New()
	paidOn := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	t.Run("final installment completes loan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := loanMock.NewMockRepository(ctrl)

		active := loan.EmployeeLoan{
			ID:                 uuid.New(),
			LoanNumber:         "LN-000001",
			EmployeeID:         employeeID,
			RemainingBalance:   d("1000"),
			MonthlyInstallment: d("1500"),
			InterestRate:       d("0"),
			PaidInstallments:   5,
			Status:             loan.StatusActive,
		}

		repo.EXPECT().ListActiveWithBalance(ctx, employeeID.String()).Return([]loan.EmployeeLoan{active}, nil)
		repo.EXPECT().CreateRepayment(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, r *loan.LoanRepayment) error {
				assert.Equal(t, active.ID, r.LoanID)
				assert.Equal(t, payrollID, *r.PayrollID)
				assert.True(t, r.Amount.Equal(d("1000")))
				assert.True(t, r.BalanceAfter.IsZero())
				assert.Equal(t, paidOn, r.RepaymentDate)
				return nil
			})
		repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, l *loan.EmployeeLoan) error {
				assert.Equal(t, 6, l.PaidInstallments)
				assert.Equal(t, loan.StatusCompleted, l.Status)
				assert.NotNil(t, l.CompletedAt)
				assert.True(t, l.RemainingBalance.IsZero())
				return nil
			})

		results, err := loan.ApplyRepayments(ctx, repo, employeeID, payrollID, paidOn)
		assert.NoError(t, err)
		assert.Len(t, results, 1)
		assert.True(t, results[0].Completed)
		assert.Equal(t, "LN-000001", results[0].LoanNumber)
	})

	t.Run("no active loans", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := loanMock.NewMockRepository(ctrl)
		repo.EXPECT().ListActiveWithBalance(ctx, employeeID.String()).Return(nil, nil)

		results, err := loan.ApplyRepayments(ctx, repo, employeeID, payrollID, paidOn)
		assert.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("repayment insert fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := loanMock.NewMockRepository(ctrl)
		repo.EXPECT().ListActiveWithBalance(ctx, employeeID.String()).Return([]loan.EmployeeLoan{{
			ID:                 uuid.New(),
			RemainingBalance:   d("500"),
			MonthlyInstallment: d("100"),
			InterestRate:       d("0"),
		}}, nil)
		repo.EXPECT().CreateRepayment(ctx, gomock.Any()).Return(errors.New("db down"))

		_, err := loan.ApplyRepayments(ctx, repo, employeeID, payrollID, paidOn)
		assert.EqualError(t, err, "db down")
	})
}

package loan_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	auditMock "cadebeck-hr/internal/audit/mock"
	"cadebeck-hr/internal/employee"
	employeeMock "cadebeck-hr/internal/employee/mock"
	"cadebeck-hr/internal/loan"
	loanerrors "cadebeck-hr/internal/loan/errors"
	loanMock "cadebeck-hr/internal/loan/mock"
	counterMock "cadebeck-hr/internal/shared/counter/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   loan.Service
	repo      *loanMock.MockRepository
	employees *employeeMock.MockRepository
	counter   *counterMock.MockRepository
	audit     *auditMock.MockLogger
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := loanMock.NewMockRepository(ctrl)
	employees := employeeMock.NewMockRepository(ctrl)
	counterRepo := counterMock.NewMockRepository(ctrl)
	auditLog := auditMock.NewMockLogger(ctrl)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   loan.NewService(db, repo, employees, counterRepo, auditLog),
		repo:      repo,
		employees: employees,
		counter:   counterRepo,
		audit:     auditLog,
	}
}

func validRequest(employeeID string) loan.CreateLoanRequest {
	return loan.CreateLoanRequest{
		EmployeeID:   employeeID,
		Principal:    d("12000"),
		InterestRate: d("12"),
		Installments: 12,
		StartDate:    "2026-01-01",
		Purpose:      "school fees",
	}
}

func TestLoanService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		employeeID := uuid.New().String()
		actorID := uuid.New().String()

		deps.employees.EXPECT().FindByID(ctx, employeeID).Return(&employee.Employee{}, nil)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().NextNumber(ctx, "loan_number", "LN", 6).Return("LN-000042", nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, l *loan.EmployeeLoan) error {
				assert.Equal(t, "LN-000042", l.LoanNumber)
				assert.True(t, l.TotalAmount.Equal(d("13440")))
				assert.True(t, l.RemainingBalance.Equal(l.TotalAmount))
				assert.Equal(t, loan.StatusActive, l.Status)
				return nil
			})
		deps.sqlMock.ExpectCommit()
		deps.audit.EXPECT().Log(ctx, gomock.Any()).Return(nil)

		resp, err := deps.service.Create(ctx, actorID, validRequest(employeeID))
		assert.NoError(t, err)
		assert.Equal(t, "LN-000042", resp.LoanNumber)
		assert.True(t, resp.MonthlyInstallment.Equal(d("1120")))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("employee not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		employeeID := uuid.New().String()
		deps.employees.EXPECT().FindByID(ctx, employeeID).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Create(ctx, "", validRequest(employeeID))
		assert.ErrorIs(t, err, loanerrors.ErrEmployeeNotFound)
	})

	t.Run("validation", func(t *testing.T) {
		deps := setupServiceTest(t)
		employeeID := uuid.New().String()

		req := validRequest(employeeID)
		req.Principal = d("0")
		_, err := deps.service.Create(ctx, "", req)
		assert.ErrorIs(t, err, loanerrors.ErrInvalidPrincipal)

		req = validRequest(employeeID)
		req.Installments = 0
		_, err = deps.service.Create(ctx, "", req)
		assert.ErrorIs(t, err, loanerrors.ErrInvalidInstallments)

		req = validRequest(employeeID)
		req.InterestRate = d("-1")
		_, err = deps.service.Create(ctx, "", req)
		assert.ErrorIs(t, err, loanerrors.ErrInvalidInterestRate)

		req = validRequest(employeeID)
		req.StartDate = "01/01/2026"
		_, err = deps.service.Create(ctx, "", req)
		assert.ErrorIs(t, err, loanerrors.ErrInvalidDateFormat)
	})

	t.Run("insert fails rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		employeeID := uuid.New().String()

		deps.employees.EXPECT().FindByID(ctx, employeeID).Return(&employee.Employee{}, nil)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().NextNumber(ctx, "loan_number", "LN", 6).Return("LN-000001", nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("insert failed"))
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Create(ctx, "", validRequest(employeeID))
		assert.EqualError(t, err, "insert failed")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestLoanService_GetByID(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)

	id := uuid.New()
	deps.repo.EXPECT().FindByID(ctx, id.String()).Return(&loan.EmployeeLoan{
		ID:         id,
		LoanNumber: "LN-000007",
		Status:     loan.StatusActive,
		Repayments: []loan.LoanRepayment{{ID: uuid.New(), Amount: d("100")}},
	}, nil)

	resp, err := deps.service.GetByID(ctx, id.String())
	assert.NoError(t, err)
	assert.Equal(t, "LN-000007", resp.LoanNumber)
	assert.Len(t, resp.Repayments, 1)

	missing := uuid.New().String()
	deps.repo.EXPECT().FindByID(ctx, missing).Return(nil, gorm.ErrRecordNotFound)
	_, err = deps.service.GetByID(ctx, missing)
	assert.ErrorIs(t, err, loanerrors.ErrLoanNotFound)

	_, err = deps.service.GetByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, loanerrors.ErrLoanNotFound)
}

func TestLoanService_ListByEmployee(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)

	employeeID := uuid.New().String()
	deps.repo.EXPECT().ListByEmployee(ctx, employeeID).Return([]loan.EmployeeLoan{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	resp, err := deps.service.ListByEmployee(ctx, employeeID)
	assert.NoError(t, err)
	assert.Len(t, resp, 2)

	_, err = deps.service.ListByEmployee(ctx, "bad")
	assert.ErrorIs(t, err, loanerrors.ErrInvalidEmployeeID)
}

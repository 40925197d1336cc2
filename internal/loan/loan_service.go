package loan

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"cadebeck-hr/internal/audit"
	"cadebeck-hr/internal/employee"
	loanerrors "cadebeck-hr/internal/loan/errors"
	"cadebeck-hr/internal/shared/contextutil"
	"cadebeck-hr/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	loanNumberCounter = "loan_number"
	maxInstallments   = 120
)

type Service interface {
	Create(ctx context.Context, actorID string, req CreateLoanRequest) (LoanResponse, error)
	GetByID(ctx context.Context, id string) (LoanResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]LoanResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees employee.Repository
	counter   counter.Repository
	auditLog  audit.Logger
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees employee.Repository,
	counter counter.Repository,
	auditLog audit.Logger,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("loan.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("loan.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		counter:   counter,
		auditLog:  auditLog,
		logger:    l,
	}
}

func (s *service) Create(ctx context.Context, actorID string, req CreateLoanRequest) (LoanResponse, error) {
	employeeID, startDate, err := validateCreateRequest(req)
	if err != nil {
		return LoanResponse{}, err
	}

	if _, err := s.employees.FindByID(ctx, employeeID.String()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoanResponse{}, loanerrors.ErrEmployeeNotFound
		}
		return LoanResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LoanResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	loanNumber, err := s.counter.WithTx(tx).NextNumber(ctx, loanNumberCounter, "LN", 6)
	if err != nil {
		return LoanResponse{}, err
	}

	total, monthly := Terms(req.Principal, req.InterestRate, req.Installments)
	loan := &EmployeeLoan{
		ID:                 uuid.New(),
		LoanNumber:         loanNumber,
		EmployeeID:         employeeID,
		Purpose:            req.Purpose,
		Principal:          req.Principal.Round(2),
		InterestRate:       req.InterestRate,
		Installments:       req.Installments,
		TotalAmount:        total,
		MonthlyInstallment: monthly,
		RemainingBalance:   total,
		Status:             StatusActive,
		StartDate:          startDate,
	}
	if actor, err := uuid.Parse(actorID); err == nil {
		loan.CreatedBy = &actor
	}

	if err := qtx.Create(ctx, loan); err != nil {
		return LoanResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return LoanResponse{}, err
	}

	s.logger.Info("loan created",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("loan_id", loan.ID.String()),
		zap.String("loan_number", loan.LoanNumber),
		zap.String("employee_id", loan.EmployeeID.String()),
	)
	if s.auditLog != nil {
		if err := s.auditLog.Log(ctx, audit.Entry{
			ActorID:    actorID,
			Action:     audit.ActionLoanCreated,
			TargetType: "loan",
			TargetID:   loan.ID.String(),
			Details: map[string]any{
				"loan_number":  loan.LoanNumber,
				"total_amount": loan.TotalAmount.StringFixed(2),
			},
		}); err != nil {
			s.logger.Warn("write loan audit failed", zap.Error(err))
		}
	}

	return mapToResponse(*loan), nil
}

func (s *service) GetByID(ctx context.Context, id string) (LoanResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LoanResponse{}, loanerrors.ErrLoanNotFound
	}

	loan, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoanResponse{}, loanerrors.ErrLoanNotFound
		}
		return LoanResponse{}, err
	}

	return mapToResponse(*loan), nil
}

func (s *service) ListByEmployee(ctx context.Context, employeeID string) ([]LoanResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, loanerrors.ErrInvalidEmployeeID
	}

	loans, err := s.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	resp := make([]LoanResponse, 0, len(loans))
	for _, l := range loans {
		resp = append(resp, mapToResponse(l))
	}
	return resp, nil
}

func validateCreateRequest(req CreateLoanRequest) (uuid.UUID, time.Time, error) {
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return uuid.Nil, time.Time{}, loanerrors.ErrInvalidEmployeeID
	}
	if !req.Principal.IsPositive() {
		return uuid.Nil, time.Time{}, loanerrors.ErrInvalidPrincipal
	}
	if req.InterestRate.IsNegative() || req.InterestRate.GreaterThan(decimal.NewFromInt(100)) {
		return uuid.Nil, time.Time{}, loanerrors.ErrInvalidInterestRate
	}
	if req.Installments < 1 || req.Installments > maxInstallments {
		return uuid.Nil, time.Time{}, loanerrors.ErrInvalidInstallments
	}
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return uuid.Nil, time.Time{}, loanerrors.ErrInvalidDateFormat
	}
	return employeeID, startDate, nil
}

func mapToResponse(l EmployeeLoan) LoanResponse {
	resp := LoanResponse{
		ID:                 l.ID.String(),
		LoanNumber:         l.LoanNumber,
		EmployeeID:         l.EmployeeID.String(),
		Purpose:            l.Purpose,
		Principal:          l.Principal,
		InterestRate:       l.InterestRate,
		Installments:       l.Installments,
		TotalAmount:        l.TotalAmount,
		MonthlyInstallment: l.MonthlyInstallment,
		RemainingBalance:   l.RemainingBalance,
		PaidInstallments:   l.PaidInstallments,
		Status:             l.Status,
		StartDate:          l.StartDate.Format("2006-01-02"),
	}
	if l.CompletedAt != nil {
		v := l.CompletedAt.Format("2006-01-02")
		resp.CompletedAt = &v
	}
	for _, r := range l.Repayments {
		rr := RepaymentResponse{
			ID:               r.ID.String(),
			Amount:           r.Amount,
			PrincipalPortion: r.PrincipalPortion,
			InterestPortion:  r.InterestPortion,
			BalanceBefore:    r.BalanceBefore,
			BalanceAfter:     r.BalanceAfter,
			RepaymentDate:    r.RepaymentDate.Format("2006-01-02"),
		}
		if r.PayrollID != nil {
			v := r.PayrollID.String()
			rr.PayrollID = &v
		}
		resp.Repayments = append(resp.Repayments, rr)
	}
	return resp
}

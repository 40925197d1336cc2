package payroll

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"cadebeck-hr/internal/audit"
	"cadebeck-hr/internal/employee"
	"cadebeck-hr/internal/events"
	"cadebeck-hr/internal/loan"
	"cadebeck-hr/internal/messaging/kafka"
	payrollerrors "cadebeck-hr/internal/payroll/errors"
	"cadebeck-hr/internal/shared/apperror"
	"cadebeck-hr/internal/shared/contextutil"
	"cadebeck-hr/internal/shared/jsonb"
	"cadebeck-hr/internal/tax"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	ProcessPayroll(ctx context.Context, actorID string, req ProcessPayrollRequest) (ProcessPayrollResult, error)
	ProcessEmployeePayroll(ctx context.Context, actorID string, req ProcessEmployeePayrollRequest) (PayrollResponse, error)
	GetAll(ctx context.Context, filter GetPayrollsFilterRequest) ([]PayrollResponse, error)
	GetByID(ctx context.Context, id string) (PayrollDetailResponse, error)
	GetPeriodSummary(ctx context.Context, period string) (PeriodSummaryResponse, error)
	Approve(ctx context.Context, actorID, id string) (PayrollResponse, error)
	MarkAsPaid(ctx context.Context, actorID, id string) (PayrollResponse, error)
	BulkApprove(ctx context.Context, actorID string, ids []string) (BulkActionResult, error)
	BulkMarkAsPaid(ctx context.Context, actorID string, ids []string) (BulkActionResult, error)
	CreateLineItem(ctx context.Context, actorID string, req CreateLineItemRequest) (LineItemResponse, error)
	ListLineItems(ctx context.Context, kind LineItemKind, employeeID string) ([]LineItemResponse, error)
	DeactivateLineItem(ctx context.Context, kind LineItemKind, id string) (LineItemResponse, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	employees  employee.Repository
	loans      loan.Repository
	calculator tax.Calculator
	outboxRepo kafka.OutboxRepository
	auditLog   audit.Logger
	logger     *zap.Logger
	now        func() time.Time
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees employee.Repository,
	loans loan.Repository,
	calculator tax.Calculator,
	outboxRepo kafka.OutboxRepository,
	auditLog audit.Logger,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		employees:  employees,
		loans:      loans,
		calculator: calculator,
		outboxRepo: outboxRepo,
		auditLog:   auditLog,
		logger:     l,
		now:        time.Now,
	}
}

// txRepos groups the repositories bound to one transaction.
type txRepos struct {
	payrolls Repository
	loans    loan.Repository
}

func (s *service) bind(tx *sql.Tx) txRepos {
	return txRepos{
		payrolls: s.repo.WithTx(tx),
		loans:    s.loans.WithTx(tx),
	}
}

// ProcessPayroll runs the whole period in one transaction. Each employee is
// wrapped in a savepoint: a failure rolls back that employee only and the
// batch still commits.
func (s *service) ProcessPayroll(ctx context.Context, actorID string, req ProcessPayrollRequest) (ProcessPayrollResult, error) {
	period, payDate, err := parsePeriodAndPayDate(req.Period, req.PayDate)
	if err != nil {
		return ProcessPayrollResult{}, err
	}
	actor, err := parseOptionalActor(actorID)
	if err != nil {
		return ProcessPayrollResult{}, err
	}

	employees, err := s.employees.FindActive(ctx)
	if err != nil {
		return ProcessPayrollResult{}, err
	}

	result := ProcessPayrollResult{
		Period:         period.String(),
		TotalEmployees: len(employees),
		Processed:      make([]PayrollResponse, 0, len(employees)),
		Errors:         make([]ItemError, 0),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ProcessPayrollResult{}, err
	}
	defer tx.Rollback()

	q := s.bind(tx)
	if err := q.payrolls.LockPeriod(ctx, period.String()); err != nil {
		return ProcessPayrollResult{}, err
	}

	for i := range employees {
		emp := employees[i]
		savepoint := fmt.Sprintf("payroll_emp_%d", i)
		if err := q.payrolls.SavePoint(ctx, savepoint); err != nil {
			return ProcessPayrollResult{}, err
		}

		p, warnings, err := s.processEmployee(ctx, q, emp, period, payDate, actor)
		if err != nil {
			if rbErr := q.payrolls.RollbackTo(ctx, savepoint); rbErr != nil {
				return ProcessPayrollResult{}, rbErr
			}
			s.logger.Warn("employee payroll failed",
				zap.String("request_id", contextutil.GetRequestID(ctx)),
				zap.String("employee_id", emp.ID.String()),
				zap.String("period", period.String()),
				zap.Error(err),
			)
			result.Errors = append(result.Errors, ItemError{
				ID:          emp.ID.String(),
				StaffNumber: emp.StaffNumber,
				Code:        apperror.CodeOf(err),
				Message:     apperror.MessageOf(err),
			})
			continue
		}

		p.Employee = &emp
		result.Processed = append(result.Processed, mapToResponse(*p))
		result.Warnings = append(result.Warnings, warnings...)
	}

	if err := tx.Commit(); err != nil {
		return ProcessPayrollResult{}, err
	}

	result.ProcessedCount = len(result.Processed)
	result.FailedCount = len(result.Errors)

	s.logger.Info("payroll batch processed",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("period", result.Period),
		zap.Int("total", result.TotalEmployees),
		zap.Int("processed", result.ProcessedCount),
		zap.Int("failed", result.FailedCount),
	)
	s.audit(ctx, audit.Entry{
		ActorID:    actorID,
		Action:     audit.ActionPayrollProcessed,
		TargetType: "payroll_period",
		TargetID:   result.Period,
		Details: map[string]any{
			"total_employees": result.TotalEmployees,
			"processed":       result.ProcessedCount,
			"failed":          result.FailedCount,
		},
	})

	return result, nil
}

func (s *service) ProcessEmployeePayroll(ctx context.Context, actorID string, req ProcessEmployeePayrollRequest) (PayrollResponse, error) {
	period, payDate, err := parsePeriodAndPayDate(req.Period, req.PayDate)
	if err != nil {
		return PayrollResponse{}, err
	}
	actor, err := parseOptionalActor(actorID)
	if err != nil {
		return PayrollResponse{}, err
	}
	if _, err := uuid.Parse(req.EmployeeID); err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidEmployeeID
	}

	emp, err := s.employees.FindByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayrollResponse{}, payrollerrors.ErrEmployeeNotFound
		}
		return PayrollResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	q := s.bind(tx)
	if err := q.payrolls.LockPeriod(ctx, period.String()); err != nil {
		return PayrollResponse{}, err
	}

	p, warnings, err := s.processEmployee(ctx, q, *emp, period, payDate, actor)
	if err != nil {
		return PayrollResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("employee payroll processed",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("payroll_id", p.ID.String()),
		zap.String("employee_id", emp.ID.String()),
		zap.String("period", period.String()),
		zap.Strings("warnings", warnings),
	)
	s.audit(ctx, audit.Entry{
		ActorID:    actorID,
		Action:     audit.ActionPayrollProcessed,
		TargetType: "payroll",
		TargetID:   p.ID.String(),
		Details: map[string]any{
			"period":  period.String(),
			"net_pay": p.NetPay.StringFixed(2),
		},
	})

	p.Employee = emp
	return mapToResponse(*p), nil
}

// processEmployee computes and stores one draft payroll, claims the line
// items it used and amortizes active loans. It returns warnings for loan
// installments whose principal portion went negative.
func (s *service) processEmployee(
	ctx context.Context,
	q txRepos,
	emp employee.Employee,
	period Period,
	payDate time.Time,
	actor *uuid.UUID,
) (*Payroll, []string, error) {
	exists, err := q.payrolls.ExistsForPeriod(ctx, emp.ID.String(), period.String())
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return nil, nil, payrollerrors.ErrDuplicateProcessing
	}

	allowances, err := s.eligibleItems(ctx, q.payrolls, KindAllowance, emp.ID, period)
	if err != nil {
		return nil, nil, err
	}
	deductions, err := s.eligibleItems(ctx, q.payrolls, KindDeduction, emp.ID, period)
	if err != nil {
		return nil, nil, err
	}

	allowanceDetail, allowanceTotal := SumByCategory(allowances)
	deductionDetail, deductionTotal := SumByCategory(deductions)
	breakdown := s.calculator.CalculateAll(emp.BasicSalary, allowanceTotal, deductionTotal, 0)

	p := &Payroll{
		ID:               uuid.New(),
		EmployeeID:       emp.ID,
		PayrollPeriod:    period.String(),
		PeriodStart:      period.Start(),
		PeriodEnd:        period.End(),
		PayDate:          payDate,
		AllowancesDetail: jsonb.Of(allowanceDetail),
		DeductionsDetail: jsonb.Of(deductionDetail),
		Status:           StatusDraft,
		ProcessedBy:      actor,
	}
	p.ApplyBreakdown(breakdown)

	if err := q.payrolls.Create(ctx, p); err != nil {
		return nil, nil, mapRepositoryError(err)
	}
	if err := q.payrolls.AttachItems(ctx, KindAllowance, itemIDs(allowances), p.ID); err != nil {
		return nil, nil, err
	}
	if err := q.payrolls.AttachItems(ctx, KindDeduction, itemIDs(deductions), p.ID); err != nil {
		return nil, nil, err
	}

	repayments, err := loan.ApplyRepayments(ctx, q.loans, emp.ID, p.ID, payDate)
	if err != nil {
		return nil, nil, err
	}

	var warnings []string
	for _, r := range repayments {
		if r.NegativePrincipal {
			msg := fmt.Sprintf("loan %s: interest %s exceeds installment %s",
				r.LoanNumber, r.Repayment.InterestPortion.StringFixed(2), r.Repayment.Amount.StringFixed(2))
			s.logger.Warn("negative principal portion",
				zap.String("employee_id", emp.ID.String()),
				zap.String("loan_number", r.LoanNumber),
				zap.String("principal_portion", r.Repayment.PrincipalPortion.StringFixed(2)),
			)
			warnings = append(warnings, msg)
		}
	}

	return p, warnings, nil
}

func (s *service) eligibleItems(ctx context.Context, repo Repository, kind LineItemKind, employeeID uuid.UUID, period Period) ([]LineItem, error) {
	candidates, err := repo.ListCandidateItems(ctx, kind, employeeID.String(), period.Start(), period.End())
	if err != nil {
		return nil, err
	}
	return FilterEligible(candidates, period), nil
}

func (s *service) GetAll(ctx context.Context, filter GetPayrollsFilterRequest) ([]PayrollResponse, error) {
	query := PayrollQueryFilter{
		Status:     filter.Status,
		EmployeeID: filter.EmployeeID,
	}
	if filter.Period != "" {
		period, err := ParsePeriod(filter.Period)
		if err != nil {
			return nil, err
		}
		query.Period = period.String()
	}
	if query.Status != "" && !isValidStatus(query.Status) {
		return nil, payrollerrors.ErrInvalidStatusFilter
	}
	if query.EmployeeID != "" {
		if _, err := uuid.Parse(query.EmployeeID); err != nil {
			return nil, payrollerrors.ErrInvalidEmployeeID
		}
	}

	payrolls, err := s.repo.FindAll(ctx, query)
	if err != nil {
		return nil, err
	}

	resp := make([]PayrollResponse, 0, len(payrolls))
	for _, p := range payrolls {
		resp = append(resp, mapToResponse(p))
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayrollDetailResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PayrollDetailResponse{}, payrollerrors.ErrInvalidPayrollID
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PayrollDetailResponse{}, mapRepositoryError(err)
	}

	allowances, err := s.repo.ListItemsByPayroll(ctx, KindAllowance, id)
	if err != nil {
		return PayrollDetailResponse{}, err
	}
	deductions, err := s.repo.ListItemsByPayroll(ctx, KindDeduction, id)
	if err != nil {
		return PayrollDetailResponse{}, err
	}
	repayments, err := s.loans.ListRepaymentsByPayroll(ctx, id)
	if err != nil {
		return PayrollDetailResponse{}, err
	}

	detail := PayrollDetailResponse{
		PayrollResponse: mapToResponse(*p),
		AllowanceItems:  mapItems(KindAllowance, allowances),
		DeductionItems:  mapItems(KindDeduction, deductions),
		LoanRepayments:  make([]LoanRepaymentResponse, 0, len(repayments)),
	}
	for _, r := range repayments {
		detail.LoanRepayments = append(detail.LoanRepayments, LoanRepaymentResponse{
			LoanID:           r.LoanID.String(),
			Amount:           r.Amount,
			PrincipalPortion: r.PrincipalPortion,
			InterestPortion:  r.InterestPortion,
			BalanceAfter:     r.BalanceAfter,
		})
	}
	return detail, nil
}

func (s *service) GetPeriodSummary(ctx context.Context, period string) (PeriodSummaryResponse, error) {
	p, err := ParsePeriod(period)
	if err != nil {
		return PeriodSummaryResponse{}, err
	}

	totals, err := s.repo.SummarizePeriod(ctx, p.String())
	if err != nil {
		return PeriodSummaryResponse{}, err
	}

	resp := PeriodSummaryResponse{
		Period:        p.String(),
		TotalGrossPay: decimal.Zero,
		TotalNetPay:   decimal.Zero,
		ByStatus:      totals,
	}
	for _, t := range totals {
		resp.TotalPayrolls += t.Count
		resp.TotalGrossPay = resp.TotalGrossPay.Add(t.GrossPay)
		resp.TotalNetPay = resp.TotalNetPay.Add(t.NetPay)
	}
	return resp, nil
}

func (s *service) Approve(ctx context.Context, actorID, id string) (PayrollResponse, error) {
	return s.transition(ctx, actorID, id, StatusProcessed)
}

// MarkAsPaid also queues payslip generation through the outbox in the same
// transaction.
func (s *service) MarkAsPaid(ctx context.Context, actorID, id string) (PayrollResponse, error) {
	return s.transition(ctx, actorID, id, StatusPaid)
}

func (s *service) transition(ctx context.Context, actorID, id, to string) (PayrollResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return PayrollResponse{}, payrollerrors.ErrInvalidPayrollID
	}
	actor, err := parseOptionalActor(actorID)
	if err != nil {
		return PayrollResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayrollResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	p, err := qtx.FindByID(ctx, id)
	if err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}
	if !p.CanTransition(to) {
		return PayrollResponse{}, payrollerrors.ErrInvalidStatusTransition
	}

	now := s.now().UTC()
	action := audit.ActionPayrollApproved
	p.Status = to
	switch to {
	case StatusProcessed:
		p.ApprovedBy = actor
		p.ApprovedAt = &now
	case StatusPaid:
		action = audit.ActionPayrollPaid
		p.PaidBy = actor
		p.PaidAt = &now
	}

	if err := qtx.Update(ctx, p); err != nil {
		return PayrollResponse{}, mapRepositoryError(err)
	}

	if to == StatusPaid {
		if err := s.enqueuePayslip(ctx, tx, p, actorID, now); err != nil {
			return PayrollResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return PayrollResponse{}, err
	}

	s.logger.Info("payroll status changed",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("payroll_id", p.ID.String()),
		zap.String("status", to),
	)
	s.audit(ctx, audit.Entry{
		ActorID:    actorID,
		Action:     action,
		TargetType: "payroll",
		TargetID:   p.ID.String(),
		Details:    map[string]any{"period": p.PayrollPeriod, "status": to},
	})

	return mapToResponse(*p), nil
}

func (s *service) enqueuePayslip(ctx context.Context, tx *sql.Tx, p *Payroll, actorID string, at time.Time) error {
	if s.outboxRepo == nil {
		return nil
	}
	event, err := kafka.NewOutboxEvent(
		contextutil.GetRequestID(ctx),
		"payroll",
		p.ID.String(),
		events.EventTypePayrollPaid,
		events.PayrollPayslipRequestedTopic,
		events.PayrollPayslipRequestedEvent{
			EventType:   events.EventTypePayrollPaid,
			PayrollID:   p.ID.String(),
			Period:      p.PayrollPeriod,
			RequestedBy: actorID,
			OccurredAt:  at,
		},
	)
	if err != nil {
		return err
	}
	return s.outboxRepo.WithTx(tx).Create(ctx, event)
}

func (s *service) BulkApprove(ctx context.Context, actorID string, ids []string) (BulkActionResult, error) {
	return s.bulk(ctx, actorID, ids, s.Approve)
}

func (s *service) BulkMarkAsPaid(ctx context.Context, actorID string, ids []string) (BulkActionResult, error) {
	return s.bulk(ctx, actorID, ids, s.MarkAsPaid)
}

// bulk runs each item in its own transaction; one failure never stops the rest.
func (s *service) bulk(
	ctx context.Context,
	actorID string,
	ids []string,
	apply func(ctx context.Context, actorID, id string) (PayrollResponse, error),
) (BulkActionResult, error) {
	if len(ids) == 0 {
		return BulkActionResult{}, payrollerrors.ErrEmptyBatch
	}

	result := BulkActionResult{
		Requested: len(ids),
		Succeeded: make([]PayrollResponse, 0, len(ids)),
		Errors:    make([]ItemError, 0),
	}
	for _, id := range ids {
		resp, err := apply(ctx, actorID, id)
		if err != nil {
			result.Errors = append(result.Errors, ItemError{
				ID:      id,
				Code:    apperror.CodeOf(err),
				Message: apperror.MessageOf(err),
			})
			continue
		}
		result.Succeeded = append(result.Succeeded, resp)
	}
	result.SuccessCount = len(result.Succeeded)
	result.FailedCount = len(result.Errors)
	return result, nil
}

func (s *service) CreateLineItem(ctx context.Context, actorID string, req CreateLineItemRequest) (LineItemResponse, error) {
	if !req.Kind.Valid() {
		return LineItemResponse{}, payrollerrors.ErrInvalidItemKind
	}
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return LineItemResponse{}, payrollerrors.ErrInvalidEmployeeID
	}
	if !req.Amount.IsPositive() {
		return LineItemResponse{}, payrollerrors.ErrInvalidMoneyValue
	}
	effective, err := time.Parse(dateLayout, req.EffectiveDate)
	if err != nil {
		return LineItemResponse{}, payrollerrors.ErrInvalidDateFormat
	}
	var endDate *time.Time
	if req.EndDate != nil && *req.EndDate != "" {
		end, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			return LineItemResponse{}, payrollerrors.ErrInvalidDateFormat
		}
		if end.Before(effective) {
			return LineItemResponse{}, payrollerrors.ErrInvalidDateRange
		}
		endDate = &end
	}
	actor, err := parseOptionalActor(actorID)
	if err != nil {
		return LineItemResponse{}, err
	}

	if _, err := s.employees.FindByID(ctx, employeeID.String()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LineItemResponse{}, payrollerrors.ErrEmployeeNotFound
		}
		return LineItemResponse{}, err
	}

	item := &LineItem{
		ID:            uuid.New(),
		EmployeeID:    employeeID,
		Category:      req.Category,
		Description:   req.Description,
		Amount:        req.Amount.Round(2),
		IsRecurring:   req.IsRecurring,
		EffectiveDate: effective,
		EndDate:       endDate,
		Status:        ItemStatusActive,
		CreatedBy:     actor,
	}
	if err := s.repo.CreateItem(ctx, req.Kind, item); err != nil {
		return LineItemResponse{}, err
	}

	return mapItem(req.Kind, *item), nil
}

func (s *service) ListLineItems(ctx context.Context, kind LineItemKind, employeeID string) ([]LineItemResponse, error) {
	if !kind.Valid() {
		return nil, payrollerrors.ErrInvalidItemKind
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, payrollerrors.ErrInvalidEmployeeID
	}

	items, err := s.repo.ListItemsByEmployee(ctx, kind, employeeID)
	if err != nil {
		return nil, err
	}
	return mapItems(kind, items), nil
}

func (s *service) DeactivateLineItem(ctx context.Context, kind LineItemKind, id string) (LineItemResponse, error) {
	if !kind.Valid() {
		return LineItemResponse{}, payrollerrors.ErrInvalidItemKind
	}
	if _, err := uuid.Parse(id); err != nil {
		return LineItemResponse{}, payrollerrors.ErrLineItemNotFound
	}

	item, err := s.repo.FindItem(ctx, kind, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LineItemResponse{}, payrollerrors.ErrLineItemNotFound
		}
		return LineItemResponse{}, err
	}

	if item.Status != ItemStatusInactive {
		if err := s.repo.UpdateItemStatus(ctx, kind, id, ItemStatusInactive); err != nil {
			return LineItemResponse{}, err
		}
		item.Status = ItemStatusInactive
	}
	return mapItem(kind, *item), nil
}

func (s *service) audit(ctx context.Context, entry audit.Entry) {
	if s.auditLog == nil {
		return
	}
	if err := s.auditLog.Log(ctx, entry); err != nil {
		s.logger.Warn("write audit failed", zap.String("action", entry.Action), zap.Error(err))
	}
}

func parsePeriodAndPayDate(rawPeriod, rawPayDate string) (Period, time.Time, error) {
	period, err := ParsePeriod(rawPeriod)
	if err != nil {
		return Period{}, time.Time{}, err
	}
	if rawPayDate == "" {
		return period, period.End(), nil
	}
	payDate, err := time.Parse(dateLayout, rawPayDate)
	if err != nil {
		return Period{}, time.Time{}, payrollerrors.ErrInvalidDateFormat
	}
	return period, payDate, nil
}

func parseOptionalActor(actorID string) (*uuid.UUID, error) {
	if actorID == "" {
		return nil, nil
	}
	id, err := uuid.Parse(actorID)
	if err != nil {
		return nil, payrollerrors.ErrInvalidActorID
	}
	return &id, nil
}

func isValidStatus(status string) bool {
	switch status {
	case StatusDraft, StatusProcessed, StatusPaid:
		return true
	default:
		return false
	}
}

func itemIDs(items []LineItem) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

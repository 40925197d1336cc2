package payslip

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"cadebeck-hr/internal/audit"
	"cadebeck-hr/internal/events"
	"cadebeck-hr/internal/loan"
	"cadebeck-hr/internal/messaging/kafka"
	"cadebeck-hr/internal/payroll"
	paysliperrors "cadebeck-hr/internal/payslip/errors"
	"cadebeck-hr/internal/shared/apperror"
	"cadebeck-hr/internal/shared/config"
	"cadebeck-hr/internal/shared/contextutil"
	"cadebeck-hr/internal/shared/mailer"
	"cadebeck-hr/internal/shared/storage"
	"cadebeck-hr/internal/tax"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const pdfContentType = "application/pdf"

//go:generate mockgen -source=payslip_service.go -destination=mock/payslip_service_mock.go -package=mock
type Service interface {
	GeneratePayslip(ctx context.Context, actorID, payrollID string) (PayslipResponse, error)
	RegeneratePayslip(ctx context.Context, actorID, id string) (PayslipResponse, error)
	GetOrRegenerate(ctx context.Context, id string) (File, error)
	Download(ctx context.Context, actorID, id string) (File, error)
	DownloadOwn(ctx context.Context, employeeID, id string) (File, error)
	MarkViewed(ctx context.Context, employeeID, id string) (PayslipResponse, error)
	GetByID(ctx context.Context, id string) (PayslipResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]PayslipResponse, error)
	SendPayslipEmail(ctx context.Context, actorID, id string) (EmailResult, error)
	BulkSendPayslipEmails(ctx context.Context, actorID string, ids []string) (BulkEmailResult, error)
	RequestBulkEmail(ctx context.Context, actorID string, ids []string) (BulkEmailQueued, error)
}

// Deps lists the collaborators of the payslip service. OutboxRepo, AuditLog
// and Cleanup are optional.
type Deps struct {
	DB         *sql.DB
	Repo       Repository
	Payrolls   payroll.Repository
	Loans      loan.Repository
	Calculator tax.Calculator
	Storage    storage.FileStorage
	Renderer   Renderer
	Mailer     mailer.Mailer
	Cleanup    CleanupScheduler
	OutboxRepo kafka.OutboxRepository
	AuditLog   audit.Logger
	Company    config.CompanyConfig
	Config     config.PayslipConfig
}

type service struct {
	Deps
	logger *zap.Logger
	group  singleflight.Group
	now    func() time.Time
}

func NewService(deps Deps, logger ...*zap.Logger) Service {
	l := zap.L().Named("payslip.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payslip.service")
	}
	return &service{
		Deps:   deps,
		logger: l,
		now:    time.Now,
	}
}

func (s *service) GeneratePayslip(ctx context.Context, actorID, payrollID string) (PayslipResponse, error) {
	if _, err := uuid.Parse(payrollID); err != nil {
		return PayslipResponse{}, paysliperrors.ErrInvalidPayrollID
	}
	ps, err := s.generate(ctx, actorID, payrollID)
	if err != nil {
		return PayslipResponse{}, err
	}
	return mapToResponse(*ps), nil
}

func (s *service) RegeneratePayslip(ctx context.Context, actorID, id string) (PayslipResponse, error) {
	existing, err := s.findPayslip(ctx, id)
	if err != nil {
		return PayslipResponse{}, err
	}
	ps, err := s.generate(ctx, actorID, existing.PayrollID.String())
	if err != nil {
		return PayslipResponse{}, err
	}
	return mapToResponse(*ps), nil
}

// generate renders and stores the document of one payroll and upserts its
// payslip row. The payroll row stays locked for the whole render so two
// generations of the same payroll serialize. An existing payslip keeps its
// number.
func (s *service) generate(ctx context.Context, actorID, payrollID string) (*Payslip, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	payrolls := s.Payrolls.WithTx(tx)
	repo := s.Repo.WithTx(tx)

	p, err := payrolls.FindByID(ctx, payrollID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, paysliperrors.ErrPayrollNotFound
		}
		return nil, err
	}
	if p.Employee == nil {
		return nil, paysliperrors.ErrPayrollNotFound
	}

	if needsRecompute(*p) {
		p.ApplyBreakdown(s.Calculator.CalculateAll(p.BasicSalary, p.TotalAllowances, p.TotalOtherDeductions, 0))
		persisted := p.Status != payroll.StatusPaid
		if persisted {
			if err := payrolls.Update(ctx, p); err != nil {
				return nil, err
			}
		}
		s.logger.Info("statutory fields recomputed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("payroll_id", p.ID.String()),
			zap.String("status", p.Status),
			zap.Bool("persisted", persisted),
		)
	}

	period, err := payroll.ParsePeriod(p.PayrollPeriod)
	if err != nil {
		return nil, err
	}

	repayments, err := s.Loans.WithTx(tx).ListRepaymentsByPayroll(ctx, p.ID.String())
	if err != nil {
		return nil, err
	}

	existing, err := repo.FindByPayrollID(ctx, p.ID.String())
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	staff := p.Employee.StaffNumber
	var number string
	if existing != nil {
		number = existing.PayslipNumber
	} else {
		number, err = uniqueNumber(ctx, repo, staff, period)
		if err != nil {
			return nil, err
		}
	}

	now := s.now().UTC()
	doc := BuildDocument(number, now, s.Company, *p, repayments)
	data, err := renderWithTimeout(ctx, s.Renderer, doc, s.Config.RenderTimeout)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf("payslips/temp/%s_%s_%d.pdf", staff, strings.ReplaceAll(period.String(), "/", "-"), now.Unix())
	stored, err := s.Storage.Upload(ctx, bytes.NewReader(data), path, pdfContentType)
	if err != nil {
		return nil, err
	}
	s.scheduleCleanup(ctx, stored)

	ps := &Payslip{
		ID:            uuid.New(),
		PayrollID:     p.ID,
		EmployeeID:    p.EmployeeID,
		PayslipNumber: number,
		Period:        p.PayrollPeriod,
		FilePath:      stored,
		FileName:      fmt.Sprintf("payslip_%s_%s.pdf", staff, period.Compact()),
		GeneratedAt:   now,
		EmailStatus:   EmailStatusPending,
	}
	if existing != nil {
		ps.ID = existing.ID
	}
	if err := repo.Upsert(ctx, ps); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	action := audit.ActionPayslipGenerated
	if existing != nil {
		action = audit.ActionPayslipRegenerated
		ps.EmailStatus = existing.EmailStatus
		ps.EmailError = existing.EmailError
		ps.EmailedAt = existing.EmailedAt
		ps.ViewedAt = existing.ViewedAt
		ps.DownloadedAt = existing.DownloadedAt
		ps.DownloadCount = existing.DownloadCount
	}
	s.logger.Info("payslip generated",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("payroll_id", p.ID.String()),
		zap.String("payslip_number", number),
		zap.String("path", stored),
	)
	s.audit(ctx, audit.Entry{
		ActorID:    actorID,
		Action:     action,
		TargetType: "payslip",
		TargetID:   ps.ID.String(),
		Details:    map[string]any{"payroll_id": p.ID.String(), "payslip_number": number},
	})
	return ps, nil
}

// needsRecompute reports a payroll with pay but without statutory amounts.
// needsRecompute is true for rows the calculator never touched. Paid rows
// are recomputed for the document only.
func needsRecompute(p payroll.Payroll) bool {
	if p.HasStatutoryFields() {
		return false
	}
	return p.BasicSalary.Add(p.TotalAllowances).IsPositive()
}

func (s *service) scheduleCleanup(ctx context.Context, path string) {
	if s.Cleanup == nil || s.Config.Retention <= 0 {
		return
	}
	if err := s.Cleanup.Schedule(ctx, path, s.Config.Retention); err != nil {
		s.logger.Warn("schedule payslip cleanup failed", zap.String("path", path), zap.Error(err))
	}
}

// GetOrRegenerate returns the stored file and regenerates it when the file
// is gone. Concurrent calls for one payslip share a single regeneration.
func (s *service) GetOrRegenerate(ctx context.Context, id string) (File, error) {
	v, err, _ := s.group.Do(id, func() (any, error) {
		return s.getOrRegenerate(ctx, id)
	})
	if err != nil {
		return File{}, err
	}
	return v.(File), nil
}

func (s *service) getOrRegenerate(ctx context.Context, id string) (File, error) {
	ps, err := s.findPayslip(ctx, id)
	if err != nil {
		return File{}, err
	}

	data, err := s.read(ctx, ps.FilePath)
	if err == nil {
		return File{Name: ps.FileName, ContentType: pdfContentType, Data: data}, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return File{}, err
	}

	s.logger.Info("payslip file missing, regenerating",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("payslip_id", id),
		zap.String("path", ps.FilePath),
	)
	regenerated, err := s.generate(ctx, "", ps.PayrollID.String())
	if err != nil {
		return File{}, err
	}

	data, err = s.read(ctx, regenerated.FilePath)
	if err != nil {
		return File{}, err
	}
	return File{Name: regenerated.FileName, ContentType: pdfContentType, Data: data}, nil
}

func (s *service) read(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, storage.ErrNotFound
	}
	rc, err := s.Storage.Download(ctx, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func (s *service) Download(ctx context.Context, actorID, id string) (File, error) {
	file, err := s.GetOrRegenerate(ctx, id)
	if err != nil {
		return File{}, err
	}

	if err := s.Repo.RecordDownload(ctx, id, s.now().UTC()); err != nil {
		s.logger.Warn("record payslip download failed", zap.String("payslip_id", id), zap.Error(err))
	}
	s.audit(ctx, audit.Entry{
		ActorID:    actorID,
		Action:     audit.ActionPayslipDownloaded,
		TargetType: "payslip",
		TargetID:   id,
	})
	return file, nil
}

// DownloadOwn serves an employee their own payslip. Payslips of other
// employees look missing.
func (s *service) DownloadOwn(ctx context.Context, employeeID, id string) (File, error) {
	if _, err := s.findOwned(ctx, employeeID, id); err != nil {
		return File{}, err
	}
	return s.Download(ctx, employeeID, id)
}

func (s *service) MarkViewed(ctx context.Context, employeeID, id string) (PayslipResponse, error) {
	ps, err := s.findOwned(ctx, employeeID, id)
	if err != nil {
		return PayslipResponse{}, err
	}

	now := s.now().UTC()
	if err := s.Repo.MarkViewed(ctx, id, now); err != nil {
		return PayslipResponse{}, err
	}
	if ps.ViewedAt == nil {
		ps.ViewedAt = &now
	}
	return mapToResponse(*ps), nil
}

func (s *service) GetByID(ctx context.Context, id string) (PayslipResponse, error) {
	ps, err := s.findPayslip(ctx, id)
	if err != nil {
		return PayslipResponse{}, err
	}
	return mapToResponse(*ps), nil
}

func (s *service) ListByEmployee(ctx context.Context, employeeID string) ([]PayslipResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, apperror.InvalidField("employee_id")
	}
	items, err := s.Repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapToResponses(items), nil
}

// SendPayslipEmail delivers one payslip. Missing contact and transport
// failures are recorded on the payslip and returned as a failed result. A
// document that cannot be produced is skipped and the email goes out
// without it.
func (s *service) SendPayslipEmail(ctx context.Context, actorID, id string) (EmailResult, error) {
	ps, err := s.findPayslip(ctx, id)
	if err != nil {
		return EmailResult{}, err
	}
	if ps.Payroll == nil || ps.Payroll.Employee == nil {
		return EmailResult{}, paysliperrors.ErrPayrollNotFound
	}

	to := ps.Payroll.Employee.ContactEmail()
	if to == "" {
		return s.recordFailure(ctx, actorID, ps, paysliperrors.ErrMissingContact), nil
	}

	repayments, err := s.Loans.ListRepaymentsByPayroll(ctx, ps.PayrollID.String())
	if err != nil {
		return EmailResult{}, err
	}
	doc := BuildDocument(ps.PayslipNumber, ps.GeneratedAt, s.Company, *ps.Payroll, repayments)

	var attachment []byte
	file, err := s.GetOrRegenerate(ctx, id)
	if err != nil {
		s.logger.Warn("payslip attachment unavailable, sending without it",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.String("payslip_id", id),
			zap.Error(err),
		)
	} else {
		attachment = file.Data
	}

	msg, err := buildEmail(to, doc, ps.FileName, attachment)
	if err != nil {
		return EmailResult{}, err
	}
	if err := s.Mailer.Send(ctx, msg); err != nil {
		return s.recordFailure(ctx, actorID, ps, err), nil
	}

	now := s.now().UTC()
	if err := s.Repo.UpdateEmailStatus(ctx, id, EmailStatusSent, nil, &now); err != nil {
		return EmailResult{}, err
	}
	s.audit(ctx, audit.Entry{
		ActorID:    actorID,
		Action:     audit.ActionPayslipEmailed,
		TargetType: "payslip",
		TargetID:   id,
		Details:    map[string]any{"to": to, "attached": len(attachment) > 0},
	})

	return EmailResult{
		PayslipID:  id,
		Status:     EmailStatusSent,
		Attached:   len(attachment) > 0,
		RecordedAt: now.Format(time.RFC3339),
	}, nil
}

func (s *service) recordFailure(ctx context.Context, actorID string, ps *Payslip, cause error) EmailResult {
	id := ps.ID.String()
	code := apperror.CodeOf(cause)
	if code == apperror.CodeInternalError {
		code = apperror.CodeEmailFailed
	}
	message := cause.Error()
	now := s.now().UTC()

	if err := s.Repo.UpdateEmailStatus(ctx, id, EmailStatusFailed, &message, nil); err != nil {
		s.logger.Error("record payslip email failure failed", zap.String("payslip_id", id), zap.Error(err))
	}
	s.logger.Warn("payslip email failed",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("payslip_id", id),
		zap.String("code", code),
		zap.String("reason", message),
	)
	s.audit(ctx, audit.Entry{
		ActorID:    actorID,
		Action:     audit.ActionPayslipEmailFailed,
		TargetType: "payslip",
		TargetID:   id,
		Details:    map[string]any{"code": code, "error": message},
	})

	return EmailResult{
		PayslipID:  id,
		Status:     EmailStatusFailed,
		Code:       code,
		Message:    message,
		RecordedAt: now.Format(time.RFC3339),
	}
}

func (s *service) BulkSendPayslipEmails(ctx context.Context, actorID string, ids []string) (BulkEmailResult, error) {
	if len(ids) == 0 {
		return BulkEmailResult{}, paysliperrors.ErrEmptyBatch
	}

	result := BulkEmailResult{
		Requested: len(ids),
		Sent:      []EmailResult{},
		Errors:    []ItemError{},
	}
	for _, id := range ids {
		res, err := s.SendPayslipEmail(ctx, actorID, id)
		switch {
		case err != nil:
			result.Errors = append(result.Errors, ItemError{
				PayslipID: id,
				Code:      apperror.CodeOf(err),
				Message:   apperror.MessageOf(err),
			})
		case res.Status == EmailStatusFailed:
			result.Errors = append(result.Errors, ItemError{PayslipID: id, Code: res.Code, Message: res.Message})
		default:
			result.Sent = append(result.Sent, res)
		}
	}
	result.SentCount = len(result.Sent)
	result.FailedCount = len(result.Errors)

	s.logger.Info("bulk payslip email finished",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Int("requested", result.Requested),
		zap.Int("sent", result.SentCount),
		zap.Int("failed", result.FailedCount),
	)
	return result, nil
}

// RequestBulkEmail queues one outbox event per payslip in a single
// transaction. Delivery happens in the consumer.
func (s *service) RequestBulkEmail(ctx context.Context, actorID string, ids []string) (BulkEmailQueued, error) {
	if len(ids) == 0 {
		return BulkEmailQueued{}, paysliperrors.ErrEmptyBatch
	}
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			return BulkEmailQueued{}, paysliperrors.ErrInvalidPayslipID
		}
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return BulkEmailQueued{}, err
	}
	defer tx.Rollback()

	outbox := s.OutboxRepo.WithTx(tx)
	now := s.now().UTC()
	for _, id := range ids {
		event, err := kafka.NewOutboxEvent(
			contextutil.GetRequestID(ctx),
			"payslip",
			id,
			events.EventTypePayslipEmailRequested,
			events.PayslipEmailRequestedTopic,
			events.PayslipEmailRequestedEvent{
				EventType:   events.EventTypePayslipEmailRequested,
				PayslipID:   id,
				RequestedBy: actorID,
				OccurredAt:  now,
			},
		)
		if err != nil {
			return BulkEmailQueued{}, err
		}
		if err := outbox.Create(ctx, event); err != nil {
			return BulkEmailQueued{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return BulkEmailQueued{}, err
	}
	return BulkEmailQueued{Queued: len(ids), PayslipIDs: ids}, nil
}

func (s *service) findPayslip(ctx context.Context, id string) (*Payslip, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, paysliperrors.ErrInvalidPayslipID
	}
	ps, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, paysliperrors.ErrPayslipNotFound
		}
		return nil, err
	}
	return ps, nil
}

func (s *service) findOwned(ctx context.Context, employeeID, id string) (*Payslip, error) {
	ps, err := s.findPayslip(ctx, id)
	if err != nil {
		return nil, err
	}
	if ps.EmployeeID.String() != employeeID {
		return nil, paysliperrors.ErrPayslipNotFound
	}
	return ps, nil
}

func (s *service) audit(ctx context.Context, entry audit.Entry) {
	if s.AuditLog == nil {
		return
	}
	if err := s.AuditLog.Log(ctx, entry); err != nil {
		s.logger.Warn("write audit failed", zap.String("action", entry.Action), zap.Error(err))
	}
}

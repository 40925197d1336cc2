package audit

import (
	"context"
	"time"

	"cadebeck-hr/internal/shared/contextutil"
	"cadebeck-hr/internal/shared/jsonb"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	ActionPayrollProcessed   = "payroll_processed"
	ActionPayrollApproved    = "payroll_approved"
	ActionPayrollPaid        = "payroll_paid"
	ActionPayslipGenerated   = "payslip_generated"
	ActionPayslipRegenerated = "payslip_regenerated"
	ActionPayslipEmailed     = "payslip_emailed"
	ActionPayslipEmailFailed = "payslip_email_failed"
	ActionPayslipDownloaded  = "payslip_downloaded"
	ActionLoanCreated        = "loan_created"
	ActionServerShutdown     = "server_shutdown"
)

type Entry struct {
	ActorID    string
	Action     string
	TargetType string
	TargetID   string
	Details    map[string]any
}

// Logger is an append-only audit sink.
//
//go:generate mockgen -source=audit_logger.go -destination=mock/audit_logger_mock.go -package=mock
type Logger interface {
	Log(ctx context.Context, entry Entry) error
}

type gormLogger struct {
	db     *gorm.DB
	logger *zap.Logger
	now    func() time.Time
}

// NewLogger persists entries to audit_logs. With a nil db entries only go to zap.
func NewLogger(db *gorm.DB, logger ...*zap.Logger) Logger {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &gormLogger{db: db, logger: l.Named("audit"), now: time.Now}
}

func (l *gormLogger) Log(ctx context.Context, entry Entry) error {
	record := Log{
		ID:         uuid.New(),
		Action:     entry.Action,
		TargetType: entry.TargetType,
		TargetID:   entry.TargetID,
		Details:    jsonb.Of(entry.Details),
		RequestID:  contextutil.GetRequestID(ctx),
		CreatedAt:  l.now().UTC(),
	}
	if entry.ActorID == "" {
		if actor, ok := contextutil.GetActor(ctx); ok {
			entry.ActorID = actor.ID()
		}
	}
	if actorID, err := uuid.Parse(entry.ActorID); err == nil {
		record.ActorID = &actorID
	}

	l.logger.Info("audit event",
		zap.String("action", record.Action),
		zap.String("target_type", record.TargetType),
		zap.String("target_id", record.TargetID),
		zap.String("actor_id", entry.ActorID),
		zap.String("request_id", record.RequestID),
		zap.Any("details", entry.Details),
	)

	if l.db == nil {
		return nil
	}
	return l.db.WithContext(ctx).Create(&record).Error
}

package payslip

import (
	"context"
	"database/sql"
	"time"

	"cadebeck-hr/internal/shared/dbtx"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=payslip_repo.go -destination=mock/payslip_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Upsert(ctx context.Context, ps *Payslip) error
	FindByID(ctx context.Context, id string) (*Payslip, error)
	FindByPayrollID(ctx context.Context, payrollID string) (*Payslip, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Payslip, error)
	NumberExists(ctx context.Context, number string) (bool, error)
	UpdateEmailStatus(ctx context.Context, id string, status string, emailErr *string, emailedAt *time.Time) error
	RecordDownload(ctx context.Context, id string, at time.Time) error
	MarkViewed(ctx context.Context, id string, at time.Time) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return dbtx.Conn(ctx, r.db, r.tx)
}

// Upsert keys on payroll_id. Delivery tracking columns are left untouched on
// conflict.
func (r *repository) Upsert(ctx context.Context, ps *Payslip) error {
	return r.conn(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "payroll_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"payslip_number", "file_path", "file_name", "generated_at", "updated_at",
			}),
		}).
		Create(ps).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payslip, error) {
	var ps Payslip
	err := r.conn(ctx).
		Preload("Payroll").
		Preload("Payroll.Employee").
		Preload("Payroll.Employee.User").
		First(&ps, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &ps, nil
}

func (r *repository) FindByPayrollID(ctx context.Context, payrollID string) (*Payslip, error) {
	var ps Payslip
	err := r.conn(ctx).First(&ps, "payroll_id = ?", payrollID).Error
	if err != nil {
		return nil, err
	}
	return &ps, nil
}

func (r *repository) ListByEmployee(ctx context.Context, employeeID string) ([]Payslip, error) {
	var payslips []Payslip
	err := r.conn(ctx).
		Where("employee_id = ?", employeeID).
		Order("generated_at DESC").
		Find(&payslips).Error
	return payslips, err
}

func (r *repository) NumberExists(ctx context.Context, number string) (bool, error) {
	var count int64
	err := r.conn(ctx).Model(&Payslip{}).Where("payslip_number = ?", number).Count(&count).Error
	return count > 0, err
}

func (r *repository) UpdateEmailStatus(ctx context.Context, id string, status string, emailErr *string, emailedAt *time.Time) error {
	updates := map[string]any{
		"email_status": status,
		"email_error":  emailErr,
		"updated_at":   time.Now(),
	}
	if emailedAt != nil {
		updates["emailed_at"] = *emailedAt
	}
	return r.conn(ctx).Model(&Payslip{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) RecordDownload(ctx context.Context, id string, at time.Time) error {
	return r.conn(ctx).
		Model(&Payslip{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"downloaded_at":  at,
			"download_count": gorm.Expr("download_count + 1"),
			"updated_at":     at,
		}).Error
}

// MarkViewed keeps the first view time.
func (r *repository) MarkViewed(ctx context.Context, id string, at time.Time) error {
	return r.conn(ctx).
		Model(&Payslip{}).
		Where("id = ? AND viewed_at IS NULL", id).
		Updates(map[string]any{"viewed_at": at, "updated_at": at}).Error
}

package payroll

import (
	"context"
	"database/sql"
	"time"

	"cadebeck-hr/internal/shared/dbtx"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PayrollQueryFilter struct {
	Period     string
	Status     string
	EmployeeID string
}

type StatusTotal struct {
	Status   string          `json:"status"`
	Count    int64           `json:"count"`
	GrossPay decimal.Decimal `json:"gross_pay"`
	NetPay   decimal.Decimal `json:"net_pay"`
}

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	LockPeriod(ctx context.Context, period string) error
	SavePoint(ctx context.Context, name string) error
	RollbackTo(ctx context.Context, name string) error
	ExistsForPeriod(ctx context.Context, employeeID string, period string) (bool, error)
	Create(ctx context.Context, p *Payroll) error
	Update(ctx context.Context, p *Payroll) error
	FindByID(ctx context.Context, id string) (*Payroll, error)
	FindAll(ctx context.Context, filter PayrollQueryFilter) ([]Payroll, error)
	SummarizePeriod(ctx context.Context, period string) ([]StatusTotal, error)
	ListCandidateItems(ctx context.Context, kind LineItemKind, employeeID string, start, end time.Time) ([]LineItem, error)
	AttachItems(ctx context.Context, kind LineItemKind, ids []uuid.UUID, payrollID uuid.UUID) error
	ListItemsByPayroll(ctx context.Context, kind LineItemKind, payrollID string) ([]LineItem, error)
	ListItemsByEmployee(ctx context.Context, kind LineItemKind, employeeID string) ([]LineItem, error)
	CreateItem(ctx context.Context, kind LineItemKind, item *LineItem) error
	FindItem(ctx context.Context, kind LineItemKind, id string) (*LineItem, error)
	UpdateItemStatus(ctx context.Context, kind LineItemKind, id string, status string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return dbtx.Conn(ctx, r.db, r.tx)
}

// LockPeriod serializes runs for one period until the transaction ends.
func (r *repository) LockPeriod(ctx context.Context, period string) error {
	return r.conn(ctx).Exec("SELECT pg_advisory_xact_lock(hashtext(?))", "payroll:"+period).Error
}

func (r *repository) SavePoint(ctx context.Context, name string) error {
	return r.conn(ctx).SavePoint(name).Error
}

func (r *repository) RollbackTo(ctx context.Context, name string) error {
	return r.conn(ctx).RollbackTo(name).Error
}

func (r *repository) ExistsForPeriod(ctx context.Context, employeeID string, period string) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&Payroll{}).
		Where("employee_id = ? AND payroll_period = ?", employeeID, period).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Create(ctx context.Context, p *Payroll) error {
	return r.conn(ctx).Omit(clause.Associations).Create(p).Error
}

func (r *repository) Update(ctx context.Context, p *Payroll) error {
	return r.conn(ctx).Omit(clause.Associations).Save(p).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payroll, error) {
	conn := r.conn(ctx)
	if r.tx != nil {
		conn = conn.Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: clause.CurrentTable}})
	}

	var p Payroll
	err := conn.
		Preload("Employee").
		Preload("Employee.User").
		First(&p, "payrolls.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindAll(ctx context.Context, filter PayrollQueryFilter) ([]Payroll, error) {
	q := r.conn(ctx).Preload("Employee")
	if filter.Period != "" {
		q = q.Where("payroll_period = ?", filter.Period)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}

	var payrolls []Payroll
	err := q.Order("pay_date DESC, created_at DESC").Find(&payrolls).Error
	return payrolls, err
}

func (r *repository) SummarizePeriod(ctx context.Context, period string) ([]StatusTotal, error) {
	var totals []StatusTotal
	err := r.conn(ctx).
		Model(&Payroll{}).
		Select("status, COUNT(*) AS count, COALESCE(SUM(gross_pay), 0) AS gross_pay, COALESCE(SUM(net_pay), 0) AS net_pay").
		Where("payroll_period = ?", period).
		Group("status").
		Order("status").
		Scan(&totals).Error
	return totals, err
}

// ListCandidateItems narrows items by status and date range in SQL; the
// final decision is IsEligible.
func (r *repository) ListCandidateItems(ctx context.Context, kind LineItemKind, employeeID string, start, end time.Time) ([]LineItem, error) {
	var items []LineItem
	err := r.conn(ctx).
		Table(kind.table()).
		Where("employee_id = ? AND status = ?", employeeID, ItemStatusActive).
		Where("effective_date <= ?", end).
		Where("end_date IS NULL OR end_date >= ?", start).
		Where("is_recurring = ? OR payroll_id IS NULL", true).
		Order("effective_date ASC").
		Find(&items).Error
	return items, err
}

func (r *repository) AttachItems(ctx context.Context, kind LineItemKind, ids []uuid.UUID, payrollID uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.conn(ctx).
		Table(kind.table()).
		Where("id IN ?", ids).
		Updates(map[string]any{"payroll_id": payrollID, "updated_at": time.Now()}).Error
}

func (r *repository) ListItemsByPayroll(ctx context.Context, kind LineItemKind, payrollID string) ([]LineItem, error) {
	var items []LineItem
	err := r.conn(ctx).
		Table(kind.table()).
		Where("payroll_id = ?", payrollID).
		Order("category ASC").
		Find(&items).Error
	return items, err
}

func (r *repository) ListItemsByEmployee(ctx context.Context, kind LineItemKind, employeeID string) ([]LineItem, error) {
	var items []LineItem
	err := r.conn(ctx).
		Table(kind.table()).
		Where("employee_id = ?", employeeID).
		Order("effective_date DESC").
		Find(&items).Error
	return items, err
}

func (r *repository) CreateItem(ctx context.Context, kind LineItemKind, item *LineItem) error {
	return r.conn(ctx).Table(kind.table()).Create(item).Error
}

func (r *repository) FindItem(ctx context.Context, kind LineItemKind, id string) (*LineItem, error) {
	var item LineItem
	err := r.conn(ctx).Table(kind.table()).First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) UpdateItemStatus(ctx context.Context, kind LineItemKind, id string, status string) error {
	return r.conn(ctx).
		Table(kind.table()).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "updated_at": time.Now()}).Error
}

package loan

import (
	"context"
	"database/sql"

	"cadebeck-hr/internal/shared/dbtx"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=loan_repo.go -destination=mock/loan_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, loan *EmployeeLoan) error
	Update(ctx context.Context, loan *EmployeeLoan) error
	FindByID(ctx context.Context, id string) (*EmployeeLoan, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]EmployeeLoan, error)
	ListActiveWithBalance(ctx context.Context, employeeID string) ([]EmployeeLoan, error)
	CreateRepayment(ctx context.Context, repayment *LoanRepayment) error
	ListRepaymentsByPayroll(ctx context.Context, payrollID string) ([]LoanRepayment, error)
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

func (r *repository) Create(ctx context.Context, loan *EmployeeLoan) error {
	return dbtx.Conn(ctx, r.db, r.tx).Omit(clause.Associations).Create(loan).Error
}

func (r *repository) Update(ctx context.Context, loan *EmployeeLoan) error {
	return dbtx.Conn(ctx, r.db, r.tx).Omit(clause.Associations).Save(loan).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*EmployeeLoan, error) {
	var loan EmployeeLoan
	err := dbtx.Conn(ctx, r.db, r.tx).
		Preload("Repayments", func(db *gorm.DB) *gorm.DB {
			return db.Order("repayment_date ASC, created_at ASC")
		}).
		First(&loan, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

func (r *repository) ListByEmployee(ctx context.Context, employeeID string) ([]EmployeeLoan, error) {
	var loans []EmployeeLoan
	err := dbtx.Conn(ctx, r.db, r.tx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&loans).Error
	return loans, err
}

// ListActiveWithBalance locks the rows when running inside a transaction so
// two runs cannot amortize the same loan concurrently.
func (r *repository) ListActiveWithBalance(ctx context.Context, employeeID string) ([]EmployeeLoan, error) {
	conn := dbtx.Conn(ctx, r.db, r.tx)
	if r.tx != nil {
		conn = conn.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var loans []EmployeeLoan
	err := conn.
		Where("employee_id = ? AND status = ? AND remaining_balance > 0", employeeID, StatusActive).
		Order("start_date ASC, created_at ASC").
		Find(&loans).Error
	return loans, err
}

func (r *repository) CreateRepayment(ctx context.Context, repayment *LoanRepayment) error {
	return dbtx.Conn(ctx, r.db, r.tx).Create(repayment).Error
}

func (r *repository) ListRepaymentsByPayroll(ctx context.Context, payrollID string) ([]LoanRepayment, error) {
	var repayments []LoanRepayment
	err := dbtx.Conn(ctx, r.db, r.tx).
		Where("payroll_id = ?", payrollID).
		Order("created_at ASC").
		Find(&repayments).Error
	return repayments, err
}

package employee

import (
	"context"
	"database/sql"

	"cadebeck-hr/internal/shared/dbtx"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindActive(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
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

// FindActive excludes soft deleted employees through gorm.DeletedAt.
func (r *repository) FindActive(ctx context.Context) ([]Employee, error) {
	var employees []Employee
	err := dbtx.Conn(ctx, r.db, r.tx).
		Preload("User").
		Order("staff_number ASC").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var emp Employee
	err := dbtx.Conn(ctx, r.db, r.tx).
		Preload("User").
		First(&emp, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

package counter

import (
	"context"
	"database/sql"
	"fmt"

	"cadebeck-hr/internal/shared/dbtx"

	"gorm.io/gorm"
)

const TableName = "counters"

//go:generate mockgen -source=counter_repo.go -destination=mock/counter_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	GetNextValue(ctx context.Context, counterType string) (int64, error)
	NextNumber(ctx context.Context, counterType, prefix string, width int) (string, error)
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

// GetNextValue increments and returns the named sequence in a single upsert.
// Inside a transaction the row stays locked until commit, so a rolled back
// caller does not burn a value.
func (r *repository) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	var nextValue int64

	err := dbtx.Conn(ctx, r.db, r.tx).Raw(`
		INSERT INTO counters (counter_type, last_value, updated_at)
		VALUES (?, 1, now())
		ON CONFLICT (counter_type) DO UPDATE
		SET last_value = counters.last_value + 1, updated_at = now()
		RETURNING last_value
	`, counterType).Scan(&nextValue).Error
	if err != nil {
		return 0, err
	}

	return nextValue, nil
}

// NextNumber formats the next value as PREFIX-000042.
func (r *repository) NextNumber(ctx context.Context, counterType, prefix string, width int) (string, error) {
	next, err := r.GetNextValue(ctx, counterType)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%0*d", prefix, width, next), nil
}

package counter_test

import (
	"context"
	"regexp"
	"testing"

	"cadebeck-hr/internal/shared/counter"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestRepository_NextNumber(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO counters`)).
		WithArgs("loan_number").
		WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(42))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	repo := counter.NewRepository(gdb).WithTx(tx)
	got, err := repo.NextNumber(context.Background(), "loan_number", "LN", 6)

	assert.NoError(t, err)
	assert.Equal(t, "LN-000042", got)
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

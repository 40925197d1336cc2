package audit_test

import (
	"context"
	"regexp"
	"testing"

	"cadebeck-hr/internal/audit"
	"cadebeck-hr/internal/shared/contextutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGormMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return gdb, mock
}

func TestLogger_PersistsEntry(t *testing.T) {
	gdb, mock := newGormMock(t)
	logger := audit.NewLogger(gdb, zap.NewNop())

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "audit_logs"`)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	ctx := contextutil.WithRequestID(context.Background(), "req-42")
	err := logger.Log(ctx, audit.Entry{
		ActorID:    uuid.New().String(),
		Action:     audit.ActionPayslipEmailFailed,
		TargetType: "payslip",
		TargetID:   uuid.New().String(),
		Details:    map[string]any{"reason": "missing contact"},
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogger_WithoutDatabase(t *testing.T) {
	logger := audit.NewLogger(nil, zap.NewNop())
	assert.NoError(t, logger.Log(context.Background(), audit.Entry{Action: audit.ActionServerShutdown}))
}

func TestLogger_ActorFromContext(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := audit.NewLogger(nil, zap.New(core))

	ctx := contextutil.WithActor(context.Background(), contextutil.Actor{UserID: "u-1", EmployeeID: "emp-1"})
	err := logger.Log(ctx, audit.Entry{
		Action:     audit.ActionPayslipRegenerated,
		TargetType: "payslip",
		TargetID:   "ps-1",
	})

	assert.NoError(t, err)
	entries := logs.FilterMessage("audit event").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "emp-1", entries[0].ContextMap()["actor_id"])
	assert.Equal(t, audit.ActionPayslipRegenerated, entries[0].ContextMap()["action"])
}

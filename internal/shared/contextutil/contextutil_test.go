package contextutil_test

import (
	"context"
	"testing"

	"cadebeck-hr/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestActor(t *testing.T) {
	_, ok := contextutil.GetActor(context.Background())
	assert.False(t, ok)

	ctx := contextutil.WithRequestID(context.Background(), "req-1")
	ctx = contextutil.WithActor(ctx, contextutil.Actor{UserID: "user-1", Role: "payroll_officer"})

	actor, ok := contextutil.GetActor(ctx)
	assert.True(t, ok)
	assert.Equal(t, "user-1", actor.ID())
	assert.Equal(t, "payroll_officer", actor.Role)
	assert.Equal(t, "req-1", contextutil.GetRequestID(ctx))

	actor.EmployeeID = "emp-1"
	assert.Equal(t, "emp-1", actor.ID())
}

func TestGetLogger_Fallbacks(t *testing.T) {
	scoped := zap.NewNop().Named("scoped")
	ctx := contextutil.WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, contextutil.GetLogger(ctx, nil))

	def := zap.NewNop()
	assert.Same(t, def, contextutil.GetLogger(context.Background(), def))
	assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))
}

package middleware

import (
	"cadebeck-hr/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger must run after RequestID. AuthMiddleware later adds the
// actor fields to the same scoped logger.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		reqLogger := logger.With(zap.String("request_id", contextutil.GetRequestID(ctx)))
		c.Request = c.Request.WithContext(contextutil.WithLogger(ctx, reqLogger))

		c.Next()
	}
}

func bindActor(c *gin.Context, actor contextutil.Actor) {
	ctx := contextutil.WithActor(c.Request.Context(), actor)
	scoped := contextutil.GetLogger(ctx, zap.L()).With(
		zap.String("actor_id", actor.ID()),
		zap.String("role", actor.Role),
	)
	c.Request = c.Request.WithContext(contextutil.WithLogger(ctx, scoped))
}

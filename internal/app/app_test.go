package app_test

import (
	"testing"

	"cadebeck-hr/internal/app"
	"cadebeck-hr/internal/shared/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestBuildApp_RefusesToStartWithoutJWTSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	in, m, err := app.BuildApp(router, config.Config{}, zap.NewNop())

	assert.EqualError(t, err, "JWT_SECRET is required")
	assert.Nil(t, in)
	assert.Nil(t, m)
	assert.Empty(t, router.Routes())
}

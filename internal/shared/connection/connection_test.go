package connection_test

import (
	"testing"

	"cadebeck-hr/internal/shared/config"
	"cadebeck-hr/internal/shared/connection"

	"github.com/stretchr/testify/assert"
)

func TestPostgresDSN(t *testing.T) {
	dsn := connection.PostgresDSN(config.DBConfig{
		Host: "db", User: "hr", Password: "secret", Name: "payroll", Port: "5432", SSLMode: "disable",
	})

	assert.Equal(t, "host=db user=hr password=secret dbname=payroll port=5432 sslmode=disable TimeZone=UTC", dsn)
}

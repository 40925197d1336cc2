package app

import (
	"database/sql"

	"cadebeck-hr/internal/shared/config"
	"cadebeck-hr/internal/shared/connection"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const connectRetries = 5

// Infra holds the shared connections of one process.
type Infra struct {
	GormDB *gorm.DB
	DB     *sql.DB
	Redis  *redis.Client
}

func connectInfra(cfg config.Config) (*Infra, error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, connectRetries)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, connectRetries)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return &Infra{GormDB: gormDB, DB: sqlDB, Redis: rdb}, nil
}

func (i *Infra) Close() {
	if i.Redis != nil {
		_ = i.Redis.Close()
	}
	if i.DB != nil {
		_ = i.DB.Close()
	}
}

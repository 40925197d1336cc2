package payslip

import (
	"context"
	"strconv"
	"time"

	"cadebeck-hr/internal/shared/storage"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	cleanupKey       = "payslip:cleanup"
	cleanupBatchSize = 100
)

//go:generate mockgen -source=payslip_cleanup.go -destination=mock/payslip_cleanup_mock.go -package=mock
type CleanupScheduler interface {
	Schedule(ctx context.Context, path string, after time.Duration) error
}

// Cleanup keeps pending deletions in a redis sorted set scored by due time.
// The API schedules, the worker sweeps.
type Cleanup struct {
	rdb     *redis.Client
	storage storage.FileStorage
	logger  *zap.Logger
	now     func() time.Time
}

func NewCleanup(rdb *redis.Client, fileStorage storage.FileStorage, logger ...*zap.Logger) *Cleanup {
	l := zap.L().Named("payslip.cleanup")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payslip.cleanup")
	}
	return &Cleanup{rdb: rdb, storage: fileStorage, logger: l, now: time.Now}
}

func (c *Cleanup) Schedule(ctx context.Context, path string, after time.Duration) error {
	due := c.now().Add(after).Unix()
	return c.rdb.ZAdd(ctx, cleanupKey, redis.Z{Score: float64(due), Member: path}).Err()
}

// RunDue deletes files whose retention expired. A file that fails to delete
// stays in the set and is retried on the next sweep.
func (c *Cleanup) RunDue(ctx context.Context) (int, error) {
	paths, err := c.rdb.ZRangeByScore(ctx, cleanupKey, &redis.ZRangeBy{
		Min:   "-inf",
		Max:   strconv.FormatInt(c.now().Unix(), 10),
		Count: cleanupBatchSize,
	}).Result()
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, path := range paths {
		if err := c.storage.Delete(ctx, path); err != nil {
			c.logger.Warn("delete payslip file failed", zap.String("path", path), zap.Error(err))
			continue
		}
		if err := c.rdb.ZRem(ctx, cleanupKey, path).Err(); err != nil {
			return deleted, err
		}
		deleted++
	}
	return deleted, nil
}

func (c *Cleanup) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	c.logger.Info("payslip cleanup started", zap.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			c.logger.Info("payslip cleanup stopped")
			return
		case <-ticker.C:
			n, err := c.RunDue(ctx)
			if err != nil {
				c.logger.Error("payslip cleanup sweep failed", zap.Error(err))
				continue
			}
			if n > 0 {
				c.logger.Info("payslip files removed", zap.Int("count", n))
			}
		}
	}
}

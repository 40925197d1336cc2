package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"cadebeck-hr/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	HeaderIdempotencyKey = "Idempotency-Key"

	idempotencyCacheKey = "idempotency_cache_key"
	idempotencyLockKey  = "idempotency_lock_key"

	idempotencyLockTTL  = 5 * time.Minute
	idempotencyCacheTTL = 24 * time.Hour
)

// Idempotency replays the stored response for a repeated Idempotency-Key and
// rejects a repeat that arrives while the first request is still running.
// Handlers finish the cycle with CommitIdempotent.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader(HeaderIdempotencyKey)
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), c.GetString(ContextUserID), idempKey)
		lockKey := cacheKey + ":lock"

		if val, err := rdb.Get(ctx, cacheKey).Result(); err == nil {
			var cached any
			if json.Unmarshal([]byte(val), &cached) == nil {
				c.Header("Idempotent-Replay", "true")
				response.Success(c, http.StatusOK, cached, nil)
				c.Abort()
				return
			}
		}

		// batch runs can be long, so the lock outlives a normal request
		acquired, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			c.Next()
			return
		}
		if !acquired {
			response.Error(c, http.StatusConflict, "PROCESSING", "A request with this Idempotency-Key is still being processed", nil)
			c.Abort()
			return
		}

		c.Set(idempotencyCacheKey, cacheKey)
		c.Set(idempotencyLockKey, lockKey)
		c.Next()
	}
}

// CommitIdempotent stores payload for replay (when not nil) and releases the
// lock taken by Idempotency. It is a no-op when the middleware did not run.
func CommitIdempotent(c *gin.Context, rdb *redis.Client, payload any) {
	if rdb == nil {
		return
	}
	ctx := c.Request.Context()

	if payload != nil {
		if cacheKey := c.GetString(idempotencyCacheKey); cacheKey != "" {
			if b, err := json.Marshal(payload); err == nil {
				_ = rdb.Set(ctx, cacheKey, b, idempotencyCacheTTL).Err()
			}
		}
	}
	if lockKey := c.GetString(idempotencyLockKey); lockKey != "" {
		_ = rdb.Del(ctx, lockKey).Err()
	}
}

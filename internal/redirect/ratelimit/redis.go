package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisKeyPrefix = "ratelimit:"

// incrWindow increments the key's counter, starts the window on the first hit
// and returns {count, remaining window in ms}.
var incrWindow = redis.NewScript(`
local n = redis.call('INCR', KEYS[1])
if n == 1 then
  redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('PTTL', KEYS[1])
if ttl < 0 then
  redis.call('PEXPIRE', KEYS[1], ARGV[1])
  ttl = tonumber(ARGV[1])
end
return {n, ttl}
`)

// RedisLimiter shares buckets between instances through Redis with the same
// window and limit contract as MemoryLimiter.
type RedisLimiter struct {
	rdb    redis.Scripter
	limit  int
	window time.Duration
	logger *zap.Logger
}

var _ Limiter = (*RedisLimiter)(nil)

// NewRedisLimiter creates a Redis-backed limiter.
func NewRedisLimiter(rdb redis.Scripter, limit int, window time.Duration, logger *zap.Logger) *RedisLimiter {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &RedisLimiter{
		rdb:    rdb,
		limit:  limit,
		window: window,
		logger: logger,
	}
}

// Allow admits the request when the shared counter is within the limit.
// Redis failures admit the request.
func (l *RedisLimiter) Allow(ctx context.Context, key string) Decision {
	res, err := incrWindow.Run(ctx, l.rdb, []string{redisKeyPrefix + key}, l.window.Milliseconds()).Int64Slice()
	if err != nil || len(res) != 2 {
		l.logger.Warn("rate limiter unavailable, admitting request",
			zap.String("key", key),
			zap.Error(err),
		)
		return Decision{Allowed: true, Limit: l.limit, Remaining: l.limit, ResetAt: time.Now().Add(l.window)}
	}

	count, ttl := int(res[0]), time.Duration(res[1])*time.Millisecond
	return Decision{
		Allowed:   count <= l.limit,
		Limit:     l.limit,
		Remaining: max(l.limit-count, 0),
		ResetAt:   time.Now().Add(ttl),
	}
}

// Package ratelimit throttles callers of the model-backed endpoints.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/andresuchdata/vendex/internal/config"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "vendex:ratelimit"

// Limiter decides whether a caller identified by key may make another request.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// redisLimiter is a fixed-window counter shared by every server instance.
type redisLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
	now    func() time.Time
}

type noopLimiter struct{}

// New returns a redis-backed limiter, or one that allows everything when
// rate limiting is disabled.
func New(cfg config.RateLimitConfig) (Limiter, error) {
	if !cfg.Enabled {
		return noopLimiter{}, nil
	}

	client, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	limit := int64(cfg.RequestsPerWindow)
	if limit <= 0 {
		limit = 30
	}

	return &redisLimiter{
		client: client,
		limit:  limit,
		window: cfg.Window(),
		now:    time.Now,
	}, nil
}

// NewNoop returns a limiter that never throttles.
func NewNoop() Limiter {
	return noopLimiter{}
}

func (l *redisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := windowKey(key, l.now(), l.window)

	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, k)
		pipe.Expire(ctx, k, l.window)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("redis rate limit failed: %w", err)
	}

	return incr.Val() <= l.limit, nil
}

func (noopLimiter) Allow(context.Context, string) (bool, error) {
	return true, nil
}

// windowKey buckets key into the fixed window containing now.
func windowKey(key string, now time.Time, window time.Duration) string {
	bucket := now.Unix() / int64(window/time.Second)
	return fmt.Sprintf("%s:%s:%d", keyPrefix, key, bucket)
}

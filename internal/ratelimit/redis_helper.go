package ratelimit

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/andresuchdata/vendex/internal/config"
	"github.com/redis/go-redis/v9"
)

// The limiter sits on the request path and fails open, so a slow redis must
// give up quickly instead of holding the request.
const (
	dialTimeout = 500 * time.Millisecond
	ioTimeout   = 200 * time.Millisecond
	pingTimeout = 2 * time.Second
)

func newRedisClient(cfg config.RateLimitConfig) (*redis.Client, error) {
	opts, err := limiterOptions(cfg)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("rate limiter: redis ping %s: %w", opts.Addr, err)
	}

	return client, nil
}

// limiterOptions resolves the redis address from REDIS_URL or host/port and
// applies the limiter's short timeouts on top.
func limiterOptions(cfg config.RateLimitConfig) (*redis.Options, error) {
	var opts *redis.Options
	if cfg.RedisURL != "" {
		parsed, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("rate limiter: invalid REDIS_URL: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{
			Addr:     net.JoinHostPort(orDefault(cfg.RedisHost, "127.0.0.1"), orDefault(cfg.RedisPort, "6379")),
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}
	}

	opts.DialTimeout = dialTimeout
	opts.ReadTimeout = ioTimeout
	opts.WriteTimeout = ioTimeout
	opts.MaxRetries = -1
	return opts, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// Package redis connects to Redis and hosts the Redis-backed adapters.
package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/records-api/internal/config"
)

var (
	ErrParseURL    = errors.New("failed to parse redis connection string")
	ErrNotReady    = errors.New("redis did not become ready within the given time period")
	ErrHealthcheck = errors.New("redis healthcheck failed")
)

// Connect opens a client and pings it, retrying up to cfg.RetryAttempts times
// with cfg.RetryInterval between attempts. The whole attempt is bounded by
// cfg.ConnectTimeout.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Join(ErrParseURL, err)
	}

	attempts := max(cfg.RetryAttempts, 1)
	for range attempts {
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err == nil {
			return client, nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, ErrNotReady
}

// Pinger is the subset of the client used by health checks.
type Pinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

// Healthcheck returns a readiness check for client.
func Healthcheck(client Pinger) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrHealthcheck, err)
		}
		return nil
	}
}

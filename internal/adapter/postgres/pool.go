package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/records-api/internal/config"
)

// ErrHealthcheck wraps a failed readiness ping.
var ErrHealthcheck = errors.New("postgres healthcheck failed")

// NewPool opens a pgx pool and pings it, retrying with a linearly growing
// backoff (RetryInterval, 2*RetryInterval, ...) up to RetryAttempts times.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse database DSN: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	if cfg.HealthPeriod > 0 {
		poolCfg.HealthCheckPeriod = cfg.HealthPeriod
	}

	var lastErr error
	for attempt := range max(cfg.RetryAttempts, 1) {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("connect database: %w", errors.Join(ctx.Err(), lastErr))
			case <-time.After(time.Duration(attempt) * cfg.RetryInterval):
			}
		}

		pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err != nil {
			lastErr = fmt.Errorf("create connection pool: %w", err)
			continue
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			lastErr = fmt.Errorf("ping database: %w", err)
			continue
		}
		return pool, nil
	}

	return nil, lastErr
}

// Pinger is the subset of the pool used by readiness checks.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Healthcheck returns a readiness check for db.
func Healthcheck(db Pinger) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := db.Ping(ctx); err != nil {
			return errors.Join(ErrHealthcheck, err)
		}
		return nil
	}
}

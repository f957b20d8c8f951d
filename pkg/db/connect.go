package db

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrInvalidConfig    = errors.New("db: invalid connection configuration")
	ErrConnectionFailed = errors.New("db: failed to open database connection")
	ErrHealthcheck      = errors.New("db: healthcheck failed")
)

// Connect opens a pgx connection pool and verifies it with a ping,
// retrying with linearly growing waits to ride out transient startup
// failures.
func Connect(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	poolConfig.MaxConns = cfg.MaxOpenConns
	poolConfig.MinConns = cfg.MinConns
	poolConfig.HealthCheckPeriod = cfg.HealthCheckPeriod
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime

	var lastErr error
	for attempt := range max(cfg.RetryAttempts, 1) {
		pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				return pool, nil
			}
			pool.Close()
		}
		lastErr = err

		// Attempt n waits n+1 intervals so simultaneously restarting
		// services fan out instead of hammering the database together.
		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrConnectionFailed, ctx.Err(), lastErr)
		case <-time.After(time.Duration(attempt+1) * cfg.RetryInterval):
		}
	}

	return nil, errors.Join(ErrConnectionFailed, lastErr)
}

// Healthcheck returns a probe compatible with standard health check
// registries.
func Healthcheck(pool *pgxpool.Pool) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if err := pool.Ping(ctx); err != nil {
			return errors.Join(ErrHealthcheck, err)
		}
		return nil
	}
}

// Shutdown returns a hook that closes the pool on application shutdown.
func Shutdown(pool *pgxpool.Pool) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		pool.Close()
		return nil
	}
}

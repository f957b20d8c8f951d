// Package db establishes PostgreSQL connection pools for the page store.
//
// It wraps [github.com/jackc/pgx/v5/pgxpool] with environment-based
// configuration, startup retries with linear backoff, and a health check
// function. Schema management is not handled here: the page tables belong
// to the host CMS and arrive with it.
//
// Configuration is read from the environment:
//
//	DATABASE_CONN_URL           - PostgreSQL connection URL (required)
//	DATABASE_MAX_OPEN_CONNS     - Maximum open connections (default: 10)
//	DATABASE_MIN_CONNS          - Minimum idle connections (default: 2)
//	DATABASE_HEALTHCHECK_PERIOD - Pool health check interval (default: 1m)
//	DATABASE_MAX_CONN_IDLE_TIME - Maximum connection idle time (default: 10m)
//	DATABASE_MAX_CONN_LIFETIME  - Maximum connection lifetime (default: 30m)
//	DATABASE_RETRY_ATTEMPTS     - Connect attempts before giving up (default: 3)
//	DATABASE_RETRY_INTERVAL     - Base wait between attempts (default: 5s)
//
// Usage:
//
//	cfg, err := db.NewConfigFromEnv()
//	if err != nil { ... }
//	pool, err := db.Connect(ctx, cfg)
//	if err != nil { ... }
//	defer pool.Close()
//
//	store := pages.NewStore(pool)
package db

package db

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds PostgreSQL connection parameters, populated from
// environment variables.
type Config struct {
	// ConnectionString is a postgres:// URL.
	ConnectionString string `env:"DATABASE_CONN_URL,required"`

	// Pool sizing. The page store issues one short read per operation, so
	// modest pools go a long way.
	MaxOpenConns int32 `env:"DATABASE_MAX_OPEN_CONNS" envDefault:"10"`
	MinConns     int32 `env:"DATABASE_MIN_CONNS" envDefault:"2"`

	// Connection lifecycle. Bounded idle time and lifetime keep the pool
	// healthy behind connection proxies and across failovers.
	HealthCheckPeriod time.Duration `env:"DATABASE_HEALTHCHECK_PERIOD" envDefault:"1m"`
	MaxConnIdleTime   time.Duration `env:"DATABASE_MAX_CONN_IDLE_TIME" envDefault:"10m"`
	MaxConnLifetime   time.Duration `env:"DATABASE_MAX_CONN_LIFETIME" envDefault:"30m"`

	// Startup retry for transient network failures.
	RetryAttempts int           `env:"DATABASE_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval time.Duration `env:"DATABASE_RETRY_INTERVAL" envDefault:"5s"`
}

// NewConfigFromEnv parses Config from the process environment.
func NewConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("db: parse config: %w", err)
	}
	return cfg, nil
}

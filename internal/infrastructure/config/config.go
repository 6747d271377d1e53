package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// Database. DATABASE_URL wins when set; otherwise the DSN is
	// composed from the discrete POSTGRES_* variables.
	DatabaseURL      string        `env:"DATABASE_URL"       envDefault:""`
	PostgresHost     string        `env:"POSTGRES_HOST"      envDefault:"localhost"`
	PostgresPort     int           `env:"POSTGRES_PORT"      envDefault:"5432"`
	PostgresDatabase string        `env:"POSTGRES_DATABASE"  envDefault:"db"`
	PostgresUser     string        `env:"POSTGRES_USER"      envDefault:"user"`
	PostgresPassword string        `env:"POSTGRES_PASSWORD"  envDefault:"pass"`
	DatabaseMaxConns int           `env:"DATABASE_MAX_CONNS" envDefault:"25"`
	DatabaseMinConns int           `env:"DATABASE_MIN_CONNS" envDefault:"5"`
	DatabaseTimeout  time.Duration `env:"DATABASE_TIMEOUT"   envDefault:"30s"`

	// Redis (optional - leave empty to run without the summary cache)
	RedisURL string        `env:"REDIS_URL"  envDefault:""`
	CacheTTL time.Duration `env:"CACHE_TTL"  envDefault:"5m"`

	// Transport: http serves /mcp over streamable HTTP, stdio speaks
	// the protocol over stdin/stdout.
	Transport string `env:"MCP_TRANSPORT" envDefault:"http"`

	// HTTP Server
	HTTPPort            string        `env:"PORT"                  envDefault:"8000"`
	HTTPReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"30s"`
	HTTPWriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"30s"`
	HTTPIdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT"     envDefault:"60s"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Transport != "http" && cfg.Transport != "stdio" {
		return nil, fmt.Errorf("invalid MCP_TRANSPORT %q: must be http or stdio", cfg.Transport)
	}

	return cfg, nil
}

// DSN returns the Postgres connection string.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		url.QueryEscape(c.PostgresUser),
		url.QueryEscape(c.PostgresPassword),
		c.PostgresHost,
		c.PostgresPort,
		c.PostgresDatabase,
	)
}

// CacheEnabled reports whether a Redis URL was configured.
func (c *Config) CacheEnabled() bool {
	return c.RedisURL != ""
}

package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds application configuration, loaded once at startup
type Config struct {
	Version      string        `env:"VERSION" envDefault:"0.1.0"`
	Port         int           `env:"PORT" envDefault:"8080"`
	Environment  string        `env:"ENVIRONMENT" envDefault:"dev"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
	SentryDSN    string        `env:"SENTRY_DSN"`
	DatabaseURL  string        `env:"DATABASE_URL"`
	JWTSecret    string        `env:"JWT_SECRET"`
	JWTExpiry    time.Duration `env:"JWT_EXPIRY" envDefault:"24h"`
	ClientOrigin string        `env:"CLIENT_ORIGIN" envDefault:"http://localhost:3000"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsEnvProd() bool {
	if c.Environment == "prod" && c.SentryDSN != "" {
		return true
	}
	return false
}

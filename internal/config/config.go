// Package config loads service settings from the environment, after an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the runtime configuration of the calculator service.
type Config struct {
	Addr            string        `env:"CALC_ADDR" envDefault:":8080"`
	SessionTTL      time.Duration `env:"CALC_SESSION_TTL" envDefault:"30m"`
	JanitorInterval time.Duration `env:"CALC_JANITOR_INTERVAL" envDefault:"1m"`
	ShutdownTimeout time.Duration `env:"CALC_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	CORSOrigins     []string      `env:"CALC_CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:*,http://127.0.0.1:*"`
	TracingEnabled  bool          `env:"CALC_TRACING_ENABLED" envDefault:"true"`
	MetricsEnabled  bool          `env:"CALC_METRICS_ENABLED" envDefault:"true"`
	OTLPLogsEnabled bool          `env:"CALC_OTLP_LOGS_ENABLED" envDefault:"false"`
	ServiceName     string        `env:"OTEL_SERVICE_NAME" envDefault:"go-chi-calculator"`
}

// Load reads .env when present and parses the environment into a Config.
// Variables already set in the process environment win over .env.
func Load() (Config, error) {
	if err := loadDotEnv(); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Addr == "" {
		return errors.New("CALC_ADDR must not be empty")
	}
	if c.SessionTTL < 0 {
		return fmt.Errorf("CALC_SESSION_TTL must not be negative, got %s", c.SessionTTL)
	}
	if c.SessionTTL > 0 && c.JanitorInterval <= 0 {
		return fmt.Errorf("CALC_JANITOR_INTERVAL must be positive when sessions expire, got %s", c.JanitorInterval)
	}
	return nil
}

// loadDotEnv loads environment variables from .env when present.
// Existing process environment variables are not overridden.
func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil {
		return nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("load .env: %w", err)
}

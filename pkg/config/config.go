// Package config loads process configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config is the full process configuration.
type Config struct {
	Log        LogConfig       `envPrefix:"LOG_"`
	Server     ServerConfig    `envPrefix:"SERVER_"`
	Database   DatabaseConfig
	Prometheus PrometheusConfig
	LLM        LLMConfig
	SMTP       SMTPConfig `envPrefix:"SMTP_"`
	Tracing    TracingConfig
	Batch      BatchConfig     `envPrefix:"BATCH_"`
	Scheduler  SchedulerConfig `envPrefix:"SCHEDULER_"`
	Retention  RetentionConfig `envPrefix:"RETENTION_"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `env:"LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	Format string `env:"FORMAT" envDefault:"text" validate:"oneof=text json"`
}

// NewLogger builds the process logger from the config.
func (c LogConfig) NewLogger() *slog.Logger {
	var level slog.Level
	switch c.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

// ServerConfig controls the HTTP API listener.
type ServerConfig struct {
	Addr string `env:"ADDR" envDefault:":8000"`
}

// DatabaseConfig holds the Postgres connection settings. The URL has no
// default on purpose; every deployment must point at its own store.
type DatabaseConfig struct {
	URL          string `env:"DATABASE_URL" validate:"required"`
	MaxOpenConns int    `env:"DATABASE_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns int    `env:"DATABASE_MAX_IDLE_CONNS" envDefault:"5"`
}

// PrometheusConfig points at the metrics backend.
type PrometheusConfig struct {
	URL string `env:"PROM_URL" envDefault:"http://localhost:9090" validate:"url"`
}

// LLMConfig configures the primary and secondary model providers. At least
// one must be configured; there are deliberately no credential defaults.
type LLMConfig struct {
	PrimaryAPIKey  string `env:"OPENAI_API_KEY"`
	PrimaryBaseURL string `env:"OPENAI_BASE_URL"`
	PrimaryModel   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	SecondaryURL   string `env:"LLM_URL"`
	SecondaryModel string `env:"LLM_MODEL" envDefault:"llama3.2"`
}

// HasPrimary reports whether the hosted provider is configured.
func (c LLMConfig) HasPrimary() bool { return c.PrimaryAPIKey != "" }

// HasSecondary reports whether the self-hosted provider is configured.
func (c LLMConfig) HasSecondary() bool { return c.SecondaryURL != "" }

// SMTPConfig holds mail credentials. User and password have no defaults;
// email alerting stays off until both are set.
type SMTPConfig struct {
	Host     string `env:"HOST" envDefault:"smtp.gmail.com"`
	Port     int    `env:"PORT" envDefault:"587"`
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
}

// TracingConfig gates Langfuse tracing. The Langfuse client reads its own
// credentials from LANGFUSE_HOST, LANGFUSE_PUBLIC_KEY and
// LANGFUSE_SECRET_KEY; these fields only decide whether it is created.
type TracingConfig struct {
	PublicKey string `env:"LANGFUSE_PUBLIC_KEY"`
	SecretKey string `env:"LANGFUSE_SECRET_KEY"`
}

// Enabled reports whether both tracing credentials are present.
func (c TracingConfig) Enabled() bool {
	return c.PublicKey != "" && c.SecretKey != ""
}

// BatchConfig controls the per-tenant batch worker.
type BatchConfig struct {
	IntervalMinutes    int           `env:"INTERVAL_MINUTES" envDefault:"5" validate:"min=1,max=60"`
	MaxMetrics         int           `env:"MAX_METRICS" envDefault:"600" validate:"min=1"`
	MetricsPerInstance int           `env:"METRICS_PER_INSTANCE" envDefault:"200" validate:"min=1"`
	TopInstances       int           `env:"TOP_INSTANCES" envDefault:"6" validate:"min=1"`
	SessionPrefix      string        `env:"SESSION_PREFIX" envDefault:"batch"`
	ErrorBackoff       time.Duration `env:"ERROR_BACKOFF" envDefault:"1m"`
	TimezoneLabel      string        `env:"TIMEZONE" envDefault:"IST"`
	TimezoneOffset     time.Duration `env:"TIMEZONE_OFFSET" envDefault:"5h30m"`
}

// SchedulerConfig controls tenant reconciliation.
type SchedulerConfig struct {
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL" envDefault:"5m"`
}

// RetentionConfig caps the append-only collections.
type RetentionConfig struct {
	MaxRecords int           `env:"MAX_RECORDS" envDefault:"1000" validate:"min=1"`
	Interval   time.Duration `env:"INTERVAL" envDefault:"1h"`
}

// Load reads the configuration from the environment. A .env file in the
// working directory is applied first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints and cross-field rules.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if !c.LLM.HasPrimary() && !c.LLM.HasSecondary() {
		return fmt.Errorf("invalid configuration: no LLM provider configured, set OPENAI_API_KEY or LLM_URL")
	}
	return nil
}

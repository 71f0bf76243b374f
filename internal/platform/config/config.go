// Package config provides configuration loading and validation for the
// merchant dashboard service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import (
	"time"

	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/daterange"
)

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Dashboard DashboardConfig `koanf:"dashboard"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
	// RequestTimeout bounds API handlers; the view stream is exempt.
	RequestTimeout time.Duration `koanf:"request_timeout"`
	// AllowedOrigins may open view streams from another origin. Empty
	// means same-origin only; "*" allows any.
	AllowedOrigins []string `koanf:"allowed_origins"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"`
	Format string        `koanf:"format"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig enables rotated file output alongside stderr.
type LogFileConfig struct {
	Path       string `koanf:"path"`
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAgeDays int    `koanf:"max_age_days"`
	Compress   bool   `koanf:"compress"`
}

// ClientConfig holds settings for the merchant API client.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
	// Token is a static bearer token used when no inbound Authorization
	// header is available (the CLI, background refreshes).
	Token string `koanf:"token"`
}

// RateLimitConfig bounds outbound request rate. A zero RequestsPerSecond
// disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	Burst             int     `koanf:"burst"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// DashboardConfig holds list view behaviour.
type DashboardConfig struct {
	PageSize       int           `koanf:"page_size"`
	SearchDebounce time.Duration `koanf:"search_debounce"`
	// WeekStart is the weekday "This Week" starts on, e.g. "sunday".
	WeekStart string      `koanf:"week_start"`
	Views     ViewsConfig `koanf:"views"`
}

// ViewsConfig bounds the server-held list views.
type ViewsConfig struct {
	MaxOpen       int           `koanf:"max_open"`
	IdleTTL       time.Duration `koanf:"idle_ttl"`
	SweepInterval time.Duration `koanf:"sweep_interval"`
	// AwaitTimeout bounds a ?wait=true request.
	AwaitTimeout time.Duration `koanf:"await_timeout"`
}

// WeekStartDay returns WeekStart as a time.Weekday, Sunday when unset.
// Validate rejects unknown names, so the error is dropped here.
func (d DashboardConfig) WeekStartDay() time.Weekday {
	w, _ := daterange.ParseWeekday(d.WeekStart)
	return w
}

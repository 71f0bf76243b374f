package config

import (
	"errors"
	"fmt"

	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/daterange"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/query"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Client.validate(),
		c.Telemetry.validate(),
		c.Dashboard.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout < 0 {
		errs = append(errs, errors.New("server.request_timeout must not be negative"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	if l.File.Path != "" && l.File.MaxSizeMB < 1 {
		errs = append(errs, fmt.Errorf("log.file.max_size_mb must be >= 1, got %d", l.File.MaxSizeMB))
	}

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate() error {
	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, errors.New("client.base_url must not be empty"))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, errors.New("client.timeout must be positive"))
	}
	if cl.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("client.retry.max_attempts must be >= 1, got %d", cl.Retry.MaxAttempts))
	}
	if cl.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("client.retry.multiplier must be positive, got %f", cl.Retry.Multiplier))
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("client.circuit_breaker.max_failures must be >= 1, got %d",
			cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("client.rate_limit.requests_per_second must be >= 0, got %f",
			cl.RateLimit.RequestsPerSecond))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.Burst < 1 {
		errs = append(errs, fmt.Errorf("client.rate_limit.burst must be >= 1 when limiting, got %d",
			cl.RateLimit.Burst))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}

func (d *DashboardConfig) validate() error {
	var errs []error

	if d.PageSize < 1 || d.PageSize > query.MaxPageSize {
		errs = append(errs, fmt.Errorf("dashboard.page_size must be between 1 and %d, got %d",
			query.MaxPageSize, d.PageSize))
	}
	if d.SearchDebounce <= 0 {
		errs = append(errs, errors.New("dashboard.search_debounce must be positive"))
	}
	if _, err := daterange.ParseWeekday(d.WeekStart); err != nil {
		errs = append(errs, fmt.Errorf("dashboard.week_start: %w", err))
	}
	if d.Views.MaxOpen < 1 {
		errs = append(errs, fmt.Errorf("dashboard.views.max_open must be >= 1, got %d", d.Views.MaxOpen))
	}
	if d.Views.IdleTTL <= 0 {
		errs = append(errs, errors.New("dashboard.views.idle_ttl must be positive"))
	}
	if d.Views.SweepInterval <= 0 {
		errs = append(errs, errors.New("dashboard.views.sweep_interval must be positive"))
	}

	return errors.Join(errs...)
}

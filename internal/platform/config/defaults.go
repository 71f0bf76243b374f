package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitRPS   = 20.0
	defaultRateLimitBurst = 40

	defaultLogMaxSizeMB  = 100
	defaultLogMaxBackups = 5
	defaultLogMaxAgeDays = 14

	defaultPageSize     = 10
	defaultMaxOpenViews = 1000
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "25s",
		"server.allowed_origins": []string{},

		"log.level":             "info",
		"log.format":            "json",
		"log.file.path":         "",
		"log.file.max_size_mb":  defaultLogMaxSizeMB,
		"log.file.max_backups":  defaultLogMaxBackups,
		"log.file.max_age_days": defaultLogMaxAgeDays,
		"log.file.compress":     true,

		"client.base_url":                        "http://localhost:8081",
		"client.timeout":                         "30s",
		"client.token":                           "",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "100ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  defaultRateLimitRPS,
		"client.rate_limit.burst":                defaultRateLimitBurst,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "merchant-dashboard",

		"dashboard.page_size":            defaultPageSize,
		"dashboard.search_debounce":      "500ms",
		"dashboard.week_start":           "sunday",
		"dashboard.views.max_open":       defaultMaxOpenViews,
		"dashboard.views.idle_ttl":       "15m",
		"dashboard.views.sweep_interval": "1m",
		"dashboard.views.await_timeout":  "10s",
	}
}

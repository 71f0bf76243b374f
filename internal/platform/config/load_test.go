package config_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/jsamuelsen11/merchant-dashboard/internal/platform/config"
)

func TestLoad_LocalProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want \"debug\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want \"text\"", cfg.Log.Format)
	}
	if cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = true, want false for local")
	}
}

func TestLoad_ProdProfile(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("prod")
	if err != nil {
		t.Fatalf("Load(\"prod\") error: %v", err)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want \"info\"", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want \"json\"", cfg.Log.Format)
	}
	if !cfg.Telemetry.Enabled {
		t.Error("Telemetry.Enabled = false, want true for prod")
	}
	if cfg.Telemetry.Exporter != "otlp" {
		t.Errorf("Telemetry.Exporter = %q, want \"otlp\"", cfg.Telemetry.Exporter)
	}
	if cfg.Telemetry.Endpoint == "" {
		t.Error("Telemetry.Endpoint is empty, want non-empty for prod")
	}
}

func TestLoad_BaseConfigInheritance(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load(\"local\") error: %v", err)
	}

	// These come from base.yaml, not overridden by local.yaml.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want \"0.0.0.0\" (from base)", cfg.Server.Host)
	}
	if cfg.Client.Retry.MaxAttempts != 3 {
		t.Errorf("Client.Retry.MaxAttempts = %d, want 3 (from base)", cfg.Client.Retry.MaxAttempts)
	}
	if cfg.Client.CircuitBreaker.MaxFailures != 5 {
		t.Errorf("Client.CircuitBreaker.MaxFailures = %d, want 5 (from base)",
			cfg.Client.CircuitBreaker.MaxFailures)
	}
}

func TestLoad_EnvOverrideSimpleKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_PORT", "9090")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090 (env override)", cfg.Server.Port)
	}
}

func TestLoad_EnvOverrideSnakeCaseKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_READ_TIMEOUT", "15s")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := 15 * time.Second
	if cfg.Server.ReadTimeout != want {
		t.Errorf("Server.ReadTimeout = %v, want %v (env override)", cfg.Server.ReadTimeout, want)
	}
}

func TestLoad_EnvOverrideDeeplyNestedKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_CLIENT_RETRY_MAX_ATTEMPTS", "7")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Client.Retry.MaxAttempts != 7 {
		t.Errorf("Client.Retry.MaxAttempts = %d, want 7 (env override)", cfg.Client.Retry.MaxAttempts)
	}
}

func TestLoad_DashboardDefaults(t *testing.T) {
	t.Chdir("../../..")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Dashboard.PageSize != 10 {
		t.Errorf("Dashboard.PageSize = %d, want 10", cfg.Dashboard.PageSize)
	}
	if cfg.Dashboard.SearchDebounce != 500*time.Millisecond {
		t.Errorf("Dashboard.SearchDebounce = %v, want 500ms", cfg.Dashboard.SearchDebounce)
	}
	if cfg.Dashboard.WeekStartDay() != time.Sunday {
		t.Errorf("Dashboard.WeekStartDay() = %v, want Sunday", cfg.Dashboard.WeekStartDay())
	}
	if cfg.Client.RateLimit.RequestsPerSecond <= 0 {
		t.Errorf("Client.RateLimit.RequestsPerSecond = %v, want > 0", cfg.Client.RateLimit.RequestsPerSecond)
	}
}

func TestLoad_EnvOverrideDashboardKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_DASHBOARD_SEARCH_DEBOUNCE", "250ms")
	t.Setenv("APP_DASHBOARD_WEEK_START", "monday")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Dashboard.SearchDebounce != 250*time.Millisecond {
		t.Errorf("Dashboard.SearchDebounce = %v, want 250ms (env override)", cfg.Dashboard.SearchDebounce)
	}
	if cfg.Dashboard.WeekStartDay() != time.Monday {
		t.Errorf("Dashboard.WeekStartDay() = %v, want Monday (env override)", cfg.Dashboard.WeekStartDay())
	}
}

func TestLoad_EnvOverrideKeyOnlyInDefaults(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_LOG_FILE_MAX_BACKUPS", "9")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Log.File.MaxBackups != 9 {
		t.Errorf("Log.File.MaxBackups = %d, want 9 (env override)", cfg.Log.File.MaxBackups)
	}
}

func TestLoad_ServerRequestSettings(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_REQUEST_TIMEOUT", "3s")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.RequestTimeout != 3*time.Second {
		t.Errorf("Server.RequestTimeout = %v, want 3s (env override)", cfg.Server.RequestTimeout)
	}
	if !slices.Equal(cfg.Server.AllowedOrigins, []string{"http://localhost:3000"}) {
		t.Errorf("Server.AllowedOrigins = %v, want [http://localhost:3000]", cfg.Server.AllowedOrigins)
	}
	if cfg.Dashboard.Views.AwaitTimeout != 10*time.Second {
		t.Errorf("Dashboard.Views.AwaitTimeout = %v, want 10s", cfg.Dashboard.Views.AwaitTimeout)
	}
}

func TestLoadDotEnv(t *testing.T) {
	const key = "APP_DOTENV_PROBE"
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte(key+"=from-file\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := config.LoadDotEnv(filepath.Join(dir, "missing.env"), path); err != nil {
		t.Fatalf("LoadDotEnv error: %v", err)
	}
	if got := os.Getenv(key); got != "from-file" {
		t.Errorf("%s = %q, want %q", key, got, "from-file")
	}
}

func TestLoad_MissingProfile(t *testing.T) {
	t.Chdir("../../..")

	_, err := config.Load("nonexistent")
	if err == nil {
		t.Fatal("Load(\"nonexistent\") returned nil error, want error")
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Server.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for port=0")
	}
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Log.Level = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for invalid log level")
	}
}

func TestValidate_OtlpWithoutEndpoint(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.Exporter = "otlp"
	cfg.Telemetry.Endpoint = ""

	if err := cfg.Validate(); err == nil {
		t.Fatal("Validate() returned nil, want error for otlp without endpoint")
	}
}

func TestValidate_DashboardRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{name: "zero page size", mutate: func(c *config.Config) { c.Dashboard.PageSize = 0 }},
		{name: "oversized page", mutate: func(c *config.Config) { c.Dashboard.PageSize = 1000 }},
		{name: "zero debounce", mutate: func(c *config.Config) { c.Dashboard.SearchDebounce = 0 }},
		{name: "unknown week start", mutate: func(c *config.Config) { c.Dashboard.WeekStart = "someday" }},
		{name: "no views allowed", mutate: func(c *config.Config) { c.Dashboard.Views.MaxOpen = 0 }},
		{name: "negative request timeout", mutate: func(c *config.Config) { c.Server.RequestTimeout = -time.Second }},
		{name: "rate limit without burst", mutate: func(c *config.Config) {
			c.Client.RateLimit = config.RateLimitConfig{RequestsPerSecond: 5}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validBaseConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("Validate() returned nil, want error")
			}
		})
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	t.Parallel()

	cfg := validBaseConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned error for valid config: %v", err)
	}
}

// validBaseConfig returns a Config with all fields set to valid values.
func validBaseConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Log: config.LogConfig{
			Level:  "info",
			Format: "json",
		},
		Client: config.ClientConfig{
			BaseURL: "http://localhost:8081",
			Timeout: 30 * time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     10 * time.Second,
				Multiplier:      2.0,
			},
			CircuitBreaker: config.CircuitBreakerConfig{
				MaxFailures:   5,
				Timeout:       30 * time.Second,
				HalfOpenLimit: 1,
			},
		},
		Telemetry: config.TelemetryConfig{
			Enabled:  false,
			Exporter: "stdout",
		},
		Dashboard: config.DashboardConfig{
			PageSize:       10,
			SearchDebounce: 500 * time.Millisecond,
			WeekStart:      "sunday",
			Views: config.ViewsConfig{
				MaxOpen:       100,
				IdleTTL:       15 * time.Minute,
				SweepInterval: time.Minute,
			},
		},
	}
}

func TestLoad_EnvOverrideListKey(t *testing.T) {
	t.Chdir("../../..")
	t.Setenv("APP_SERVER_ALLOWED_ORIGINS", "https://dash.example.com, https://ops.example.com,")

	cfg, err := config.Load("local")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	want := []string{"https://dash.example.com", "https://ops.example.com"}
	if !slices.Equal(cfg.Server.AllowedOrigins, want) {
		t.Errorf("Server.AllowedOrigins = %v, want %v", cfg.Server.AllowedOrigins, want)
	}
}

func TestLoad_RejectsUnsafeProfile(t *testing.T) {
	t.Parallel()

	for _, profile := range []string{"", "  ", "../etc", `prod\x`, "a/b"} {
		if _, err := config.Load(profile, config.WithConfigDir(t.TempDir())); err == nil {
			t.Errorf("Load(%q) error = nil, want error", profile)
		}
	}
}

package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsamuelsen11/merchant-dashboard/internal/platform/logging"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range tests {
		if got := logging.ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		level      string
		log        func(*slog.Logger)
		wantOutput bool
		wantSource bool
	}{
		{name: "debug passes at debug", level: "debug", log: func(l *slog.Logger) { l.Debug("view opened") }, wantOutput: true, wantSource: true},
		{name: "info has no source", level: "info", log: func(l *slog.Logger) { l.Info("view opened") }, wantOutput: true},
		{name: "debug filtered at info", level: "info", log: func(l *slog.Logger) { l.Debug("view opened") }},
		{name: "warn filtered at error", level: "error", log: func(l *slog.Logger) { l.Warn("view opened") }},
		{name: "unknown level means info", level: "verbose", log: func(l *slog.Logger) { l.Debug("view opened") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			tt.log(logging.New(tt.level, "json", &buf))

			out := buf.String()
			if got := out != ""; got != tt.wantOutput {
				t.Fatalf("wrote output = %v, want %v (%q)", got, tt.wantOutput, out)
			}
			if got := strings.Contains(out, `"source"`); got != tt.wantSource {
				t.Errorf("has source = %v, want %v", got, tt.wantSource)
			}
		})
	}
}

func TestNew_Formats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   string
	}{
		{format: "json", want: `"level":"INFO"`},
		{format: "text", want: "level=INFO"},
		{format: "xml", want: `"level":"INFO"`},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", tt.format, &buf).Info("view loaded")
			if out := buf.String(); !strings.Contains(out, tt.want) || !strings.Contains(out, "view loaded") {
				t.Errorf("output = %q, want it to contain %q", out, tt.want)
			}
		})
	}
}

func TestContext(t *testing.T) {
	t.Parallel()

	if logging.FromContext(context.Background()) != slog.Default() {
		t.Error("FromContext(bare) is not slog.Default()")
	}

	first := logging.New("info", "json", &bytes.Buffer{})
	second := logging.New("debug", "json", &bytes.Buffer{})
	ctx := logging.WithLogger(context.Background(), first)
	if logging.FromContext(ctx) != first {
		t.Error("FromContext did not return the stored logger")
	}
	if logging.FromContext(logging.WithLogger(ctx, second)) != second {
		t.Error("FromContext returned the outer logger, want the innermost")
	}
}

func TestNew_Redaction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		attr   slog.Attr
		secret string
	}{
		{name: "authorization field", attr: slog.String("authorization", "Bearer merchant-session"), secret: "merchant-session"},
		{name: "password field", attr: slog.String("password", "hunter2"), secret: "hunter2"},
		{name: "token field", attr: slog.String("token", "static-api-token"), secret: "static-api-token"},
		{name: "payout account", attr: slog.String("accountNo", "0123456789"), secret: "0123456789"},
		{name: "bearer in free text", attr: slog.String("raw_header", "Bearer eyJhbGciOiJSUzI1NiJ9"), secret: "eyJhbGciOiJSUzI1NiJ9"},
		{name: "inline api key", attr: slog.String("detail", "api_key=abc123"), secret: "abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", "json", &buf).Info("merchant call", tt.attr)

			out := buf.String()
			if strings.Contains(out, tt.secret) {
				t.Errorf("output = %q, want %q redacted", out, tt.secret)
			}
			if !strings.Contains(out, "[REDACTED]") {
				t.Errorf("output = %q, want [REDACTED] marker", out)
			}
		})
	}
}

func TestNew_KeepsOrdinaryFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logging.New("info", "json", &buf).Info("request completed",
		slog.String("view_id", "v-123"),
		slog.String("path", "/api/v1/views"),
	)

	for _, want := range []string{"v-123", "/api/v1/views"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output = %q, want it to contain %q", buf.String(), want)
		}
	}
}

func TestIsSensitiveHeader(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]bool{
		"Authorization":     true,
		"Cookie":            true,
		"X-Api-Key":         true,
		"Sec-Websocket-Key": true,
		"X-Request-Id":      false,
		"Accept":            false,
	} {
		if got := logging.IsSensitiveHeader(name); got != want {
			t.Errorf("IsSensitiveHeader(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestOutput(t *testing.T) {
	t.Parallel()

	t.Run("console only", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		w, closer := logging.Output(&buf, logging.FileOptions{})
		t.Cleanup(func() { _ = closer.Close() })
		if w != &buf {
			t.Error("Output() without a path should return the console writer")
		}
	})

	t.Run("rotated file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "dashboard.log")

		var buf bytes.Buffer
		w, closer := logging.Output(&buf, logging.FileOptions{Path: path, MaxSizeMB: 1})
		logging.New("info", "json", w).Info("view opened", slog.String("view_id", "v-1"))
		if err := closer.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading log file: %v", err)
		}
		if !strings.Contains(string(data), "v-1") {
			t.Errorf("log file = %q, want it to contain the record", data)
		}
		if !strings.Contains(buf.String(), "v-1") {
			t.Error("console output missing the record")
		}
	})
}

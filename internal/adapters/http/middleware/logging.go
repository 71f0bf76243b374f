package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jsamuelsen11/merchant-dashboard/internal/platform/logging"
)

// Logging stores a request-scoped logger carrying the request and
// correlation IDs, then logs one line per request once it completes. The
// level follows the status: 5xx logs at error, 4xx at warn.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, child)

			if child.Enabled(ctx, slog.LevelDebug) {
				child.DebugContext(ctx, "request headers", headerArgs(r.Header)...)
			}

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r.WithContext(ctx))

			attrs := []any{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routeOf(r)),
				slog.Int("status", rw.statusCode),
				slog.Int64("bytes", rw.written),
				slog.Duration("duration", time.Since(start)),
			}
			if id := viewIDOf(r); id != "" {
				attrs = append(attrs, slog.String("view_id", id))
			}
			child.Log(ctx, levelFor(rw.statusCode), "request completed", attrs...)
		})
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// headerArgs renders headers as log attributes with credentials masked.
// Multi-value headers are comma joined.
func headerArgs(h http.Header) []any {
	args := make([]any, 0, len(h))
	for key, vals := range h {
		v := strings.Join(vals, ",")
		if logging.IsSensitiveHeader(key) {
			v = "[REDACTED]"
		}
		args = append(args, slog.String(key, v))
	}
	return args
}

package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

const viewRoute = "/api/v1/views/{id}"

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// routed mounts h on the view route behind mw, the way the server installs
// middleware with chi's Use.
func routed(mw func(http.Handler) http.Handler, h http.HandlerFunc) http.Handler {
	r := chi.NewRouter()
	r.Use(mw)
	r.Get(viewRoute, h)
	r.Get("/health/live", h)
	return r
}

package middleware

import (
	"net/http"
	"strings"

	appctx "github.com/jsamuelsen11/merchant-dashboard/internal/app/context"
)

// AppContext gives each request a fresh appctx.RequestContext, the
// per-request cache the dashboard service reads merchant data through and
// stages reward updates on. Websocket upgrades are skipped: a view stream
// outlives any request-scoped cache.
//
// It must run after CorrelationID so the cache's context carries the IDs.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.EqualFold(r.Header.Get("Upgrade"), "websocket") {
				next.ServeHTTP(w, r)
				return
			}
			rc := appctx.New(r.Context())
			next.ServeHTTP(w, r.WithContext(appctx.WithRequestContext(r.Context(), rc)))
		})
	}
}

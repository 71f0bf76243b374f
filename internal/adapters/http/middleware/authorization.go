package middleware

import (
	"net/http"

	"github.com/jsamuelsen11/merchant-dashboard/internal/platform/httpclient"
)

const headerAuthorization = "Authorization"

// ForwardAuthorization returns middleware that passes the caller's
// Authorization header on to merchant API calls made for the request. Views
// opened by the request keep it for their later fetches. Requests without
// the header fall back to the client's configured token.
func ForwardAuthorization() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get(headerAuthorization)
			if auth == "" {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(httpclient.WithAuthorization(r.Context(), auth)))
		})
	}
}

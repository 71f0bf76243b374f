package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// unmatchedRoute labels requests that no route matched, keeping metric
// cardinality bounded.
const unmatchedRoute = "unmatched"

// routeOf returns the chi pattern the request was routed to, such as
// "/api/v1/views/{id}". It is only complete once the handler has returned.
func routeOf(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return unmatchedRoute
}

// viewIDOf returns the {id} path parameter of a view route, or "".
func viewIDOf(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		return rctx.URLParam("id")
	}
	return ""
}

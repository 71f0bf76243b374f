// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/merchant-dashboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/merchant-dashboard/internal/adapters/http/middleware"
)

// Handlers are the inbound handlers served by the router.
type Handlers struct {
	Health   *handlers.HealthHandler
	Views    *handlers.ViewHandler
	Stream   *handlers.StreamHandler
	Export   *handlers.ExportHandler
	Points   *handlers.PointsHandler
	Merchant *handlers.MerchantHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. requestTimeout bounds
// every API route except the view stream; zero disables it.
func NewRouter(h Handlers, requestTimeout time.Duration, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		// Long-lived websocket, never under the request timeout.
		r.Get("/views/{id}/stream", h.Stream.StreamView)

		r.Group(func(r chi.Router) {
			if requestTimeout > 0 {
				r.Use(middleware.Timeout(requestTimeout))
			}

			// Live list views.
			r.Get("/views", h.Views.ListViews)
			r.Post("/views", h.Views.CreateView)
			r.Get("/views/{id}", h.Views.GetView)
			r.Delete("/views/{id}", h.Views.DeleteView)
			r.Post("/views/{id}/actions", h.Views.DispatchAction)
			r.Post("/views/{id}/refresh", h.Views.RefreshView)
			r.Get("/views/{id}/export", h.Export.ExportView)

			// One-shot list pages.
			r.Get("/points/distributed", h.Points.ListDistributed)
			r.Get("/points/redeemed", h.Points.ListRedeemed)

			// Merchant cards.
			r.Get("/merchant/bank-account", h.Merchant.GetBankAccount)
			r.Get("/merchant/metrics", h.Merchant.GetMetrics)
			r.Get("/merchant/reward-config", h.Merchant.GetRewardConfig)
			r.Put("/merchant/reward-config", h.Merchant.UpdateRewardConfig)
			r.Get("/merchant/customers", h.Merchant.GetTopCustomers)
			r.Get("/merchant/overview", h.Merchant.GetOverview)
		})
	})

	return r
}

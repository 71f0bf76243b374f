package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/merchant-dashboard/internal/adapters/http"
	"github.com/jsamuelsen11/merchant-dashboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/merchant"
	"github.com/jsamuelsen11/merchant-dashboard/internal/ports"
	"github.com/jsamuelsen11/merchant-dashboard/mocks"
)

type testDeps struct {
	views    *mocks.MockViewService
	svc      *mocks.MockDashboardService
	registry *mocks.MockHealthRegistry
}

func newTestHandlers(t *testing.T) (adapthttp.Handlers, testDeps) {
	t.Helper()
	deps := testDeps{
		views:    mocks.NewMockViewService(t),
		svc:      mocks.NewMockDashboardService(t),
		registry: mocks.NewMockHealthRegistry(t),
	}
	return adapthttp.Handlers{
		Health:   handlers.NewHealthHandler(deps.registry),
		Views:    handlers.NewViewHandler(deps.views, 0),
		Stream:   handlers.NewStreamHandler(deps.views, nil),
		Export:   handlers.NewExportHandler(deps.views),
		Points:   handlers.NewPointsHandler(deps.svc, 10),
		Merchant: handlers.NewMerchantHandler(deps.svc),
	}, deps
}

func newTestRouter(t *testing.T) (http.Handler, testDeps) {
	t.Helper()
	h, deps := newTestHandlers(t)
	return adapthttp.NewRouter(h, time.Second), deps
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodGet, "/api/v1/views"},
		{http.MethodPost, "/api/v1/views"},
		{http.MethodGet, "/api/v1/views/{id}"},
		{http.MethodDelete, "/api/v1/views/{id}"},
		{http.MethodPost, "/api/v1/views/{id}/actions"},
		{http.MethodPost, "/api/v1/views/{id}/refresh"},
		{http.MethodGet, "/api/v1/views/{id}/export"},
		{http.MethodGet, "/api/v1/views/{id}/stream"},
		{http.MethodGet, "/api/v1/points/distributed"},
		{http.MethodGet, "/api/v1/points/redeemed"},
		{http.MethodGet, "/api/v1/merchant/bank-account"},
		{http.MethodGet, "/api/v1/merchant/metrics"},
		{http.MethodGet, "/api/v1/merchant/reward-config"},
		{http.MethodPut, "/api/v1/merchant/reward-config"},
		{http.MethodGet, "/api/v1/merchant/customers"},
		{http.MethodGet, "/api/v1/merchant/overview"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	h, deps := newTestHandlers(t)

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router := adapthttp.NewRouter(h, 0, testMW)

	deps.registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_RequestTimeoutBoundsAPIRoutes(t *testing.T) {
	t.Parallel()

	router, deps := newTestRouter(t)

	var hadDeadline bool
	deps.svc.EXPECT().PrimaryBankAccount(mock.Anything).
		RunAndReturn(func(ctx context.Context) (*merchant.BankAccount, error) {
			_, hadDeadline = ctx.Deadline()
			return &merchant.BankAccount{BankName: "Zenith", AccountNumber: "0123456789"}, nil
		})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/merchant/bank-account", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !hadDeadline {
		t.Error("handler context has no deadline, want request timeout applied")
	}
}

func TestRouter_IntegrationListViews(t *testing.T) {
	t.Parallel()

	router, deps := newTestRouter(t)

	deps.views.EXPECT().List().Return([]ports.ViewInfo{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/views", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_ViewIDReachesHandler(t *testing.T) {
	t.Parallel()

	router, deps := newTestRouter(t)

	deps.views.EXPECT().Get("abc").Return(ports.ViewInfo{}, nil, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/views/abc", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/views", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/merchant-dashboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/view"
	"github.com/jsamuelsen11/merchant-dashboard/internal/platform/logging"
	"github.com/jsamuelsen11/merchant-dashboard/internal/ports"
)

// DefaultAwaitTimeout bounds how long ?wait=true blocks.
const DefaultAwaitTimeout = 10 * time.Second

// ViewHandler handles the live list view endpoints.
type ViewHandler struct {
	views        ports.ViewService
	awaitTimeout time.Duration
}

// NewViewHandler creates a ViewHandler. A non-positive awaitTimeout selects
// DefaultAwaitTimeout.
func NewViewHandler(views ports.ViewService, awaitTimeout time.Duration) *ViewHandler {
	if awaitTimeout <= 0 {
		awaitTimeout = DefaultAwaitTimeout
	}
	return &ViewHandler{views: views, awaitTimeout: awaitTimeout}
}

// CreateView handles POST /api/v1/views.
func (h *ViewHandler) CreateView(w http.ResponseWriter, r *http.Request) {
	var req dto.OpenViewRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	info, v, err := h.views.Open(r.Context(), req.ToPort())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/views/"+info.ID)
	h.respond(w, r, http.StatusCreated, info, v)
}

// ListViews handles GET /api/v1/views.
func (h *ViewHandler) ListViews(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.NewViewListResponse(h.views.List()))
}

// GetView handles GET /api/v1/views/{id}. With ?wait=true it blocks until
// the view is not loading.
func (h *ViewHandler) GetView(w http.ResponseWriter, r *http.Request) {
	info, v, ok := lookupView(w, r, h.views)
	if !ok {
		return
	}
	h.respond(w, r, http.StatusOK, info, v)
}

// DispatchAction handles POST /api/v1/views/{id}/actions.
func (h *ViewHandler) DispatchAction(w http.ResponseWriter, r *http.Request) {
	info, v, ok := lookupView(w, r, h.views)
	if !ok {
		return
	}

	var req dto.ActionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	action := req.ToAction()
	if err := v.Dispatch(action); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	logging.FromContext(r.Context()).DebugContext(r.Context(), "view action dispatched",
		slog.String("view_id", info.ID),
		slog.String("action", action.Kind()),
	)
	h.respond(w, r, http.StatusOK, info, v)
}

// RefreshView handles POST /api/v1/views/{id}/refresh.
func (h *ViewHandler) RefreshView(w http.ResponseWriter, r *http.Request) {
	info, v, ok := lookupView(w, r, h.views)
	if !ok {
		return
	}
	if err := v.Refresh(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	h.respond(w, r, http.StatusAccepted, info, v)
}

// DeleteView handles DELETE /api/v1/views/{id}.
func (h *ViewHandler) DeleteView(w http.ResponseWriter, r *http.Request) {
	if err := h.views.Close(chi.URLParam(r, "id")); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// respond writes the view snapshot, first waiting for it to settle when
// the request asks to.
func (h *ViewHandler) respond(w http.ResponseWriter, r *http.Request, status int, info ports.ViewInfo, v ports.ListView) {
	var meta view.Meta
	if wantsWait(r) {
		ctx, cancel := context.WithTimeout(r.Context(), h.awaitTimeout)
		defer cancel()

		var err error
		meta, err = v.Await(ctx)
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
	} else {
		meta = v.Meta()
	}
	writeJSON(w, status, dto.NewViewResponse(info, meta, v.Rows()))
}

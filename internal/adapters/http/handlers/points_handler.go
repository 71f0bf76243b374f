package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/merchant-dashboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/query"
	"github.com/jsamuelsen11/merchant-dashboard/internal/ports"
)

// PointsHandler serves one-shot pages of the point lists, without keeping a
// view open.
type PointsHandler struct {
	svc      ports.DashboardService
	pageSize int
}

// NewPointsHandler creates a PointsHandler. pageSize applies when a request
// gives none.
func NewPointsHandler(svc ports.DashboardService, pageSize int) *PointsHandler {
	if pageSize <= 0 {
		pageSize = query.DefaultPageSize
	}
	return &PointsHandler{svc: svc, pageSize: pageSize}
}

// ListDistributed handles GET /api/v1/points/distributed.
func (h *PointsHandler) ListDistributed(w http.ResponseWriter, r *http.Request) {
	q, ok := parseListQuery(w, r)
	if !ok {
		return
	}
	state := q.State(h.pageSize)

	res, err := h.svc.ListDistributions(r.Context(), state)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewListResponse(res, state.Page, dto.NewDistributionResponses))
}

// ListRedeemed handles GET /api/v1/points/redeemed.
func (h *PointsHandler) ListRedeemed(w http.ResponseWriter, r *http.Request) {
	q, ok := parseListQuery(w, r)
	if !ok {
		return
	}
	state := q.State(h.pageSize)

	res, err := h.svc.ListRedemptions(r.Context(), state)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewListResponse(res, state.Page, dto.NewRedemptionResponses))
}

package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/merchant-dashboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/merchant-dashboard/internal/ports"
)

// defaultTopCustomers is how many customers the table shows without ?limit.
const defaultTopCustomers = 10

// MerchantHandler serves the merchant level cards: bank account, summary
// metrics, reward configuration, top customers and the overview.
type MerchantHandler struct {
	svc ports.DashboardService
}

// NewMerchantHandler creates a MerchantHandler.
func NewMerchantHandler(svc ports.DashboardService) *MerchantHandler {
	return &MerchantHandler{svc: svc}
}

// GetBankAccount handles GET /api/v1/merchant/bank-account.
func (h *MerchantHandler) GetBankAccount(w http.ResponseWriter, r *http.Request) {
	bank, err := h.svc.PrimaryBankAccount(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewBankAccountResponse(bank))
}

// GetMetrics handles GET /api/v1/merchant/metrics.
func (h *MerchantHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	q, ok := parseListQuery(w, r)
	if !ok {
		return
	}

	m, err := h.svc.Metrics(r.Context(), q.Selection())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewMetricsResponse(m))
}

// GetRewardConfig handles GET /api/v1/merchant/reward-config.
func (h *MerchantHandler) GetRewardConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.svc.RewardConfig(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewRewardConfigResponse(cfg))
}

// UpdateRewardConfig handles PUT /api/v1/merchant/reward-config.
func (h *MerchantHandler) UpdateRewardConfig(w http.ResponseWriter, r *http.Request) {
	var req dto.RewardConfigRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	cfg, err := h.svc.UpdateRewardConfig(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewRewardConfigResponse(cfg))
}

// GetTopCustomers handles GET /api/v1/merchant/customers.
func (h *MerchantHandler) GetTopCustomers(w http.ResponseWriter, r *http.Request) {
	q, ok := parseListQuery(w, r)
	if !ok {
		return
	}
	limit := q.Limit
	if limit == 0 {
		limit = defaultTopCustomers
	}

	customers, err := h.svc.TopCustomers(r.Context(), q.Selection(), limit)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"customers": dto.NewCustomerResponses(customers)})
}

// GetOverview handles GET /api/v1/merchant/overview. Sections that fail are
// null and listed under errors; only a total failure is an error response.
func (h *MerchantHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	q, ok := parseListQuery(w, r)
	if !ok {
		return
	}

	ov, err := h.svc.Overview(r.Context(), q.Selection())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewOverviewResponse(ov))
}

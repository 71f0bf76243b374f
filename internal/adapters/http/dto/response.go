package dto

import (
	"time"

	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/daterange"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/merchant"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/points"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/query"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/view"
	"github.com/jsamuelsen11/merchant-dashboard/internal/ports"
)

// RangeResponse is an effective date range as YYYY-MM-DD bounds.
type RangeResponse struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Fallback bool   `json:"fallback"`
}

// NewRangeResponse converts an effective range.
func NewRangeResponse(r query.Range) RangeResponse {
	from, to := r.ISO()
	return RangeResponse{From: from, To: to, Fallback: r.Fallback}
}

// PaginationResponse is the page envelope plus navigation hints.
type PaginationResponse struct {
	Page                int  `json:"page"`
	TotalPages          int  `json:"totalPages"`
	TotalElements       int  `json:"totalElements"`
	CurrentPageElements int  `json:"currentPageElements"`
	PageSize            int  `json:"pageSize"`
	HasNext             bool `json:"hasNext"`
	HasPrev             bool `json:"hasPrev"`
}

// NewPaginationResponse converts p for the zero-based page.
func NewPaginationResponse(p points.Pagination, page int) PaginationResponse {
	return PaginationResponse{
		Page:                page,
		TotalPages:          p.TotalPages,
		TotalElements:       p.TotalElements,
		CurrentPageElements: p.CurrentPageElements,
		PageSize:            p.PageSize,
		HasNext:             p.HasNext(page),
		HasPrev:             p.HasPrev(page),
	}
}

// QueryStateResponse is the reducer state of a view.
type QueryStateResponse struct {
	Page       int     `json:"page"`
	PageSize   int     `json:"pageSize"`
	SearchText string  `json:"searchText"`
	Search     string  `json:"search"`
	SearchType string  `json:"searchType"`
	Preset     string  `json:"preset"`
	From       *string `json:"from,omitempty"`
	To         *string `json:"to,omitempty"`
}

// NewQueryStateResponse converts s.
func NewQueryStateResponse(s query.State) QueryStateResponse {
	return QueryStateResponse{
		Page:       s.Page,
		PageSize:   s.PageSize,
		SearchText: s.SearchText,
		Search:     s.Search(),
		SearchType: s.SearchField.String(),
		Preset:     s.Dates.Preset.String(),
		From:       isoPtr(s.Dates.Start),
		To:         isoPtr(s.Dates.End),
	}
}

func isoPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := daterange.FormatISO(*t)
	return &s
}

// ViewResponse is a snapshot of an open view.
type ViewResponse struct {
	ID          string             `json:"id"`
	Kind        string             `json:"kind"`
	Title       string             `json:"title"`
	CreatedAt   time.Time          `json:"createdAt"`
	Version     uint64             `json:"version"`
	Status      string             `json:"status"`
	ShouldFetch bool               `json:"shouldFetch"`
	Debouncing  bool               `json:"debouncing"`
	State       QueryStateResponse `json:"state"`
	Range       RangeResponse      `json:"range"`
	Params      string             `json:"params,omitempty"`
	Pagination  PaginationResponse `json:"pagination"`
	Error       string             `json:"error,omitempty"`
	UpdatedAt   time.Time          `json:"updatedAt"`
	Closed      bool               `json:"closed,omitempty"`
	Rows        any                `json:"rows"`
}

// NewViewResponse combines a view's identity, metadata and rows. rows is
// the dynamic []T returned by ports.ListView.Rows.
func NewViewResponse(info ports.ViewInfo, meta view.Meta, rows any) ViewResponse {
	resp := ViewResponse{
		ID:          info.ID,
		Kind:        info.Kind.String(),
		Title:       info.Kind.Title(),
		CreatedAt:   info.CreatedAt,
		Version:     meta.Version,
		Status:      meta.Status.String(),
		ShouldFetch: meta.ShouldFetch,
		Debouncing:  meta.Debouncing,
		State:       NewQueryStateResponse(meta.State),
		Range:       NewRangeResponse(meta.Range),
		Pagination:  NewPaginationResponse(meta.Pagination, meta.State.Page),
		UpdatedAt:   meta.UpdatedAt,
		Closed:      meta.Closed,
		Rows:        NewRowsResponse(rows),
	}
	if meta.Params != (query.Params{}) {
		resp.Params = meta.Params.Encode()
	}
	if meta.Err != nil {
		resp.Error = meta.Err.Error()
	}
	return resp
}

// ViewSummaryResponse is one entry of GET /api/v1/views.
type ViewSummaryResponse struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewViewListResponse converts the open views.
func NewViewListResponse(infos []ports.ViewInfo) []ViewSummaryResponse {
	out := make([]ViewSummaryResponse, len(infos))
	for i, info := range infos {
		out[i] = ViewSummaryResponse{ID: info.ID, Kind: info.Kind.String(), CreatedAt: info.CreatedAt}
	}
	return out
}

// DistributionResponse is one points distributed row.
type DistributionResponse struct {
	TransactionReference string    `json:"transactionReference"`
	POSID                string    `json:"posId"`
	CustomerName         string    `json:"customerName"`
	BranchName           string    `json:"branchName"`
	POSLocation          string    `json:"posLocation"`
	Category             string    `json:"transactionCategory"`
	Type                 string    `json:"type"`
	TotalAmountPaid      float64   `json:"totalAmountPaid"`
	Settled              float64   `json:"settled"`
	Fees                 float64   `json:"fees"`
	PaidInNumoniPoints   float64   `json:"paidInNumoniPoints"`
	PaidInBrandPoints    float64   `json:"paidInBrandPoints"`
	IssuedPoints         float64   `json:"issuedPoints"`
	Timestamp            time.Time `json:"timestamp"`
}

// RedemptionResponse is one points redeemed row.
type RedemptionResponse struct {
	TransactionReference string    `json:"transactionReference"`
	POSID                string    `json:"posId"`
	CustomerName         string    `json:"customerName"`
	BranchName           string    `json:"branchName"`
	POSLocation          string    `json:"posLocation"`
	Type                 string    `json:"type"`
	Amount               float64   `json:"amount"`
	PointsRedeemed       float64   `json:"pointsRedeemed"`
	Status               string    `json:"status"`
	Timestamp            time.Time `json:"timestamp"`
}

// NewDistributionResponses converts distribution rows.
func NewDistributionResponses(rows []points.Distribution) []DistributionResponse {
	out := make([]DistributionResponse, len(rows))
	for i, d := range rows {
		out[i] = DistributionResponse{
			TransactionReference: d.TransactionReference,
			POSID:                d.POSID,
			CustomerName:         d.CustomerName,
			BranchName:           d.BranchName,
			POSLocation:          d.POSLocation,
			Category:             d.Category,
			Type:                 string(d.Type),
			TotalAmountPaid:      d.TotalAmountPaid,
			Settled:              d.Settled,
			Fees:                 d.Fees,
			PaidInNumoniPoints:   d.PaidInNumoniPoints,
			PaidInBrandPoints:    d.PaidInBrandPoints,
			IssuedPoints:         d.IssuedPoints,
			Timestamp:            d.Timestamp,
		}
	}
	return out
}

// NewRedemptionResponses converts redemption rows.
func NewRedemptionResponses(rows []points.Redemption) []RedemptionResponse {
	out := make([]RedemptionResponse, len(rows))
	for i, r := range rows {
		out[i] = RedemptionResponse{
			TransactionReference: r.TransactionReference,
			POSID:                r.POSID,
			CustomerName:         r.CustomerName,
			BranchName:           r.BranchName,
			POSLocation:          r.POSLocation,
			Type:                 string(r.Type),
			Amount:               r.Amount,
			PointsRedeemed:       r.PointsRedeemed,
			Status:               r.Status,
			Timestamp:            r.Timestamp,
		}
	}
	return out
}

// NewRowsResponse converts the rows of either list kind. Unknown row types
// yield an empty list.
func NewRowsResponse(rows any) any {
	switch r := rows.(type) {
	case []points.Distribution:
		return NewDistributionResponses(r)
	case []points.Redemption:
		return NewRedemptionResponses(r)
	default:
		return []struct{}{}
	}
}

// ListResponse is one stateless list page. Data is empty and Params unset
// when ShouldFetch is false.
type ListResponse[T any] struct {
	ShouldFetch bool               `json:"shouldFetch"`
	Range       RangeResponse      `json:"range"`
	Params      string             `json:"params,omitempty"`
	Data        []T                `json:"data"`
	Pagination  PaginationResponse `json:"pagination"`
}

// NewListResponse converts res, mapping each row with convert.
func NewListResponse[R, T any](res *ports.ListResult[R], page int, convert func([]R) []T) ListResponse[T] {
	resp := ListResponse[T]{
		ShouldFetch: res.ShouldFetch,
		Range:       NewRangeResponse(res.Range),
		Data:        convert(res.Page.Data),
		Pagination:  NewPaginationResponse(res.Page.Pagination, page),
	}
	if res.ShouldFetch {
		resp.Params = res.Params.Encode()
	}
	return resp
}

// BankAccountResponse is the payout account card. The account number is
// masked.
type BankAccountResponse struct {
	BankName          string `json:"bankName"`
	AccountNumber     string `json:"accountNumber"`
	AccountHolderName string `json:"accountHolderName"`
	Primary           bool   `json:"primary"`
	Status            string `json:"status,omitempty"`
}

// NewBankAccountResponse converts b.
func NewBankAccountResponse(b *merchant.BankAccount) *BankAccountResponse {
	if b == nil {
		return nil
	}
	return &BankAccountResponse{
		BankName:          b.BankName,
		AccountNumber:     b.MaskedAccountNumber(),
		AccountHolderName: b.AccountHolderName,
		Primary:           b.Primary,
		Status:            b.Status(),
	}
}

// MetricResponse is one summary card.
type MetricResponse struct {
	Key   string  `json:"key"`
	Title string  `json:"title"`
	Value string  `json:"value"`
	Raw   float64 `json:"raw"`
}

// MetricsResponse holds the summary cards for a range.
type MetricsResponse struct {
	Range   RangeResponse    `json:"range"`
	Metrics []MetricResponse `json:"metrics"`
}

// NewMetricsResponse converts m.
func NewMetricsResponse(m *ports.MetricsResult) *MetricsResponse {
	if m == nil {
		return nil
	}
	resp := &MetricsResponse{
		Range:   NewRangeResponse(m.Range),
		Metrics: make([]MetricResponse, len(m.Metrics)),
	}
	for i, c := range m.Metrics {
		resp.Metrics[i] = MetricResponse{Key: c.Key, Title: c.Title, Value: c.Value, Raw: c.Raw}
	}
	return resp
}

// RewardConfigResponse is the reward configuration with display values.
type RewardConfigResponse struct {
	ReceiveMethod    string `json:"receiveMethod"`
	RewardCap        int64  `json:"rewardCap"`
	RewardCapDisplay string `json:"rewardCapDisplay"`
	PointExpiration  string `json:"pointExpiration"`
	ExpirationLabel  string `json:"expirationLabel"`
	ExpirationDays   int    `json:"expirationDays"`
}

// NewRewardConfigResponse converts c.
func NewRewardConfigResponse(c *merchant.RewardConfig) *RewardConfigResponse {
	if c == nil {
		return nil
	}
	return &RewardConfigResponse{
		ReceiveMethod:    string(c.ReceiveMethod),
		RewardCap:        c.RewardCap,
		RewardCapDisplay: merchant.FormatCount(int(c.RewardCap)),
		PointExpiration:  string(c.Expiration),
		ExpirationLabel:  c.Expiration.Label(),
		ExpirationDays:   c.Expiration.Days(),
	}
}

// CustomerResponse is one row of the top customers table.
type CustomerResponse struct {
	Rank              int     `json:"rank"`
	CustomerID        string  `json:"customerId"`
	CustomerName      string  `json:"customerName"`
	TotalTransactions int     `json:"totalTransactions"`
	TotalSpent        float64 `json:"totalSpent"`
	TotalSpentDisplay string  `json:"totalSpentDisplay"`
	MostShoppedBranch string  `json:"mostShoppedBranch"`
}

// NewCustomerResponses converts ranked customers.
func NewCustomerResponses(in []merchant.CustomerRank) []CustomerResponse {
	out := make([]CustomerResponse, len(in))
	for i, c := range in {
		out[i] = CustomerResponse{
			Rank:              c.Rank,
			CustomerID:        c.CustomerID,
			CustomerName:      c.CustomerName,
			TotalTransactions: c.TotalTransactions,
			TotalSpent:        c.TotalSpent,
			TotalSpentDisplay: merchant.FormatAmount(c.TotalSpent),
			MostShoppedBranch: c.MostShoppedBranch,
		}
	}
	return out
}

// SectionErrorResponse names an overview section that failed to load.
type SectionErrorResponse struct {
	Section string `json:"section"`
	Error   string `json:"error"`
}

// OverviewResponse is the landing page. Failed sections are null and
// listed in Errors.
type OverviewResponse struct {
	Bank    *BankAccountResponse   `json:"bank"`
	Metrics *MetricsResponse       `json:"metrics"`
	Reward  *RewardConfigResponse  `json:"reward"`
	Errors  []SectionErrorResponse `json:"errors,omitempty"`
}

// NewOverviewResponse converts ov.
func NewOverviewResponse(ov *ports.Overview) OverviewResponse {
	resp := OverviewResponse{
		Bank:    NewBankAccountResponse(ov.Bank),
		Metrics: NewMetricsResponse(ov.Metrics),
		Reward:  NewRewardConfigResponse(ov.Reward),
	}
	for _, e := range ov.Errors {
		resp.Errors = append(resp.Errors, SectionErrorResponse{Section: e.Section, Error: e.Err.Error()})
	}
	return resp
}

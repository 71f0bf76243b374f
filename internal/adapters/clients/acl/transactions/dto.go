// Package transactions translates the merchant API's points distributed and
// points redeemed pages.
package transactions

// PaginationDTO matches the pagination block of every list response.
type PaginationDTO struct {
	TotalPages          int `json:"totalPages"`
	TotalElements       int `json:"totalElements"`
	CurrentPageElements int `json:"currentPageElements"`
	PageSize            int `json:"pageSize"`
}

// PageDTO is the list envelope: {"data": [...], "pagination": {...}}.
type PageDTO[T any] struct {
	Data       []T            `json:"data"`
	Pagination *PaginationDTO `json:"pagination"`
}

// DistributionDTO is one row of GET /merchant/points-distributed.
type DistributionDTO struct {
	TransactionReference string   `json:"transactionReference"`
	POSID                string   `json:"posId"`
	CustomerName         string   `json:"customerName"`
	BranchName           string   `json:"branchName"`
	POSLocation          string   `json:"posLocation"`
	TransactionCategory  string   `json:"transactionCategory"`
	Type                 string   `json:"type"`
	TotalAmountPaid      *float64 `json:"totalAmountPaid"`
	Settled              *float64 `json:"settled"`
	Fees                 *float64 `json:"fees"`
	PaidInNumoniPoints   *float64 `json:"paidInNumoniPoints"`
	PaidInBrandPoints    *float64 `json:"paidInBrandPoints"`
	IssuedPoints         *float64 `json:"issuedPoints"`
	Timestamp            string   `json:"timestamp"`
}

// RedemptionDTO is one row of GET /merchant/points-redeemed.
type RedemptionDTO struct {
	TransactionReference string   `json:"transactionReference"`
	POSID                string   `json:"posId"`
	CustomerName         string   `json:"customerName"`
	BranchName           string   `json:"branchName"`
	POSLocation          string   `json:"posLocation"`
	Type                 string   `json:"type"`
	Amount               *float64 `json:"amount"`
	PointsRedeemed       *float64 `json:"pointsRedeemed"`
	Status               string   `json:"status"`
	Timestamp            string   `json:"timestamp"`
}

// Package points defines the transaction rows shown in the points
// distributed and points redeemed lists, and the page envelope they
// arrive in.
package points

import "time"

// Kind identifies which point list a view shows.
type Kind string

const (
	KindDistributed Kind = "distributed"
	KindRedeemed    Kind = "redeemed"
)

// IsValid returns true if the kind is one of the defined constants.
func (k Kind) IsValid() bool {
	return k == KindDistributed || k == KindRedeemed
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// Title is the list heading.
func (k Kind) Title() string {
	switch k {
	case KindDistributed:
		return "Points Distributed"
	case KindRedeemed:
		return "Points Redeemed"
	default:
		return string(k)
	}
}

// TransactionType distinguishes point issuance from other movements.
type TransactionType string

const (
	TypeIssue  TransactionType = "ISSUE"
	TypeRedeem TransactionType = "REDEEM"
)

// Distribution is one row of the points distributed list.
type Distribution struct {
	TransactionReference string
	POSID                string
	CustomerName         string
	BranchName           string
	POSLocation          string
	Category             string
	Type                 TransactionType
	TotalAmountPaid      float64
	Settled              float64
	Fees                 float64
	PaidInNumoniPoints   float64
	PaidInBrandPoints    float64
	IssuedPoints         float64
	Timestamp            time.Time
}

// Redemption is one row of the points redeemed list.
type Redemption struct {
	TransactionReference string
	POSID                string
	CustomerName         string
	BranchName           string
	POSLocation          string
	Type                 TransactionType
	Amount               float64
	PointsRedeemed       float64
	Status               string
	Timestamp            time.Time
}

// Pagination describes where a page sits in the full result set. It is
// produced by the merchant API and never modified locally.
type Pagination struct {
	TotalPages          int
	TotalElements       int
	CurrentPageElements int
	PageSize            int
}

// HasNext reports whether a page follows the zero-based page.
func (p Pagination) HasNext(page int) bool {
	return page+1 < p.TotalPages
}

// HasPrev reports whether a page precedes the zero-based page.
func (p Pagination) HasPrev(page int) bool {
	return page > 0
}

// Page is one page of rows with its pagination envelope.
type Page[T any] struct {
	Data       []T
	Pagination Pagination
}

// Len returns the number of rows on the page.
func (p Page[T]) Len() int {
	return len(p.Data)
}

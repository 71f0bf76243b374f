package ports

import (
	"context"

	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/daterange"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/merchant"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/points"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/query"
)

// ListResult is one stateless list fetch. When ShouldFetch is false no
// request was made and Page is empty.
type ListResult[T any] struct {
	ShouldFetch bool
	Range       query.Range
	Params      query.Params
	Page        points.Page[T]
}

// MetricsResult holds the summary cards for a range.
type MetricsResult struct {
	Range   query.Range
	Summary merchant.PaymentSummary
	Metrics []merchant.Metric
}

// SectionError records a failed overview section.
type SectionError struct {
	Section string
	Err     error
}

// Overview is the dashboard landing page. Sections are fetched concurrently
// and fail independently: a failed section is nil and listed in Errors.
type Overview struct {
	Bank    *merchant.BankAccount
	Metrics *MetricsResult
	Reward  *merchant.RewardConfig
	Errors  []SectionError
}

// DashboardService defines the service port for one-shot dashboard reads
// and the reward configuration write.
// Implemented by the application layer; called by inbound adapters.
type DashboardService interface {
	// ListDistributions fetches one page for state without keeping a view.
	ListDistributions(ctx context.Context, state query.State) (*ListResult[points.Distribution], error)

	// ListRedemptions fetches one page for state without keeping a view.
	ListRedemptions(ctx context.Context, state query.State) (*ListResult[points.Redemption], error)

	// PrimaryBankAccount returns the merchant's payout account.
	// Returns domain.ErrNotFound if the merchant has none.
	PrimaryBankAccount(ctx context.Context) (*merchant.BankAccount, error)

	// Metrics returns the summary cards for the effective range of sel.
	Metrics(ctx context.Context, sel daterange.Selection) (*MetricsResult, error)

	// RewardConfig returns the reward configuration, or the default one
	// when none has been saved.
	RewardConfig(ctx context.Context) (*merchant.RewardConfig, error)

	// UpdateRewardConfig validates and saves cfg.
	// Returns domain.ErrValidation if cfg is invalid.
	UpdateRewardConfig(ctx context.Context, cfg merchant.RewardConfig) (*merchant.RewardConfig, error)

	// TopCustomers returns customers ranked by spend for the effective
	// range of sel, at most limit of them (all when limit <= 0).
	TopCustomers(ctx context.Context, sel daterange.Selection, limit int) ([]merchant.CustomerRank, error)

	// Overview fetches bank account, metrics and reward configuration
	// concurrently.
	Overview(ctx context.Context, sel daterange.Selection) (*Overview, error)
}

package ports

import (
	"context"

	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/daterange"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/merchant"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/points"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/query"
)

// MerchantClient defines the client port for the downstream merchant API.
// Implemented by the ACL adapter; called by the application layer.
// Methods map 1:1 to downstream endpoints using domain terminology.
type MerchantClient interface {
	// ListDistributions returns one page of the points distributed list.
	// params are sent as given; the caller decides whether to fetch at all.
	ListDistributions(ctx context.Context, params query.Params) (points.Page[points.Distribution], error)

	// ListRedemptions returns one page of the points redeemed list.
	ListRedemptions(ctx context.Context, params query.Params) (points.Page[points.Redemption], error)

	// GetProfile returns the merchant profile including bank accounts.
	GetProfile(ctx context.Context) (*merchant.Profile, error)

	// GetPaymentSummary returns the transaction summary for r.
	GetPaymentSummary(ctx context.Context, r daterange.Range) (*merchant.PaymentSummary, error)

	// GetRewardConfig returns the current reward configuration.
	// Returns domain.ErrNotFound if the merchant has never saved one.
	GetRewardConfig(ctx context.Context) (*merchant.RewardConfig, error)

	// UpdateRewardConfig replaces the reward configuration and returns the
	// stored value.
	UpdateRewardConfig(ctx context.Context, cfg merchant.RewardConfig) (*merchant.RewardConfig, error)

	// ListCustomers returns customer spending for r, unranked.
	ListCustomers(ctx context.Context, r daterange.Range) ([]merchant.CustomerRank, error)
}

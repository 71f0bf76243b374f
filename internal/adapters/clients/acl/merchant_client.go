package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/jsamuelsen11/merchant-dashboard/internal/adapters/clients/acl/account"
	"github.com/jsamuelsen11/merchant-dashboard/internal/adapters/clients/acl/transactions"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/daterange"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/merchant"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/points"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/query"
	"github.com/jsamuelsen11/merchant-dashboard/internal/platform/httpclient"
	"github.com/jsamuelsen11/merchant-dashboard/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.MerchantClient = (*MerchantClient)(nil)
	_ ports.HealthChecker  = (*MerchantClient)(nil)
)

// Merchant API paths.
const (
	pathPointsDistributed = "/merchant/points-distributed"
	pathPointsRedeemed    = "/merchant/points-redeemed"
	pathInfo              = "/merchant/info"
	pathPaymentHistory    = "/merchant/payment-history"
	pathReward            = "/merchant/reward"
	pathCustomers         = "/merchant/customer-analytics"
)

// MerchantClient is the outbound adapter for the merchant API. It
// implements [ports.MerchantClient].
//
// Responses are translated by the [transactions] and [account]
// subpackages; failures are mapped to domain errors by
// [TranslateHTTPError]. Circuit breaking, retries, rate limiting, tracing
// and bearer token forwarding come from the underlying [httpclient.Client].
type MerchantClient struct {
	req    *Requester
	logger *slog.Logger
}

// NewMerchantClient creates a MerchantClient. The client's BaseURL should
// point at the merchant API root.
func NewMerchantClient(client *httpclient.Client, logger *slog.Logger) *MerchantClient {
	return &MerchantClient{
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// ListDistributions fetches one page of GET /merchant/points-distributed.
// The query string keeps the parameter order of params.Encode.
func (c *MerchantClient) ListDistributions(ctx context.Context, params query.Params) (points.Page[points.Distribution], error) {
	var dto transactions.PageDTO[transactions.DistributionDTO]
	if err := c.req.Get(ctx, pathPointsDistributed, params.Encode(), &dto); err != nil {
		return points.Page[points.Distribution]{}, err
	}
	return transactions.ToDomainDistributionPage(dto), nil
}

// ListRedemptions fetches one page of GET /merchant/points-redeemed.
func (c *MerchantClient) ListRedemptions(ctx context.Context, params query.Params) (points.Page[points.Redemption], error) {
	var dto transactions.PageDTO[transactions.RedemptionDTO]
	if err := c.req.Get(ctx, pathPointsRedeemed, params.Encode(), &dto); err != nil {
		return points.Page[points.Redemption]{}, err
	}
	return transactions.ToDomainRedemptionPage(dto), nil
}

// GetProfile fetches GET /merchant/info.
func (c *MerchantClient) GetProfile(ctx context.Context) (*merchant.Profile, error) {
	var env account.Envelope[account.MerchantInfoDTO]
	if err := c.req.Get(ctx, pathInfo, "", &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, fmt.Errorf("merchant profile: %w", domain.ErrNotFound)
	}
	p := account.ToDomainProfile(env.Data)
	return &p, nil
}

// GetPaymentSummary fetches GET /merchant/payment-history for r.
func (c *MerchantClient) GetPaymentSummary(ctx context.Context, r daterange.Range) (*merchant.PaymentSummary, error) {
	var env account.Envelope[account.PaymentSummaryDTO]
	if err := c.req.Get(ctx, pathPaymentHistory, rangeQuery(r), &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		// No transactions in the range.
		return &merchant.PaymentSummary{}, nil
	}
	s := account.ToDomainPaymentSummary(env.Data)
	return &s, nil
}

// GetRewardConfig fetches GET /merchant/reward. A merchant that never saved
// one gets [domain.ErrNotFound], whether the API answers 404 or null.
func (c *MerchantClient) GetRewardConfig(ctx context.Context) (*merchant.RewardConfig, error) {
	var env account.Envelope[account.RewardDTO]
	if err := c.req.Get(ctx, pathReward, "", &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, fmt.Errorf("reward configuration: %w", domain.ErrNotFound)
	}
	cfg := account.ToDomainRewardConfig(env.Data)
	return &cfg, nil
}

// UpdateRewardConfig sends PUT /merchant/reward and returns the stored
// configuration. An empty response echoes cfg.
func (c *MerchantClient) UpdateRewardConfig(ctx context.Context, cfg merchant.RewardConfig) (*merchant.RewardConfig, error) {
	var env account.Envelope[account.RewardDTO]
	if err := c.req.Put(ctx, pathReward, account.ToRewardRequest(cfg), &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return &cfg, nil
	}
	saved := account.ToDomainRewardConfig(env.Data)
	return &saved, nil
}

// ListCustomers fetches GET /merchant/customer-analytics for r.
func (c *MerchantClient) ListCustomers(ctx context.Context, r daterange.Range) ([]merchant.CustomerRank, error) {
	var env account.ListEnvelope[account.CustomerDTO]
	if err := c.req.Get(ctx, pathCustomers, rangeQuery(r), &env); err != nil {
		return nil, err
	}
	return account.ToDomainCustomers(env.Data), nil
}

// rangeQuery renders fromDate and toDate in wire format. url.Values sorts
// keys, which happens to give the same order.
func rangeQuery(r daterange.Range) string {
	from, to := r.Wire()
	return url.Values{"fromDate": {from}, "toDate": {to}}.Encode()
}

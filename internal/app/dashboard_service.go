package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	appctx "github.com/jsamuelsen11/merchant-dashboard/internal/app/context"
	"github.com/jsamuelsen11/merchant-dashboard/internal/app/fanout"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/daterange"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/merchant"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/points"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/query"
	"github.com/jsamuelsen11/merchant-dashboard/internal/ports"
)

// Compile-time check that DashboardService implements ports.DashboardService.
var _ ports.DashboardService = (*DashboardService)(nil)

// Overview sections, in display order.
const (
	SectionBank    = "bank"
	SectionMetrics = "metrics"
	SectionReward  = "reward"
)

const rewardKey = "merchant:reward"

// DashboardService implements ports.DashboardService: stateless list reads
// and the merchant level cards, all through the MerchantClient port.
type DashboardService struct {
	client   ports.MerchantClient
	resolver daterange.Resolver
	logger   *slog.Logger
	now      func() time.Time
}

// NewDashboardService creates a DashboardService. weekStart anchors the
// This Week preset.
func NewDashboardService(client ports.MerchantClient, weekStart time.Weekday, logger *slog.Logger) *DashboardService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DashboardService{
		client:   client,
		resolver: daterange.NewResolver(weekStart),
		logger:   logger,
		now:      time.Now,
	}
}

// ListDistributions fetches one page of points distributed.
func (s *DashboardService) ListDistributions(ctx context.Context, state query.State) (*ports.ListResult[points.Distribution], error) {
	return fetchList(ctx, s, "ListDistributions", state, s.client.ListDistributions)
}

// ListRedemptions fetches one page of points redeemed.
func (s *DashboardService) ListRedemptions(ctx context.Context, state query.State) (*ports.ListResult[points.Redemption], error) {
	return fetchList(ctx, s, "ListRedemptions", state, s.client.ListRedemptions)
}

func fetchList[T any](
	ctx context.Context,
	s *DashboardService,
	operation string,
	state query.State,
	fetch func(context.Context, query.Params) (points.Page[T], error),
) (*ports.ListResult[T], error) {
	rng := query.Effective(s.resolver, state.Dates, s.now())
	res := &ports.ListResult[T]{ShouldFetch: state.ShouldFetch(), Range: rng}
	if !res.ShouldFetch {
		s.logger.DebugContext(ctx, "skipping fetch for incomplete custom range",
			slog.String("operation", operation),
		)
		return res, nil
	}

	res.Params = query.BuildParams(state, rng.Range)
	s.logger.InfoContext(ctx, "fetching list page",
		slog.String("operation", operation),
		slog.String("params", res.Params.Encode()),
	)

	page, err := fetch(ctx, res.Params)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch list page",
			slog.String("operation", operation),
			slog.Any("error", err),
		)
		return nil, err
	}
	res.Page = page
	return res, nil
}

// PrimaryBankAccount returns the account payouts go to.
func (s *DashboardService) PrimaryBankAccount(ctx context.Context) (*merchant.BankAccount, error) {
	profile, err := s.client.GetProfile(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch merchant profile",
			slog.String("operation", "PrimaryBankAccount"),
			slog.Any("error", err),
		)
		return nil, err
	}

	bank, err := profile.PrimaryBank()
	if err != nil {
		return nil, err
	}
	return &bank, nil
}

// Metrics returns the summary cards. An incomplete custom range is a
// validation error here: there is no list to leave empty.
func (s *DashboardService) Metrics(ctx context.Context, sel daterange.Selection) (*ports.MetricsResult, error) {
	rng, err := s.effectiveRange(sel)
	if err != nil {
		return nil, err
	}

	summary, err := s.client.GetPaymentSummary(ctx, rng.Range)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch payment summary",
			slog.String("operation", "Metrics"),
			slog.String("range", rng.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	return &ports.MetricsResult{Range: rng, Summary: *summary, Metrics: summary.Metrics()}, nil
}

// RewardConfig returns the saved reward configuration or the default. The
// read is shared with the rest of the request through its RequestContext.
func (s *DashboardService) RewardConfig(ctx context.Context) (*merchant.RewardConfig, error) {
	cfg, err := appctx.GetOrFetch(appctx.FromContextOrNew(ctx), rewardKey, s.fetchReward)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch reward config",
			slog.String("operation", "RewardConfig"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return cfg, nil
}

func (s *DashboardService) fetchReward(ctx context.Context) (*merchant.RewardConfig, error) {
	cfg, err := s.client.GetRewardConfig(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		def := merchant.DefaultRewardConfig()
		return &def, nil
	}
	return cfg, err
}

// UpdateRewardConfig validates cfg and saves it. An unchanged configuration
// is not written. A save that fails without a definite answer (a timeout,
// 429 or 5xx) may still have been applied downstream, so the previous
// configuration is written back before the failure is returned.
func (s *DashboardService) UpdateRewardConfig(ctx context.Context, cfg merchant.RewardConfig) (*merchant.RewardConfig, error) {
	s.logger.InfoContext(ctx, "updating reward config",
		slog.String("receive_method", string(cfg.ReceiveMethod)),
		slog.String("expiration", string(cfg.Expiration)),
	)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rc := appctx.FromContextOrNew(ctx)
	current, err := appctx.GetOrFetch(rc, rewardKey, s.fetchReward)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch current reward config",
			slog.String("operation", "UpdateRewardConfig"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("reading current reward config: %w", err)
	}
	if *current == cfg {
		return current, nil
	}

	action := &saveRewardAction{client: s.client, next: cfg, previous: *current, logger: s.logger}
	if err := rc.Stage(rewardKey, &cfg, action); err != nil {
		return nil, err
	}
	if err := rc.Commit(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to save reward config",
			slog.String("operation", "UpdateRewardConfig"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return action.saved, nil
}

// restoreTimeout bounds the write-back after an indeterminate save.
const restoreTimeout = 5 * time.Second

// saveRewardAction writes a reward configuration and can restore the one it
// replaced.
type saveRewardAction struct {
	client   ports.MerchantClient
	next     merchant.RewardConfig
	previous merchant.RewardConfig
	logger   *slog.Logger
	saved    *merchant.RewardConfig
}

func (a *saveRewardAction) Execute(ctx context.Context) error {
	saved, err := a.client.UpdateRewardConfig(ctx, a.next)
	if err == nil {
		a.saved = saved
		return nil
	}
	if !indeterminate(err) {
		return err
	}

	// Detached from ctx: after a timed-out save ctx is already done.
	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), restoreTimeout)
	defer cancel()
	if rerr := a.Rollback(rctx); rerr != nil {
		a.logger.ErrorContext(ctx, "failed to restore reward config",
			slog.String("operation", "UpdateRewardConfig"),
			slog.Any("error", rerr),
		)
		return errors.Join(err, fmt.Errorf("restoring previous reward config: %w", rerr))
	}
	a.logger.WarnContext(ctx, "restored previous reward config after failed save",
		slog.String("operation", "UpdateRewardConfig"),
		slog.Any("error", err),
	)
	return err
}

func (a *saveRewardAction) Rollback(ctx context.Context) error {
	_, err := a.client.UpdateRewardConfig(ctx, a.previous)
	return err
}

// indeterminate reports whether a failed write may still have been applied.
func indeterminate(err error) bool {
	return errors.Is(err, domain.ErrUnavailable) || errors.Is(err, context.DeadlineExceeded)
}

func (a *saveRewardAction) Description() string {
	return "save reward configuration"
}

// TopCustomers ranks customers by spend.
func (s *DashboardService) TopCustomers(ctx context.Context, sel daterange.Selection, limit int) ([]merchant.CustomerRank, error) {
	rng, err := s.effectiveRange(sel)
	if err != nil {
		return nil, err
	}

	customers, err := s.client.ListCustomers(ctx, rng.Range)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch customers",
			slog.String("operation", "TopCustomers"),
			slog.String("range", rng.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	ranked := merchant.RankCustomers(customers)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// Overview loads the landing page sections concurrently. A failed section
// is reported in Overview.Errors; only when every section fails is an error
// returned.
func (s *DashboardService) Overview(ctx context.Context, sel daterange.Selection) (*ports.Overview, error) {
	if _, err := s.effectiveRange(sel); err != nil {
		return nil, err
	}

	sections := []string{SectionBank, SectionMetrics, SectionReward}
	results := fanout.Run(ctx, len(sections), sections, func(ctx context.Context, section string) (any, error) {
		switch section {
		case SectionBank:
			return s.PrimaryBankAccount(ctx)
		case SectionMetrics:
			return s.Metrics(ctx, sel)
		default:
			return s.RewardConfig(ctx)
		}
	})

	ov := &ports.Overview{}
	for i, r := range results {
		if r.Err != nil {
			ov.Errors = append(ov.Errors, ports.SectionError{Section: sections[i], Err: r.Err})
			continue
		}
		switch v := r.Value.(type) {
		case *merchant.BankAccount:
			ov.Bank = v
		case *ports.MetricsResult:
			ov.Metrics = v
		case *merchant.RewardConfig:
			ov.Reward = v
		}
	}

	if len(fanout.Failed(results)) == len(sections) {
		return nil, fmt.Errorf("loading overview: %w", fanout.Join(results))
	}
	if len(ov.Errors) > 0 {
		s.logger.WarnContext(ctx, "overview partially loaded",
			slog.Int("failed_sections", len(ov.Errors)),
		)
	}
	return ov, nil
}

// effectiveRange resolves sel, rejecting an incomplete custom range.
func (s *DashboardService) effectiveRange(sel daterange.Selection) (query.Range, error) {
	if !sel.Complete() {
		return query.Range{}, domain.NewValidationError("dates", "custom range is incomplete")
	}
	return query.Effective(s.resolver, sel, s.now()), nil
}

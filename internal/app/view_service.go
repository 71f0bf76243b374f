// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/merchant-dashboard/internal/app/debounce"
	"github.com/jsamuelsen11/merchant-dashboard/internal/app/listview"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/daterange"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/points"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/query"
	"github.com/jsamuelsen11/merchant-dashboard/internal/platform/telemetry"
	"github.com/jsamuelsen11/merchant-dashboard/internal/ports"
)

// Compile-time checks that ViewService implements ports.ViewService and
// ports.HealthChecker.
var (
	_ ports.ViewService   = (*ViewService)(nil)
	_ ports.HealthChecker = (*ViewService)(nil)
)

// ViewSettings are the defaults and limits for open views.
type ViewSettings struct {
	PageSize    int
	SearchDelay time.Duration
	WeekStart   time.Weekday
	// MaxOpen caps the number of open views; zero means no cap.
	MaxOpen int
	// IdleTTL is how long an untouched view survives a Sweep; zero
	// disables expiry.
	IdleTTL time.Duration
}

// ViewService implements ports.ViewService. It keeps the open list views in
// memory, keyed by a random ID, and closes them on request, on idle expiry
// or on shutdown.
type ViewService struct {
	client   ports.MerchantClient
	settings ViewSettings
	resolver daterange.Resolver
	metrics  *telemetry.Metrics
	logger   *slog.Logger

	// Overridable in tests.
	now       func() time.Time
	scheduler debounce.Scheduler
	newID     func() string

	mu    sync.Mutex
	views map[string]openView
}

type openView struct {
	info ports.ViewInfo
	view ports.ListView
}

// NewViewService creates a ViewService. metrics may be nil.
func NewViewService(client ports.MerchantClient, settings ViewSettings, metrics *telemetry.Metrics, logger *slog.Logger) *ViewService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ViewService{
		client:    client,
		settings:  settings,
		resolver:  daterange.NewResolver(settings.WeekStart),
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
		scheduler: debounce.RealScheduler{},
		newID:     uuid.NewString,
		views:     make(map[string]openView),
	}
}

// Open validates req, creates the view and registers it.
func (s *ViewService) Open(ctx context.Context, req ports.OpenViewRequest) (ports.ViewInfo, ports.ListView, error) {
	s.logger.InfoContext(ctx, "opening view",
		slog.String("kind", req.Kind.String()),
		slog.String("preset", req.Preset.String()),
	)

	initial, err := initialActions(req)
	if err != nil {
		return ports.ViewInfo{}, nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.settings.MaxOpen > 0 && len(s.views) >= s.settings.MaxOpen {
		s.logger.WarnContext(ctx, "open view limit reached",
			slog.String("operation", "Open"),
			slog.Int("max_open", s.settings.MaxOpen),
		)
		return ports.ViewInfo{}, nil, fmt.Errorf("%d views open: %w", len(s.views), domain.ErrUnavailable)
	}

	pageSize := req.PageSize
	if pageSize == 0 {
		pageSize = s.settings.PageSize
	}
	opts := listview.Options{
		Name:        req.Kind.String(),
		PageSize:    pageSize,
		SearchDelay: s.settings.SearchDelay,
		Scheduler:   s.scheduler,
		Resolver:    s.resolver,
		Now:         s.now,
		Logger:      s.logger,
		Metrics:     s.metrics,
		Initial:     initial,
	}

	var v ports.ListView
	switch req.Kind {
	case points.KindDistributed:
		v, err = listview.New(ctx, listview.FetchFunc[points.Distribution](s.client.ListDistributions), opts)
	case points.KindRedeemed:
		v, err = listview.New(ctx, listview.FetchFunc[points.Redemption](s.client.ListRedemptions), opts)
	}
	if err != nil {
		return ports.ViewInfo{}, nil, err
	}

	info := ports.ViewInfo{ID: s.newID(), Kind: req.Kind, CreatedAt: s.now()}
	s.views[info.ID] = openView{info: info, view: v}

	s.logger.InfoContext(ctx, "view opened",
		slog.String("view_id", info.ID),
		slog.Int("open", len(s.views)),
	)
	return info, v, nil
}

// initialActions turns an open request into validated reducer actions.
func initialActions(req ports.OpenViewRequest) ([]query.Action, error) {
	verr := &domain.ValidationError{}
	if !req.Kind.IsValid() {
		verr.Add("kind", domain.MsgInvalid)
	}

	var actions []query.Action
	if req.Preset != daterange.PresetNone {
		actions = append(actions, query.SetPreset{Preset: req.Preset})
	}
	if req.Start != nil || req.End != nil {
		actions = append(actions, query.SetCustomDates{Start: req.Start, End: req.End})
	}
	if req.SearchField != "" {
		actions = append(actions, query.SetSearchField{Field: req.SearchField})
	}
	if req.PageSize != 0 {
		actions = append(actions, query.SetPageSize{Size: req.PageSize})
	}

	for _, a := range actions {
		if err := a.Validate(); err != nil && !verr.Merge(err) {
			return nil, err
		}
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}
	return actions, nil
}

// Get returns an open view.
func (s *ViewService) Get(id string) (ports.ViewInfo, ports.ListView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ov, ok := s.views[id]
	if !ok {
		return ports.ViewInfo{}, nil, fmt.Errorf("view %s: %w", id, domain.ErrNotFound)
	}
	return ov.info, ov.view, nil
}

// List returns the open views, oldest first.
func (s *ViewService) List() []ports.ViewInfo {
	s.mu.Lock()
	infos := make([]ports.ViewInfo, 0, len(s.views))
	for _, ov := range s.views {
		infos = append(infos, ov.info)
	}
	s.mu.Unlock()

	sort.Slice(infos, func(i, j int) bool {
		if !infos[i].CreatedAt.Equal(infos[j].CreatedAt) {
			return infos[i].CreatedAt.Before(infos[j].CreatedAt)
		}
		return infos[i].ID < infos[j].ID
	})
	return infos
}

// Close closes and forgets a view.
func (s *ViewService) Close(id string) error {
	s.mu.Lock()
	ov, ok := s.views[id]
	delete(s.views, id)
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("view %s: %w", id, domain.ErrNotFound)
	}
	ov.view.Close()
	s.logger.Info("view closed", slog.String("view_id", id))
	return nil
}

// Sweep closes views not used since now minus the idle TTL.
func (s *ViewService) Sweep(now time.Time) int {
	if s.settings.IdleTTL <= 0 {
		return 0
	}
	cutoff := now.Add(-s.settings.IdleTTL)

	s.mu.Lock()
	var expired []openView
	for id, ov := range s.views {
		if ov.view.LastActive().Before(cutoff) {
			expired = append(expired, ov)
			delete(s.views, id)
		}
	}
	s.mu.Unlock()

	for _, ov := range expired {
		ov.view.Close()
	}
	if len(expired) > 0 {
		s.logger.Info("expired idle views", slog.Int("count", len(expired)))
	}
	return len(expired)
}

// RunSweeper calls Sweep every interval until ctx ends.
func (s *ViewService) RunSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 || s.settings.IdleTTL <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(s.now())
		}
	}
}

// CloseAll closes every view.
func (s *ViewService) CloseAll() {
	s.mu.Lock()
	views := s.views
	s.views = make(map[string]openView)
	s.mu.Unlock()

	for _, ov := range views {
		ov.view.Close()
	}
	s.logger.Info("closed all views", slog.Int("count", len(views)))
}

// Name identifies the view pool in health results.
func (s *ViewService) Name() string { return "views" }

// HealthCheck reports the pool as unavailable once it is full, so a load
// balancer can steer new sessions elsewhere.
func (s *ViewService) HealthCheck(context.Context) error {
	s.mu.Lock()
	open := len(s.views)
	s.mu.Unlock()

	if s.settings.MaxOpen > 0 && open >= s.settings.MaxOpen {
		return fmt.Errorf("%d of %d views open: %w", open, s.settings.MaxOpen, domain.ErrUnavailable)
	}
	return nil
}

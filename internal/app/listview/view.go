// Package listview composes the query reducer, the search debouncer and a
// page fetcher into one live list view.
//
// A View owns exactly one query.State. Every change goes through Dispatch,
// which reduces the action, recomputes the derived values and, when the
// outbound parameters changed, starts a fetch. Fetches race freely; only the
// most recently started one may publish its result.
//
//	v := listview.New(ctx, fetcher, listview.Options{Name: "distributed"})
//	defer v.Close()
//
//	_ = v.SetDateRangePreset(daterange.PresetLastMonth)
//	_ = v.SetSearchText("TX-10")   // settles after the debounce window
//	meta, err := v.Await(ctx)      // blocks until the view is not loading
package listview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jsamuelsen11/merchant-dashboard/internal/app/debounce"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/daterange"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/points"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/query"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/view"
	"github.com/jsamuelsen11/merchant-dashboard/internal/platform/logging"
	"github.com/jsamuelsen11/merchant-dashboard/internal/platform/telemetry"
	"github.com/jsamuelsen11/merchant-dashboard/internal/ports"
)

// ErrClosed is returned by operations on a closed view. It matches
// domain.ErrNotFound: a closed view is gone.
var ErrClosed = fmt.Errorf("listview: view closed: %w", domain.ErrNotFound)

var _ ports.ListView = (*View[struct{}])(nil)

// Fetcher loads one page of rows for the given parameters.
type Fetcher[T any] interface {
	Fetch(ctx context.Context, params query.Params) (points.Page[T], error)
}

// FetchFunc adapts a function to Fetcher.
type FetchFunc[T any] func(ctx context.Context, params query.Params) (points.Page[T], error)

// Fetch calls f.
func (f FetchFunc[T]) Fetch(ctx context.Context, params query.Params) (points.Page[T], error) {
	return f(ctx, params)
}

// Options configure a View. Zero values select the defaults.
type Options struct {
	// Name labels the view in logs and metrics (e.g. "distributed").
	Name        string
	PageSize    int
	SearchDelay time.Duration
	Scheduler   debounce.Scheduler
	Resolver    daterange.Resolver
	Now         func() time.Time
	Logger      *slog.Logger
	Metrics     *telemetry.Metrics
	// Initial actions are applied to the starting state before the first
	// fetch.
	Initial []query.Action
}

// Snapshot is a consistent copy of a view.
type Snapshot[T any] struct {
	view.Meta
	Rows []T
}

// View is a live paginated list. It is safe for concurrent use.
type View[T any] struct {
	name      string
	fetcher   Fetcher[T]
	now       func() time.Time
	logger    *slog.Logger
	metrics   *telemetry.Metrics
	debouncer *debounce.Debouncer[string]

	base       context.Context
	cancelBase context.CancelFunc

	mu          sync.Mutex
	state       query.State
	memo        *query.RangeMemo
	status      view.Status
	rows        []T
	pagination  points.Pagination
	params      query.Params
	err         error
	lastKey     string
	seq         uint64
	cancelFetch context.CancelFunc
	version     uint64
	changed     chan struct{}
	updatedAt   time.Time
	lastActive  time.Time
	closed      bool
}

// New creates a view, applies opts.Initial and starts the first fetch if
// the resulting state allows one. Values on ctx (the logger in particular)
// are inherited by fetches; its cancellation is not, so a view outlives the
// request that created it. Call Close to release it.
//
// An invalid initial action is returned as a domain.ValidationError and no
// view is created.
func New[T any](ctx context.Context, fetcher Fetcher[T], opts Options) (*View[T], error) {
	state := query.NewState(opts.PageSize)
	for _, a := range opts.Initial {
		if err := a.Validate(); err != nil {
			return nil, err
		}
		state = query.Reduce(state, a)
	}
	// Typed text in an initial state counts as settled.
	state.SettledSearch = state.SearchText

	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.FromContext(ctx)
	}
	resolver := opts.Resolver
	if resolver == (daterange.Resolver{}) {
		resolver = daterange.NewResolver(time.Sunday)
	}

	base, cancel := context.WithCancel(context.WithoutCancel(ctx))
	v := &View[T]{
		name:       opts.Name,
		fetcher:    fetcher,
		now:        now,
		logger:     logger.With(slog.String("view", opts.Name)),
		metrics:    opts.Metrics,
		base:       base,
		cancelBase: cancel,
		state:      state,
		memo:       query.NewRangeMemo(resolver),
		status:     view.StatusIdle,
		changed:    make(chan struct{}),
	}
	v.debouncer = debounce.New(opts.SearchDelay, opts.Scheduler, v.settle)

	v.mu.Lock()
	v.lastActive = now()
	v.syncLocked(false)
	v.bumpLocked()
	v.mu.Unlock()

	v.metrics.AddOpenViews(base, v.name, 1)
	return v, nil
}

// Name returns the view label.
func (v *View[T]) Name() string {
	return v.name
}

// Dispatch applies one action. Invalid actions are rejected with a
// domain.ValidationError and leave the state untouched.
func (v *View[T]) Dispatch(a query.Action) error {
	if err := a.Validate(); err != nil {
		return err
	}

	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return ErrClosed
	}
	v.state = query.Reduce(v.state, a)
	v.lastActive = v.now()
	v.syncLocked(false)
	v.bumpLocked()
	// Pushed under mu so the debouncer sees texts in reduction order. Push
	// only schedules; the settle callback takes mu on its own goroutine.
	if _, ok := a.(query.SetSearchText); ok {
		v.debouncer.Push(v.state.SearchText)
	}
	v.mu.Unlock()
	return nil
}

// SetPage moves to a zero-based page.
func (v *View[T]) SetPage(page int) error {
	return v.Dispatch(query.SetPage{Page: page})
}

// SetPageSize changes the page size and returns to the first page.
func (v *View[T]) SetPageSize(size int) error {
	return v.Dispatch(query.SetPageSize{Size: size})
}

// SetSearchText records typed text. The search is applied once typing has
// paused for the debounce window.
func (v *View[T]) SetSearchText(text string) error {
	return v.Dispatch(query.SetSearchText{Text: text})
}

// SetSearchField changes the searched column and returns to the first page.
func (v *View[T]) SetSearchField(field query.SearchField) error {
	return v.Dispatch(query.SetSearchField{Field: field})
}

// SetDateRangePreset selects a preset. Leaving Custom Range clears the
// custom bounds.
func (v *View[T]) SetDateRangePreset(p daterange.Preset) error {
	return v.Dispatch(query.SetPreset{Preset: p})
}

// SetCustomDates sets the custom range bounds. Either may be nil.
func (v *View[T]) SetCustomDates(start, end *time.Time) error {
	return v.Dispatch(query.SetCustomDates{Start: start, End: end})
}

// Refresh refetches the current parameters even if they have not changed.
// It does nothing while the view should not fetch.
func (v *View[T]) Refresh() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return ErrClosed
	}
	v.lastActive = v.now()
	v.syncLocked(true)
	v.bumpLocked()
	return nil
}

// Meta returns the current metadata.
func (v *View[T]) Meta() view.Meta {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.metaLocked()
}

// Snapshot returns the metadata and a copy of the current rows.
func (v *View[T]) Snapshot() Snapshot[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Snapshot[T]{Meta: v.metaLocked(), Rows: append([]T(nil), v.rows...)}
}

// Rows returns a copy of the current rows as []T.
func (v *View[T]) Rows() any {
	return v.Snapshot().Rows
}

// Watch returns the current metadata and a channel that is closed on the
// next change. A closed view returns an already closed channel.
func (v *View[T]) Watch() (view.Meta, <-chan struct{}) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.metaLocked(), v.changed
}

// Await blocks until the view is not loading and returns its metadata.
func (v *View[T]) Await(ctx context.Context) (view.Meta, error) {
	for {
		meta, changed := v.Watch()
		if meta.Status != view.StatusLoading || meta.Closed {
			return meta, nil
		}
		select {
		case <-changed:
		case <-ctx.Done():
			return meta, ctx.Err()
		}
	}
}

// LastActive returns when the view was last created, mutated or refreshed.
func (v *View[T]) LastActive() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastActive
}

// Close cancels any pending search and in-flight fetch. It is idempotent.
func (v *View[T]) Close() {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.closed = true
	v.cancelInFlightLocked()
	v.version++
	close(v.changed)
	v.mu.Unlock()

	v.debouncer.Stop()
	v.cancelBase()
	v.metrics.AddOpenViews(context.Background(), v.name, -1)
}

func (v *View[T]) settle(text string) {
	if err := v.Dispatch(query.SettleSearch{Text: text}); err != nil && !errors.Is(err, ErrClosed) {
		v.logger.Warn("settling search failed", slog.Any("error", err))
	}
}

// syncLocked brings the fetch status in line with the state. A fetch starts
// when the parameters differ from the last ones fetched, when the view is
// idle, or when force is set.
func (v *View[T]) syncLocked(force bool) {
	if !v.state.ShouldFetch() {
		v.cancelInFlightLocked()
		v.status = view.StatusIdle
		v.lastKey = ""
		v.params = query.Params{}
		v.rows = nil
		v.pagination = points.Pagination{}
		v.err = nil
		return
	}

	rng := v.memo.Effective(v.state.Dates, v.now())
	params := query.BuildParams(v.state, rng.Range)
	key := params.Key()
	if !force && key == v.lastKey && v.status != view.StatusIdle {
		return
	}
	v.startFetchLocked(params, key)
}

func (v *View[T]) startFetchLocked(params query.Params, key string) {
	v.cancelInFlightLocked()

	v.seq++
	seq := v.seq
	ctx, cancel := context.WithCancel(v.base)
	v.cancelFetch = cancel
	v.status = view.StatusLoading
	v.err = nil
	v.lastKey = key
	v.params = params

	v.logger.Debug("fetching page",
		slog.Uint64("seq", seq),
		slog.String("params", key),
	)
	go v.run(ctx, cancel, seq, params)
}

func (v *View[T]) run(ctx context.Context, cancel context.CancelFunc, seq uint64, params query.Params) {
	start := time.Now()
	page, err := v.fetcher.Fetch(ctx, params)
	cancel()
	elapsed := time.Since(start)

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed || seq != v.seq {
		v.metrics.RecordViewFetch(v.base, v.name, telemetry.ResultDiscarded, elapsed)
		v.logger.Debug("discarding superseded page", slog.Uint64("seq", seq))
		return
	}

	v.cancelFetch = nil
	v.updatedAt = v.now()
	if err != nil {
		v.status = view.StatusErrored
		v.err = err
		v.rows = nil
		v.pagination = points.Pagination{}
		v.metrics.RecordViewFetch(v.base, v.name, telemetry.ResultErrored, elapsed)
		v.logger.Warn("page fetch failed",
			slog.String("params", params.Key()),
			slog.Any("error", err),
		)
	} else {
		v.status = view.StatusLoaded
		v.rows = page.Data
		v.pagination = page.Pagination
		v.metrics.RecordViewFetch(v.base, v.name, telemetry.ResultLoaded, elapsed)
	}
	v.bumpLocked()
}

func (v *View[T]) cancelInFlightLocked() {
	if v.cancelFetch != nil {
		v.cancelFetch()
		v.cancelFetch = nil
	}
	// Any completion still in flight is now stale.
	v.seq++
}

// bumpLocked publishes a change to watchers.
func (v *View[T]) bumpLocked() {
	if v.closed {
		return
	}
	v.version++
	close(v.changed)
	v.changed = make(chan struct{})
}

func (v *View[T]) metaLocked() view.Meta {
	m := view.Meta{
		Name:        v.name,
		Version:     v.version,
		Status:      v.status,
		State:       v.state,
		ShouldFetch: v.state.ShouldFetch(),
		Debouncing:  v.state.Debouncing(),
		Params:      v.params,
		Pagination:  v.pagination,
		Err:         v.err,
		UpdatedAt:   v.updatedAt,
		Closed:      v.closed,
		Range:       v.memo.Effective(v.state.Dates, v.now()),
	}
	return m
}

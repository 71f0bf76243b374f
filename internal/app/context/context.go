// Package appctx provides a request-scoped context for dashboard service
// operations: memoized downstream reads and staged writes that roll back
// in reverse order when a later step fails.
//
//	rc := appctx.New(ctx)
//
//	current, err := appctx.GetOrFetch(rc, "reward", fetchReward)
//	err = rc.Stage("reward", next, &saveRewardAction{...})
//	err = rc.Commit(ctx)
//
// A RequestContext belongs to one request. GetOrFetch may be called from
// the goroutines of that request concurrently; concurrent calls for the
// same key share one fetch.
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/merchant-dashboard/internal/domain"
)

var _ domain.WriteStager = (*RequestContext)(nil)

var (
	// ErrAlreadyCommitted is returned when Stage or Commit is called after
	// Commit.
	ErrAlreadyCommitted = errors.New("appctx: request context already committed")

	// ErrNilAction is returned when a nil action is staged or executed.
	ErrNilAction = errors.New("appctx: nil action")

	// ErrTypeMismatch is returned by GetOrFetch when a key is reused with a
	// different type.
	ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

	// ErrFetchPanicked is what callers waiting on a shared fetch receive when
	// that fetch panicked. The panic itself propagates to the fetching caller.
	ErrFetchPanicked = errors.New("appctx: fetch panicked")
)

// RequestContext embeds context.Context and adds a per-request read cache
// and a staged write queue.
type RequestContext struct {
	context.Context

	mu        sync.Mutex
	cache     map[string]*entry
	staged    []domain.Action
	committed bool
}

// entry is one cached read. done is closed once value and err are set.
type entry struct {
	done  chan struct{}
	value any
	err   error
}

// New wraps ctx.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{
		Context: ctx,
		cache:   make(map[string]*entry),
	}
}

// GetOrFetch returns the cached value for key or calls fetch once to load
// it. Errors are cached too: a failed read is not retried within the
// request. Callers arriving while a fetch is running wait for it, or for
// their own context to end.
func GetOrFetch[T any](rc *RequestContext, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	rc.mu.Lock()
	e, ok := rc.cache[key]
	if !ok {
		e = &entry{done: make(chan struct{})}
		rc.cache[key] = e
	}
	rc.mu.Unlock()

	if !ok {
		return load(rc.Context, e, fetch)
	}

	select {
	case <-e.done:
	case <-rc.Done():
		return zero, rc.Err()
	}
	if e.err != nil {
		return zero, e.err
	}
	v, ok := e.value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, e.value, zero)
	}
	return v, nil
}

// load runs fetch for e and publishes the result. done is closed even when
// fetch panics or exits its goroutine, so waiters are released.
func load[T any](ctx context.Context, e *entry, fetch func(ctx context.Context) (T, error)) (T, error) {
	finished := false
	defer func() {
		if finished {
			return
		}
		r := recover()
		e.err = fmt.Errorf("%w: %v", ErrFetchPanicked, r)
		close(e.done)
		if r != nil {
			panic(r)
		}
	}()

	v, err := fetch(ctx)
	e.value, e.err = v, err
	finished = true
	close(e.done)
	return v, err
}

// Stage replaces the cached value for key with entity and queues action
// for Commit. Later reads of key see entity.
func (rc *RequestContext) Stage(key string, entity any, action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	if rc.committed {
		return ErrAlreadyCommitted
	}
	e := &entry{done: make(chan struct{}), value: entity}
	close(e.done)
	rc.cache[key] = e
	rc.staged = append(rc.staged, action)
	return nil
}

// Execute runs action now, outside the commit queue. It is never rolled
// back.
func (rc *RequestContext) Execute(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}
	return action.Execute(rc.Context)
}

// Staged returns the number of queued actions.
func (rc *RequestContext) Staged() int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return len(rc.staged)
}

type requestContextKey struct{}

// WithRequestContext stores rc in ctx.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rc)
}

// FromContext returns the RequestContext stored by WithRequestContext, or
// nil.
func FromContext(ctx context.Context) *RequestContext {
	rc, _ := ctx.Value(requestContextKey{}).(*RequestContext)
	return rc
}

// FromContextOrNew returns the stored RequestContext, or a fresh one
// wrapping ctx when none is stored.
func FromContextOrNew(ctx context.Context) *RequestContext {
	if rc := FromContext(ctx); rc != nil {
		return rc
	}
	return New(ctx)
}

// Package fanout runs a function over a slice with bounded concurrency and
// returns per-item results in input order. The dashboard overview uses it
// to load its sections side by side.
package fanout

import (
	"context"
	"errors"
	"sync"
)

// Result is the outcome for one item: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item with at most maxWorkers calls in flight and
// waits for all of them. results[i] belongs to items[i].
//
// An item still waiting for a worker slot when ctx ends gets ctx.Err()
// without fn being called. A maxWorkers below 1 is treated as 1.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func() {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i].Err = ctx.Err()
				return
			}

			v, err := fn(ctx, item)
			results[i] = Result[R]{Value: v, Err: err}
		}()
	}
	wg.Wait()
	return results
}

// Failed returns the indexes of results that carry an error.
func Failed[R any](results []Result[R]) []int {
	var idx []int
	for i, r := range results {
		if r.Err != nil {
			idx = append(idx, i)
		}
	}
	return idx
}

// Join joins every error in results, or returns nil when all succeeded.
func Join[R any](results []Result[R]) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errors.Join(errs...)
}

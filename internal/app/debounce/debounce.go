// Package debounce delays a value until input has been quiet for a fixed
// window. Only the last value pushed within a window is emitted.
package debounce

import (
	"sync"
	"time"
)

// DefaultDelay is the quiescence window used by list-view search.
const DefaultDelay = 500 * time.Millisecond

// Timer is a scheduled task that can be cancelled.
type Timer interface {
	// Stop cancels the task. It reports false if the task already ran or
	// was already stopped.
	Stop() bool
}

// Scheduler runs fn once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// RealScheduler schedules on the runtime timer heap.
type RealScheduler struct{}

// AfterFunc wraps time.AfterFunc.
func (RealScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// Debouncer emits the last pushed value once no push has happened for its
// delay. It is safe for concurrent use.
type Debouncer[T any] struct {
	delay     time.Duration
	scheduler Scheduler
	onSettle  func(T)

	mu      sync.Mutex
	pending Timer
	gen     uint64
	stopped bool
}

// New returns a Debouncer that calls onSettle with the settled value. A nil
// scheduler uses RealScheduler; a non-positive delay uses DefaultDelay.
func New[T any](delay time.Duration, scheduler Scheduler, onSettle func(T)) *Debouncer[T] {
	if delay <= 0 {
		delay = DefaultDelay
	}
	if scheduler == nil {
		scheduler = RealScheduler{}
	}
	return &Debouncer[T]{delay: delay, scheduler: scheduler, onSettle: onSettle}
}

// Push records v as the newest value and restarts the window. A value
// superseded before its window elapses is never emitted, even when its
// timer has already fired and is waiting on the lock.
func (d *Debouncer[T]) Push(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.pending != nil {
		d.pending.Stop()
	}

	d.gen++
	gen := d.gen
	d.pending = d.scheduler.AfterFunc(d.delay, func() { d.fire(gen, v) })
}

func (d *Debouncer[T]) fire(gen uint64, v T) {
	d.mu.Lock()
	if d.stopped || gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.pending = nil
	d.mu.Unlock()

	d.onSettle(v)
}

// Pending reports whether a value is waiting for its window to elapse.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

// Stop cancels any pending value. Later pushes are ignored.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.gen++
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
}

// Delay returns the quiescence window.
func (d *Debouncer[T]) Delay() time.Duration {
	return d.delay
}

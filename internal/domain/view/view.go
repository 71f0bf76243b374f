// Package view describes a live list view from the outside: its fetch
// status and everything observable about it except the rows.
package view

import (
	"time"

	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/points"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/query"
)

// Status is the fetch lifecycle of a view.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusLoaded  Status = "loaded"
	StatusErrored Status = "errored"
)

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// Settled reports whether the status will not change without new input.
func (s Status) Settled() bool {
	return s != StatusLoading
}

// Meta is everything about a view except its rows.
type Meta struct {
	Name    string
	Version uint64
	Status  Status
	State   query.State

	ShouldFetch bool
	Debouncing  bool
	// Range is the effective range, including the yesterday-to-today
	// fallback when the selection does not resolve.
	Range query.Range
	// Params are the parameters of the last fetch started. Zero when the
	// view has never fetched or is idle.
	Params     query.Params
	Pagination points.Pagination
	Err        error
	UpdatedAt  time.Time
	Closed     bool
}

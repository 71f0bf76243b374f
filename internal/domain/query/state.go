// Package query models the state of a paginated, searchable, date-filtered
// list view as a pure reducer. Every change to a State goes through Reduce
// with one Action; derived values (ShouldFetch, the effective date range and
// the outbound parameters) are computed from the State and never stored.
package query

import (
	"strings"

	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/daterange"
)

// DefaultPageSize is the page size used when none is configured.
const DefaultPageSize = 10

// MaxPageSize caps what a client may ask the merchant API for.
const MaxPageSize = 100

// State is the full query state of one list view.
//
// SearchText is what the user has typed so far. SettledSearch is the value
// that survived the debounce window and is the only one sent downstream.
type State struct {
	Page          int
	PageSize      int
	SearchText    string
	SettledSearch string
	SearchField   SearchField
	Dates         daterange.Selection
}

// NewState returns the initial state for a view: page 0, default search
// field, and the Today preset.
func NewState(pageSize int) State {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return State{
		PageSize:    pageSize,
		SearchField: DefaultSearchField,
		Dates:       daterange.Selection{Preset: daterange.PresetToday},
	}
}

// ShouldFetch is false exactly when a custom range is selected but is not
// yet usable: a bound is missing or the start is after the end.
func (s State) ShouldFetch() bool {
	return s.Dates.Complete()
}

// Search returns the settled search text with surrounding blanks removed.
func (s State) Search() string {
	return strings.TrimSpace(s.SettledSearch)
}

// Debouncing reports whether typed text has not settled yet.
func (s State) Debouncing() bool {
	return s.SearchText != s.SettledSearch
}

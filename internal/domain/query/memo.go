package query

import (
	"time"

	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/daterange"
)

// RangeMemo caches the effective date range of a view. It recomputes only
// when the date selection or the calendar day of "today" changes.
//
// A RangeMemo is owned by one view and is not safe for concurrent use.
type RangeMemo struct {
	resolver daterange.Resolver

	valid    bool
	lastSel  daterange.Selection
	lastDay  time.Time
	last     Range
	computed int
}

// Range is an effective range plus whether it came from the fallback.
type Range struct {
	daterange.Range
	// Fallback is true when the selection could not be resolved and the
	// yesterday-to-today range was substituted.
	Fallback bool
}

// NewRangeMemo returns an empty memo using resolver.
func NewRangeMemo(resolver daterange.Resolver) *RangeMemo {
	return &RangeMemo{resolver: resolver}
}

// Effective returns the range the view should query for sel on today's date.
// Selections that do not resolve (All Time, an incomplete custom range) fall
// back to yesterday through today.
func (m *RangeMemo) Effective(sel daterange.Selection, today time.Time) Range {
	day := daterange.Day(today)
	if m.valid && m.lastSel.Equal(sel) && m.lastDay.Equal(day) {
		return m.last
	}

	m.last = Effective(m.resolver, sel, today)
	m.lastSel = sel
	m.lastDay = day
	m.valid = true
	m.computed++
	return m.last
}

// Computations reports how many times the range was actually resolved.
func (m *RangeMemo) Computations() int {
	return m.computed
}

// Effective resolves sel without memoization.
func Effective(resolver daterange.Resolver, sel daterange.Selection, today time.Time) Range {
	r, err := resolver.Resolve(sel, today)
	if err != nil {
		// ErrUnbounded and ErrIncomplete both land here. Unknown presets are
		// rejected by SetPreset.Validate before they reach a State.
		return Range{Range: daterange.Fallback(today), Fallback: true}
	}
	return Range{Range: r}
}

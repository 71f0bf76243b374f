package query

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/merchant-dashboard/internal/domain"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/daterange"
)

// Action is one state transition. The set is closed: only the types in this
// file implement it.
type Action interface {
	// Kind is the action's wire name, e.g. "setPage".
	Kind() string
	// Validate checks the payload before it is reduced.
	Validate() error

	isAction()
}

// Action kinds.
const (
	KindSetPage        = "setPage"
	KindSetPageSize    = "setPageSize"
	KindSetSearchText  = "setSearchText"
	KindSettleSearch   = "settleSearch"
	KindSetSearchField = "setSearchField"
	KindSetPreset      = "setDateRangePreset"
	KindSetCustomDates = "setCustomDates"
)

// SetPage moves to a zero-based page.
type SetPage struct{ Page int }

// SetPageSize changes the page size and returns to the first page.
type SetPageSize struct{ Size int }

// SetSearchText records live input. It does not reach the merchant API
// until a SettleSearch with the same text is reduced.
type SetSearchText struct{ Text string }

// SettleSearch publishes text that survived the debounce window.
type SettleSearch struct{ Text string }

// SetSearchField switches the attribute being searched.
type SetSearchField struct{ Field SearchField }

// SetPreset switches the timeline preset.
type SetPreset struct{ Preset daterange.Preset }

// SetCustomDates sets the bounds of a custom range. Either may be nil.
type SetCustomDates struct {
	Start *time.Time
	End   *time.Time
}

func (SetPage) Kind() string        { return KindSetPage }
func (SetPageSize) Kind() string    { return KindSetPageSize }
func (SetSearchText) Kind() string  { return KindSetSearchText }
func (SettleSearch) Kind() string   { return KindSettleSearch }
func (SetSearchField) Kind() string { return KindSetSearchField }
func (SetPreset) Kind() string      { return KindSetPreset }
func (SetCustomDates) Kind() string { return KindSetCustomDates }

func (SetPage) isAction()        {}
func (SetPageSize) isAction()    {}
func (SetSearchText) isAction()  {}
func (SettleSearch) isAction()   {}
func (SetSearchField) isAction() {}
func (SetPreset) isAction()      {}
func (SetCustomDates) isAction() {}

func (a SetPage) Validate() error {
	if a.Page < 0 {
		return domain.NewValidationError("page", fmt.Sprintf("must be >= 0, got %d", a.Page))
	}
	return nil
}

func (a SetPageSize) Validate() error {
	if a.Size < 1 || a.Size > MaxPageSize {
		return domain.NewValidationError("size", fmt.Sprintf("must be 1-%d, got %d", MaxPageSize, a.Size))
	}
	return nil
}

func (SetSearchText) Validate() error { return nil }
func (SettleSearch) Validate() error  { return nil }

func (a SetSearchField) Validate() error {
	if !a.Field.IsValid() {
		return domain.NewValidationError("searchType", fmt.Sprintf("invalid: %q", a.Field))
	}
	return nil
}

func (a SetPreset) Validate() error {
	if !a.Preset.IsValid() {
		return domain.NewValidationError("preset", fmt.Sprintf("invalid: %q", a.Preset))
	}
	return nil
}

func (SetCustomDates) Validate() error { return nil }

// Reduce applies a to s and returns the new state. It is pure: the same
// inputs always give the same output and s is never modified.
//
// Page resets to 0 whenever the settled search, the search field or the
// page size changes. Leaving Custom Range clears the custom bounds.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case SetPage:
		s.Page = a.Page
	case SetPageSize:
		if a.Size != s.PageSize {
			s.PageSize = a.Size
			s.Page = 0
		}
	case SetSearchText:
		s.SearchText = a.Text
	case SettleSearch:
		s.SettledSearch = a.Text
		s.Page = 0
	case SetSearchField:
		if a.Field != s.SearchField {
			s.SearchField = a.Field
			s.Page = 0
		}
	case SetPreset:
		s.Dates = daterange.Selection{Preset: a.Preset, Start: s.Dates.Start, End: s.Dates.End}.Normalize()
	case SetCustomDates:
		s.Dates.Start = copyTime(a.Start)
		s.Dates.End = copyTime(a.End)
	}
	return s
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

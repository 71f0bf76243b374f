package query

import (
	"errors"
	"testing"
	"time"

	"github.com/jsamuelsen11/merchant-dashboard/internal/domain"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/daterange"
)

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestNewState(t *testing.T) {
	t.Parallel()

	s := NewState(0)
	if s.PageSize != DefaultPageSize {
		t.Errorf("PageSize = %d, want %d", s.PageSize, DefaultPageSize)
	}
	if s.SearchField != SearchTransactionReference {
		t.Errorf("SearchField = %q, want %q", s.SearchField, SearchTransactionReference)
	}
	if s.Dates.Preset != daterange.PresetToday {
		t.Errorf("Dates.Preset = %q, want %q", s.Dates.Preset, daterange.PresetToday)
	}
	if !s.ShouldFetch() {
		t.Error("ShouldFetch() = false for the initial state")
	}
}

func TestReduce(t *testing.T) {
	t.Parallel()

	base := NewState(10)
	base.Page = 4
	base.SearchText = "abc"
	base.SettledSearch = "abc"

	tests := []struct {
		name   string
		action Action
		check  func(t *testing.T, got State)
	}{
		{
			name:   "set page keeps everything else",
			action: SetPage{Page: 7},
			check: func(t *testing.T, got State) {
				if got.Page != 7 {
					t.Errorf("Page = %d, want 7", got.Page)
				}
				if got.SettledSearch != "abc" {
					t.Errorf("SettledSearch = %q, want %q", got.SettledSearch, "abc")
				}
			},
		},
		{
			name:   "live search text does not reset page",
			action: SetSearchText{Text: "abcd"},
			check: func(t *testing.T, got State) {
				if got.Page != 4 {
					t.Errorf("Page = %d, want 4", got.Page)
				}
				if got.SettledSearch != "abc" {
					t.Errorf("SettledSearch = %q, want unchanged", got.SettledSearch)
				}
				if !got.Debouncing() {
					t.Error("Debouncing() = false with unsettled text")
				}
			},
		},
		{
			name:   "settled search resets page",
			action: SettleSearch{Text: "abcd"},
			check: func(t *testing.T, got State) {
				if got.Page != 0 {
					t.Errorf("Page = %d, want 0", got.Page)
				}
				if got.SettledSearch != "abcd" {
					t.Errorf("SettledSearch = %q, want %q", got.SettledSearch, "abcd")
				}
			},
		},
		{
			name:   "settling the same text still resets page",
			action: SettleSearch{Text: "abc"},
			check: func(t *testing.T, got State) {
				if got.Page != 0 {
					t.Errorf("Page = %d, want 0", got.Page)
				}
			},
		},
		{
			name:   "search field change resets page",
			action: SetSearchField{Field: SearchCustomerName},
			check: func(t *testing.T, got State) {
				if got.Page != 0 {
					t.Errorf("Page = %d, want 0", got.Page)
				}
				if got.SearchField != SearchCustomerName {
					t.Errorf("SearchField = %q, want %q", got.SearchField, SearchCustomerName)
				}
			},
		},
		{
			name:   "same search field keeps page",
			action: SetSearchField{Field: SearchTransactionReference},
			check: func(t *testing.T, got State) {
				if got.Page != 4 {
					t.Errorf("Page = %d, want 4", got.Page)
				}
			},
		},
		{
			name:   "page size change resets page",
			action: SetPageSize{Size: 25},
			check: func(t *testing.T, got State) {
				if got.PageSize != 25 || got.Page != 0 {
					t.Errorf("PageSize, Page = %d, %d, want 25, 0", got.PageSize, got.Page)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.check(t, Reduce(base, tt.action))
		})
	}
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	s := NewState(10)
	_ = Reduce(s, SetPage{Page: 3})
	_ = Reduce(s, SetCustomDates{Start: day(2024, time.May, 1)})

	if s.Page != 0 || s.Dates.Start != nil {
		t.Errorf("Reduce() mutated its input: %+v", s)
	}
}

func TestReduce_LeavingCustomRangeClearsDates(t *testing.T) {
	t.Parallel()

	s := NewState(10)
	s = Reduce(s, SetPreset{Preset: daterange.PresetCustom})
	s = Reduce(s, SetCustomDates{Start: day(2024, time.June, 1), End: nil})

	if s.ShouldFetch() {
		t.Fatal("ShouldFetch() = true with a missing end date")
	}

	s = Reduce(s, SetPreset{Preset: daterange.PresetThisMonth})

	if s.Dates.Start != nil || s.Dates.End != nil {
		t.Errorf("custom dates = %v, %v, want both nil", s.Dates.Start, s.Dates.End)
	}
	if !s.ShouldFetch() {
		t.Error("ShouldFetch() = false after leaving Custom Range")
	}
}

func TestReduce_CustomDatesSurviveReselectingCustom(t *testing.T) {
	t.Parallel()

	s := NewState(10)
	s = Reduce(s, SetPreset{Preset: daterange.PresetCustom})
	s = Reduce(s, SetCustomDates{Start: day(2024, time.May, 1), End: day(2024, time.May, 9)})
	s = Reduce(s, SetPreset{Preset: daterange.PresetCustom})

	if s.Dates.Start == nil || s.Dates.End == nil {
		t.Fatal("custom dates cleared by re-selecting Custom Range")
	}
}

func TestState_ShouldFetch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		dates daterange.Selection
		want  bool
	}{
		{name: "preset", dates: daterange.Selection{Preset: daterange.PresetLastMonth}, want: true},
		{name: "all time", dates: daterange.Selection{Preset: daterange.PresetAllTime}, want: true},
		{name: "custom complete", dates: daterange.Custom(day(2024, time.May, 1), day(2024, time.June, 1)), want: true},
		{name: "custom inverted", dates: daterange.Custom(day(2024, time.June, 1), day(2024, time.May, 1)), want: false},
		{name: "custom missing start", dates: daterange.Custom(nil, day(2024, time.May, 1)), want: false},
		{name: "custom empty", dates: daterange.Custom(nil, nil), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := NewState(10)
			s.Dates = tt.dates
			if got := s.ShouldFetch(); got != tt.want {
				t.Errorf("ShouldFetch() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAction_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		action    Action
		wantField string
	}{
		{name: "negative page", action: SetPage{Page: -1}, wantField: "page"},
		{name: "zero size", action: SetPageSize{Size: 0}, wantField: "size"},
		{name: "huge size", action: SetPageSize{Size: MaxPageSize + 1}, wantField: "size"},
		{name: "unknown field", action: SetSearchField{Field: "iban"}, wantField: "searchType"},
		{name: "unknown preset", action: SetPreset{Preset: "Fortnight"}, wantField: "preset"},
		{name: "valid page", action: SetPage{Page: 0}},
		{name: "valid preset", action: SetPreset{Preset: daterange.PresetAllTime}},
		{name: "search text", action: SetSearchText{Text: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.action.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if _, ok := verr.Fields[tt.wantField]; !ok {
				t.Errorf("Fields = %v, missing %q", verr.Fields, tt.wantField)
			}
		})
	}
}

package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/merchant-dashboard/internal/domain"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/daterange"
	"github.com/jsamuelsen11/merchant-dashboard/internal/domain/query"
)

// rangeFlags select a date range: a preset, or --from/--to for a custom one.
type rangeFlags struct {
	preset string
	from   string
	to     string
}

func (f *rangeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.preset, "preset", "", `date preset, e.g. "today", "this-week", "last-month", "all-time"`)
	cmd.Flags().StringVar(&f.from, "from", "", "custom range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.to, "to", "", "custom range end (YYYY-MM-DD)")
}

// selection parses the flags. Dates without a preset select Custom Range;
// dates with any other preset are ignored.
func (f *rangeFlags) selection() (daterange.Selection, error) {
	verr := &domain.ValidationError{}

	var preset daterange.Preset
	if f.preset != "" {
		p, err := daterange.ParsePreset(f.preset)
		if err != nil {
			verr.Add("preset", domain.MsgInvalid)
		}
		preset = p
	}
	start, err := parseDateFlag(f.from)
	if err != nil {
		verr.Add("from", "must be a YYYY-MM-DD date")
	}
	end, err := parseDateFlag(f.to)
	if err != nil {
		verr.Add("to", "must be a YYYY-MM-DD date")
	}
	if err := verr.OrNil(); err != nil {
		return daterange.Selection{}, err
	}

	if preset == daterange.PresetNone && (start != nil || end != nil) {
		preset = daterange.PresetCustom
	}
	if preset != daterange.PresetCustom {
		return daterange.Selection{Preset: preset}, nil
	}
	return daterange.Custom(start, end), nil
}

func parseDateFlag(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := daterange.ParseISO(s, time.Local)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// listFlags are the query controls of a list view.
type listFlags struct {
	rangeFlags
	search     string
	searchType string
	page       int
	size       int
	xlsx       string
}

func (f *listFlags) register(cmd *cobra.Command) {
	f.rangeFlags.register(cmd)
	cmd.Flags().StringVar(&f.search, "search", "", "search text")
	cmd.Flags().StringVar(&f.searchType, "search-type", "", "field to search: transactionReference, posId, customerName or posLocation")
	cmd.Flags().IntVar(&f.page, "page", 0, "zero-based page")
	cmd.Flags().IntVar(&f.size, "size", 0, "page size (default from config)")
	cmd.Flags().StringVar(&f.xlsx, "xlsx", "", "also write the page to this workbook file")
}

// actions are the reducer actions that bring a new view to the requested
// state. The page goes last so a search does not reset it.
func (f *listFlags) actions() ([]query.Action, error) {
	sel, err := f.selection()
	if err != nil {
		return nil, err
	}

	var actions []query.Action
	if sel.Preset != daterange.PresetNone {
		actions = append(actions, query.SetPreset{Preset: sel.Preset})
	}
	if sel.IsCustom() {
		actions = append(actions, query.SetCustomDates{Start: sel.Start, End: sel.End})
	}
	if f.searchType != "" {
		field, err := query.ParseSearchField(f.searchType)
		if err != nil {
			return nil, domain.NewValidationError("search-type", domain.MsgInvalid)
		}
		actions = append(actions, query.SetSearchField{Field: field})
	}
	if f.size != 0 {
		actions = append(actions, query.SetPageSize{Size: f.size})
	}
	if f.search != "" {
		actions = append(actions, query.SetSearchText{Text: f.search})
	}
	if f.page != 0 {
		actions = append(actions, query.SetPage{Page: f.page})
	}
	return actions, nil
}

package daterange

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrIncomplete means a custom range is missing a bound or has its start
	// after its end. It is a "do not fetch" signal rather than a failure.
	ErrIncomplete = errors.New("daterange: custom range incomplete")

	// ErrUnbounded means the preset has no explicit bounds (All Time).
	ErrUnbounded = errors.New("daterange: preset has no explicit bounds")
)

// Selection is the user's timeline choice. Start and End are only
// meaningful when Preset is PresetCustom.
type Selection struct {
	Preset Preset
	Start  *time.Time
	End    *time.Time
}

// Custom returns a Custom Range selection over the given bounds.
func Custom(start, end *time.Time) Selection {
	return Selection{Preset: PresetCustom, Start: start, End: end}
}

// IsCustom reports whether the selection is a Custom Range.
func (s Selection) IsCustom() bool {
	return s.Preset == PresetCustom
}

// Complete reports whether the selection can be resolved to a range. Only a
// custom selection can be incomplete.
func (s Selection) Complete() bool {
	if !s.IsCustom() {
		return true
	}
	if s.Start == nil || s.End == nil {
		return false
	}
	return !Day(*s.Start).After(Day(*s.End))
}

// Normalize drops custom bounds from non-custom selections.
func (s Selection) Normalize() Selection {
	if s.IsCustom() {
		return s
	}
	return Selection{Preset: s.Preset}
}

// Equal compares presets and custom bounds by calendar day.
func (s Selection) Equal(o Selection) bool {
	return s.Preset == o.Preset && sameDay(s.Start, o.Start) && sameDay(s.End, o.End)
}

func sameDay(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return Day(*a).Equal(Day(*b))
}

// Range is an inclusive span of calendar days.
type Range struct {
	From time.Time
	To   time.Time
}

// Wire returns the bounds formatted for the merchant API.
func (r Range) Wire() (from, to string) {
	return FormatWire(r.From), FormatWire(r.To)
}

// ISO returns the bounds formatted as YYYY-MM-DD.
func (r Range) ISO() (from, to string) {
	return FormatISO(r.From), FormatISO(r.To)
}

// Equal reports whether both bounds fall on the same instants.
func (r Range) Equal(o Range) bool {
	return r.From.Equal(o.From) && r.To.Equal(o.To)
}

func (r Range) String() string {
	from, to := r.ISO()
	return from + ".." + to
}

// Day truncates t to midnight in its own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Fallback is the range used whenever a selection cannot be resolved:
// yesterday through today.
func Fallback(today time.Time) Range {
	d := Day(today)
	return Range{From: d.AddDate(0, 0, -1), To: d}
}

// Resolver turns selections into ranges. The zero value starts weeks on Sunday.
type Resolver struct {
	WeekStart time.Weekday
}

// NewResolver returns a Resolver whose weeks begin on weekStart.
func NewResolver(weekStart time.Weekday) Resolver {
	return Resolver{WeekStart: weekStart}
}

// Resolve maps sel to an inclusive range relative to today. Non-custom
// presets depend only on today's calendar date.
//
// Custom selections return ErrIncomplete when a bound is missing or the
// start falls after the end. All Time returns ErrUnbounded.
func (r Resolver) Resolve(sel Selection, today time.Time) (Range, error) {
	d := Day(today)

	switch sel.Preset {
	case PresetNone, PresetToday:
		return Range{From: d, To: d}, nil
	case PresetYesterday:
		y := d.AddDate(0, 0, -1)
		return Range{From: y, To: y}, nil
	case PresetThisWeek:
		offset := (int(d.Weekday()) - int(r.WeekStart) + 7) % 7
		return Range{From: d.AddDate(0, 0, -offset), To: d}, nil
	case PresetThisMonth:
		return Range{From: time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, d.Location()), To: d}, nil
	case PresetLastMonth:
		// Day 0 of the current month is the last day of the previous one.
		first := time.Date(d.Year(), d.Month()-1, 1, 0, 0, 0, 0, d.Location())
		last := time.Date(d.Year(), d.Month(), 0, 0, 0, 0, 0, d.Location())
		return Range{From: first, To: last}, nil
	case PresetCustom:
		if !sel.Complete() {
			return Range{}, ErrIncomplete
		}
		return Range{From: inLocation(*sel.Start, d.Location()), To: inLocation(*sel.End, d.Location())}, nil
	case PresetAllTime:
		return Range{}, ErrUnbounded
	default:
		return Range{}, fmt.Errorf("%w: %q", ErrUnknownPreset, sel.Preset)
	}
}

// inLocation keeps the calendar date of t and re-anchors it at midnight in
// loc, so a picker date is never shifted by a zone offset.
func inLocation(t time.Time, loc *time.Location) time.Time {
	y, m, dd := t.Date()
	return time.Date(y, m, dd, 0, 0, 0, 0, loc)
}

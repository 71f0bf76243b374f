// Package daterange resolves dashboard timeline presets into concrete
// calendar ranges and formats them for the merchant API.
//
// All arithmetic happens on calendar days in the location of the "today"
// value handed to the resolver. No time zone conversion is performed: a
// caller in Lagos and a caller in London asking for "Today" at the same
// instant may receive different days.
package daterange

import (
	"errors"
	"fmt"
	"strings"
)

// Preset is a named timeline choice offered by the date range selector.
type Preset string

// The empty preset means no selection was made; it resolves like Today.
const (
	PresetNone      Preset = ""
	PresetToday     Preset = "Today"
	PresetYesterday Preset = "Yesterday"
	PresetThisWeek  Preset = "This Week"
	PresetThisMonth Preset = "This Month"
	PresetLastMonth Preset = "Last Month"
	PresetCustom    Preset = "Custom Range"
	PresetAllTime   Preset = "All Time"
)

// ErrUnknownPreset is returned for preset names outside the defined set.
var ErrUnknownPreset = errors.New("daterange: unknown preset")

// Presets returns the selectable presets in the order the selector shows them.
func Presets() []Preset {
	return []Preset{
		PresetToday,
		PresetYesterday,
		PresetThisWeek,
		PresetThisMonth,
		PresetLastMonth,
		PresetAllTime,
		PresetCustom,
	}
}

// IsValid reports whether p is one of the defined presets, including None.
func (p Preset) IsValid() bool {
	switch p {
	case PresetNone, PresetToday, PresetYesterday, PresetThisWeek,
		PresetThisMonth, PresetLastMonth, PresetCustom, PresetAllTime:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (p Preset) String() string {
	return string(p)
}

// ParsePreset matches s against the preset display names. Matching ignores
// case and treats '-' and '_' like spaces, so "last-month" and "LAST_MONTH"
// both yield PresetLastMonth. "custom" is accepted for PresetCustom.
func ParsePreset(s string) (Preset, error) {
	norm := normalizeName(s)
	if norm == "" {
		return PresetNone, nil
	}
	if norm == "custom" {
		return PresetCustom, nil
	}
	for _, p := range Presets() {
		if normalizeName(string(p)) == norm {
			return p, nil
		}
	}
	return PresetNone, fmt.Errorf("%w: %q", ErrUnknownPreset, s)
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

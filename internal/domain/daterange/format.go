package daterange

import (
	"fmt"
	"strings"
	"time"
)

// Layouts for the two date representations in play.
const (
	// WireLayout is the DD-MM-YYYY form the merchant API expects.
	WireLayout = "02-01-2006"
	// ISOLayout is the YYYY-MM-DD form used internally and by the picker.
	ISOLayout = "2006-01-02"
)

// FormatWire renders t as DD-MM-YYYY.
func FormatWire(t time.Time) string {
	return t.Format(WireLayout)
}

// FormatISO renders t as YYYY-MM-DD.
func FormatISO(t time.Time) string {
	return t.Format(ISOLayout)
}

// ParseISO parses a YYYY-MM-DD date as midnight in loc.
func ParseISO(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(ISOLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing ISO date %q: %w", s, err)
	}
	return t, nil
}

// ISOToWire converts a YYYY-MM-DD string to DD-MM-YYYY.
func ISOToWire(s string) (string, error) {
	t, err := ParseISO(s, time.UTC)
	if err != nil {
		return "", err
	}
	return FormatWire(t), nil
}

// ParseWeekday maps an English weekday name ("sunday", "Mon") to time.Weekday.
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return time.Sunday, nil
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if name == full || name == full[:3] {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", s)
}

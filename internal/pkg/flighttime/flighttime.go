// Package flighttime turns provider timestamps into instants and renders them in an
// airport's IANA timezone, independent of the process's local timezone.
package flighttime

import (
	"errors"
	"regexp"
	"strings"
	"sync"
	"time"

	// airports are rendered in their own zone, so the zone database must not depend on the host.
	_ "time/tzdata"
)

// Placeholder is rendered for missing instants and unknown timezones.
const Placeholder = "—"

// Style selects the rendering of FormatInTimezone.
type Style int

const (
	// StyleTime renders "5:06 PM".
	StyleTime Style = iota
	// StyleDateTime renders "Feb 23, 2026, 5:06 PM".
	StyleDateTime
	// StyleStamp renders "Feb 23, 5:06 PM", used for "last updated" labels.
	StyleStamp
)

var styleLayouts = map[Style]string{
	StyleTime:     "3:04 PM",
	StyleDateTime: "Jan 2, 2006, 3:04 PM",
	StyleStamp:    "Jan 2, 3:04 PM",
}

var (
	offsetSuffix = regexp.MustCompile(`[+-]\d{2}:?\d{2}(?::?\d{2})?$`)

	parseLayouts = []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05.999999999Z0700",
		"2006-01-02T15:04:05.999999999Z07:00:00",
		"2006-01-02T15:04Z07:00",
		"2006-01-02T15:04Z0700",
	}

	locations sync.Map

	ErrInvalidTimezone = errors.New("invalid timezone")
)

// NormalizeTimestamp rewrites a provider timestamp so that it carries exactly one
// explicit offset. Zero offsets become "Z" and naive timestamps are taken as UTC.
// It returns "" for empty input.
func NormalizeTimestamp(ts string) string {
	s := strings.TrimSpace(ts)

	switch {
	case s == "":
		return ""
	case strings.HasSuffix(s, "Z") || strings.HasSuffix(s, "z"):
		return s[:len(s)-1] + "Z"
	case strings.HasSuffix(s, "+00:00"):
		return strings.TrimSuffix(s, "+00:00") + "Z"
	case strings.HasSuffix(s, "+0000"):
		return strings.TrimSuffix(s, "+0000") + "Z"
	case offsetSuffix.MatchString(s):
		return s
	default:
		return s + "Z"
	}
}

// ToInstant parses a provider timestamp into a UTC instant. The boolean is false when
// the input is empty or cannot be parsed.
func ToInstant(ts string) (time.Time, bool) {
	s := NormalizeTimestamp(ts)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}

	return time.Time{}, false
}

// LoadLocation resolves an IANA timezone name. The empty name and "Local" are rejected
// so that nothing falls back to the host timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	name := strings.TrimSpace(timezone)
	if name == "" || name == "Local" {
		return nil, ErrInvalidTimezone
	}

	if loc, ok := locations.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Join(ErrInvalidTimezone, err)
	}

	locations.Store(name, loc)

	return loc, nil
}

// FormatInTimezone renders t in the given IANA timezone. A zero instant or an invalid
// timezone yields Placeholder.
func FormatInTimezone(t time.Time, timezone string, style Style) string {
	if t.IsZero() {
		return Placeholder
	}

	loc, err := LoadLocation(timezone)
	if err != nil {
		return Placeholder
	}

	layout, ok := styleLayouts[style]
	if !ok {
		layout = styleLayouts[StyleTime]
	}

	return t.In(loc).Format(layout)
}

// FormatTimestamp is FormatInTimezone for a raw provider timestamp.
func FormatTimestamp(ts string, timezone string, style Style) string {
	t, ok := ToInstant(ts)
	if !ok {
		return Placeholder
	}

	return FormatInTimezone(t, timezone, style)
}

// StartOfToday returns the first instant of now's calendar date as observed in timezone:
// local midnight, or the end of the DST gap on days that skip it. Unknown timezones fall
// back to UTC midnight.
func StartOfToday(timezone string, now time.Time) time.Time {
	loc, err := LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}

	y, m, d := now.In(loc).Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, loc)

	// where a DST jump skips midnight, time.Date may land on the previous evening; the day
	// then starts at the end of that zone period
	if py, pm, pd := midnight.In(loc).Date(); py != y || pm != m || pd != d {
		if _, end := midnight.In(loc).ZoneBounds(); !end.IsZero() {
			midnight = end
		}
	}

	return midnight.UTC()
}

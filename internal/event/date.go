package event

import (
	"strconv"
	"strings"
	"time"
)

// ISODateLayout is the wire format for all dates in feeds and ranges
const ISODateLayout = "2006-01-02"

// DisplayDateLayout renders dates like "Mar 5, 2025"
const DisplayDateLayout = "Jan 2, 2006"

// FormatISODate formats t as YYYY-MM-DD in t's own location
func FormatISODate(t time.Time) string {
	return t.Format(ISODateLayout)
}

// ParseISODate splits a YYYY-MM-DD string into its components.
// The components are read as integers rather than handed to a zone-aware
// parser, so the calendar day can never shift.
// Returns ok=false if the string is not a valid ISO date.
func ParseISODate(date string) (year int, month time.Month, day int, ok bool) {
	parts := strings.Split(date, "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return 0, 0, 0, false
	}

	y, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 1 || m > 12 {
		return 0, 0, 0, false
	}
	d, err := strconv.Atoi(parts[2])
	if err != nil || d < 1 || d > 31 {
		return 0, 0, 0, false
	}

	// Reject dates that normalize into another month (e.g. 2025-02-30)
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Month() != time.Month(m) {
		return 0, 0, 0, false
	}

	return y, time.Month(m), d, true
}

// FormatDisplayDate converts "2025-03-05" into "Mar 5, 2025".
// Returns the original text unchanged if it is not a valid ISO date.
func FormatDisplayDate(date string) string {
	y, m, d, ok := ParseISODate(date)
	if !ok {
		return date
	}
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Format(DisplayDateLayout)
}

// NormalizeDate converts a feed date into a local YYYY-MM-DD string.
// Plain ISO dates pass through untouched. Full RFC 3339 timestamps are
// converted to the calendar date in loc. Anything else is returned as is
// with ok=false so the caller can decide whether to warn.
func NormalizeDate(raw string, loc *time.Location) (string, bool) {
	raw = strings.TrimSpace(raw)
	if _, _, _, ok := ParseISODate(raw); ok {
		return raw, true
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return FormatISODate(t.In(loc)), true
	}

	return raw, false
}

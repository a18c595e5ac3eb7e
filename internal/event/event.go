package event

import "strings"

// Event is a single calendar entry. Only the title is consumed; any other
// fields in the feed are ignored.
type Event struct {
	Title string `json:"title"`
}

// EventDay groups the events that fall on one calendar date
type EventDay struct {
	Date   string  `json:"date"` // YYYY-MM-DD
	Events []Event `json:"events"`
}

// DateRange is an inclusive window of ISO dates with a human-readable label
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Label string `json:"label"`
}

// IsSingleDay reports whether the range covers exactly one date
func (r DateRange) IsSingleDay() bool {
	return r.Start == r.End
}

// Contains reports whether date lies within [Start, End].
// ISO dates order lexicographically, so plain string comparison is enough.
func (r DateRange) Contains(date string) bool {
	return date >= r.Start && date <= r.End
}

// TrimmedTitle returns the title without surrounding whitespace
func (e Event) TrimmedTitle() string {
	return strings.TrimSpace(e.Title)
}

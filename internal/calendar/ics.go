// Package calendar decodes iCalendar (RFC 5545) feeds into event days.
package calendar

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/emersion/go-ical"

	"github.com/pfrederiksen/vcal-notify/internal/event"
)

// ContentType is the media type served for iCalendar feeds
const ContentType = "text/calendar"

// Decode reads every calendar in r and groups its VEVENTs by the local date
// of DTSTART in loc. Days are returned in ascending date order; events keep
// their order of appearance within a day. Events without a usable DTSTART are
// skipped and counted in the returned skipped value.
func Decode(r io.Reader, loc *time.Location) (days []event.EventDay, skipped int, err error) {
	decoder := ical.NewDecoder(r)
	byDate := make(map[string][]event.Event)

	for {
		cal, err := decoder.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("decoding calendar: %w", err)
		}

		for _, comp := range cal.Children {
			if comp.Name != ical.CompEvent {
				continue
			}

			date, ok := startDate(comp, loc)
			if !ok {
				skipped++
				continue
			}

			title := ""
			if summary := comp.Props.Get(ical.PropSummary); summary != nil {
				title = summary.Value
			}

			byDate[date] = append(byDate[date], event.Event{Title: title})
		}
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	days = make([]event.EventDay, 0, len(dates))
	for _, date := range dates {
		days = append(days, event.EventDay{Date: date, Events: byDate[date]})
	}

	return days, skipped, nil
}

// IsCalendar reports whether a response should be decoded as iCalendar,
// based on its Content-Type header or, failing that, the URL path.
func IsCalendar(contentType, path string) bool {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), ContentType) {
		return true
	}
	return strings.HasSuffix(strings.ToLower(path), ".ics")
}

// startDate returns DTSTART as a YYYY-MM-DD string in loc.
// All-day (VALUE=DATE) starts keep their calendar date.
func startDate(comp *ical.Component, loc *time.Location) (string, bool) {
	prop := comp.Props.Get(ical.PropDateTimeStart)
	if prop == nil {
		return "", false
	}

	t, err := prop.DateTime(loc)
	if err != nil {
		return "", false
	}

	return event.FormatISODate(t.In(loc)), true
}

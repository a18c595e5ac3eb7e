// Package event provides the calendar data model for vcal-notify.
//
// A feed is a list of EventDay values, each holding the events observed on one
// ISO calendar date. DateRange selects a window of those days (today, tomorrow,
// or the current Sunday to Saturday week) and FilterRange keeps the days that
// fall inside it. Dates travel as "YYYY-MM-DD" strings so ranges can be
// compared lexicographically.
package event

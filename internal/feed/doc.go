// Package feed fetches the remote calendar feed for vcal-notify.
//
// The feed is served either as a JSON array of {date, events:[{title}]} objects
// or as an iCalendar document. Fetch issues exactly one GET per call and
// reports every failure; FetchEvents wraps it fail-soft so a broken feed
// behaves like an empty one.
package feed

// Package pipeline runs one fetch, filter, format, send pass for a date window.
package pipeline

import (
	"context"
	"time"

	"github.com/pfrederiksen/vcal-notify/internal/event"
	"github.com/pfrederiksen/vcal-notify/internal/logger"
	"github.com/pfrederiksen/vcal-notify/internal/notifier"
	"github.com/pfrederiksen/vcal-notify/internal/telegram"
)

// EventSource supplies the feed. Implementations must not return an error;
// a failed fetch is reported as an empty slice.
type EventSource interface {
	FetchEvents(ctx context.Context) []event.EventDay
}

// Clock returns the current time; the range is computed from its local date
type Clock func() time.Time

// Runner holds everything one pipeline run needs
type Runner struct {
	Source    EventSource
	Notifiers []notifier.Notifier
	Community string

	// SendEmptyNotice sends a "no special events" message instead of
	// staying silent when nothing falls in the range.
	SendEmptyNotice bool

	Clock Clock
}

// Result summarizes a run
type Result struct {
	Range       event.DateRange   `json:"range"`
	FetchedDays int               `json:"fetched_days"`
	MatchedDays int               `json:"matched_days"`
	Sent        bool              `json:"sent"`
	Failures    map[string]string `json:"failures,omitempty"` // notifier name → error
}

// Run performs a single pass for mode. It never returns an error: fetch and
// delivery failures are logged and reflected in the Result.
func (r *Runner) Run(ctx context.Context, mode event.Mode) Result {
	now := time.Now
	if r.Clock != nil {
		now = r.Clock
	}

	dateRange, err := event.ForMode(mode, now())
	if err != nil {
		logger.Error("Invalid mode", logger.Fields{"mode": string(mode)}, err)
		return Result{}
	}

	log := logger.Default().WithField("mode", string(mode))
	log.Info("Sending events", logger.Fields{
		"start": dateRange.Start,
		"end":   dateRange.End,
	})

	days := r.Source.FetchEvents(ctx)
	matched := event.FilterRange(days, dateRange)

	result := Result{
		Range:       dateRange,
		FetchedDays: len(days),
		MatchedDays: len(matched),
	}

	message := telegram.FormatRangeMessage(matched, dateRange, r.Community)
	if message == "" {
		if !r.SendEmptyNotice {
			log.Info("No events in range, nothing to send", logger.Fields{"fetched_days": len(days)})
			return result
		}
		message = telegram.FormatEmptyNotice(dateRange)
	}

	result.Sent = r.notifyAll(ctx, log, message, &result)
	return result
}

// notifyAll makes one delivery attempt per notifier. It reports whether at
// least one succeeded.
func (r *Runner) notifyAll(ctx context.Context, log *logger.Logger, message string, result *Result) bool {
	sent := false
	for _, n := range r.Notifiers {
		if err := n.Notify(ctx, message); err != nil {
			logger.IncrCounter("notify.errors")
			log.Error("Error sending message", logger.Fields{"notifier": n.Name()}, err)
			if result.Failures == nil {
				result.Failures = make(map[string]string)
			}
			result.Failures[n.Name()] = err.Error()
			continue
		}
		logger.IncrCounter("notify.sent")
		sent = true
	}
	return sent
}

package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pfrederiksen/vcal-notify/internal/calendar"
	"github.com/pfrederiksen/vcal-notify/internal/event"
	"github.com/pfrederiksen/vcal-notify/internal/logger"
)

const (
	UserAgent      = "vcal-notify/1.0 (github.com/pfrederiksen/vcal-notify)"
	DefaultTimeout = 30 * time.Second
)

// Fetcher retrieves event days from a feed URL
type Fetcher struct {
	client *http.Client
	url    string
	loc    *time.Location
}

// New creates a Fetcher for url. A non-positive timeout uses DefaultTimeout.
func New(url string, timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
		},
		url: url,
		loc: time.Local,
	}
}

// Fetch performs a single GET against the feed and decodes the body.
// Dates are normalized to local YYYY-MM-DD strings.
func (f *Fetcher) Fetch(ctx context.Context) ([]event.EventDay, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json, text/calendar;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d (%s)", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	if calendar.IsCalendar(resp.Header.Get("Content-Type"), req.URL.Path) {
		days, skipped, err := calendar.Decode(resp.Body, f.loc)
		if err != nil {
			return nil, err
		}
		if skipped > 0 {
			logger.Warn("Skipped calendar events without a start date", logger.Fields{
				"url":     f.url,
				"skipped": skipped,
			})
		}
		return days, nil
	}

	return f.decodeJSON(resp.Body)
}

// FetchEvents is the fail-soft form of Fetch: any error is logged and an
// empty slice is returned.
func (f *Fetcher) FetchEvents(ctx context.Context) []event.EventDay {
	start := time.Now()
	days, err := f.Fetch(ctx)
	logger.RecordTiming("feed.fetch", time.Since(start))

	if err != nil {
		logger.IncrCounter("feed.errors")
		logger.Error("Error fetching data", logger.Fields{"url": f.url}, err)
		return []event.EventDay{}
	}

	logger.Debug("Fetched feed", logger.Fields{
		"url":  f.url,
		"days": len(days),
	})
	return days
}

// decodeJSON parses a JSON feed array
func (f *Fetcher) decodeJSON(r io.Reader) ([]event.EventDay, error) {
	var days []event.EventDay
	if err := json.NewDecoder(r).Decode(&days); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	for i := range days {
		normalized, ok := event.NormalizeDate(days[i].Date, f.loc)
		if !ok {
			logger.Warn("Unrecognized feed date", logger.Fields{"date": days[i].Date})
		}
		days[i].Date = normalized
	}

	if days == nil {
		days = []event.EventDay{}
	}
	return days, nil
}

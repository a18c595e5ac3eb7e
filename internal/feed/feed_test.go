package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"
)

func newTestFetcher(url string) *Fetcher {
	f := New(url, 5*time.Second)
	f.loc = time.UTC
	return f
}

func serveFile(t *testing.T, path, contentType string) *httptest.Server {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET request, got %s", r.Method)
		}
		if r.Header.Get("User-Agent") != UserAgent {
			t.Errorf("User-Agent = %q, want %q", r.Header.Get("User-Agent"), UserAgent)
		}
		w.Header().Set("Content-Type", contentType)
		w.Write(data) // nolint:errcheck
	}))
}

func TestFetch_JSON(t *testing.T) {
	server := serveFile(t, "testdata/feed.json", "application/json")
	defer server.Close()

	days, err := newTestFetcher(server.URL + "/events.json").Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() unexpected error: %v", err)
	}

	wantDates := []string{"2025-03-01", "2025-03-05", "2025-03-10", "2025-03-15"}
	if len(days) != len(wantDates) {
		t.Fatalf("Fetch() returned %d days, want %d", len(days), len(wantDates))
	}
	for i, want := range wantDates {
		if days[i].Date != want {
			t.Errorf("days[%d].Date = %s, want %s", i, days[i].Date, want)
		}
	}

	if len(days[1].Events) != 2 {
		t.Fatalf("days[1] has %d events, want 2", len(days[1].Events))
	}
	if days[1].Events[0].Title != " Gaura Purnima " {
		t.Errorf("title = %q, should be passed through untrimmed", days[1].Events[0].Title)
	}
}

func TestFetch_ICalendarByContentType(t *testing.T) {
	ics := "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//test//EN\r\n" +
		"BEGIN:VEVENT\r\nUID:1@example.com\r\nDTSTAMP:20250101T000000Z\r\n" +
		"DTSTART;VALUE=DATE:20250305\r\nSUMMARY:Gaura Purnima\r\nEND:VEVENT\r\n" +
		"END:VCALENDAR\r\n"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
		w.Write([]byte(ics)) // nolint:errcheck
	}))
	defer server.Close()

	days, err := newTestFetcher(server.URL + "/feed").Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() unexpected error: %v", err)
	}
	if len(days) != 1 || days[0].Date != "2025-03-05" {
		t.Fatalf("Fetch() = %+v, want one day on 2025-03-05", days)
	}
	if days[0].Events[0].Title != "Gaura Purnima" {
		t.Errorf("title = %q, want %q", days[0].Events[0].Title, "Gaura Purnima")
	}
}

func TestFetch_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Internal Server Error")) // nolint:errcheck
	}))
	defer server.Close()

	_, err := newTestFetcher(server.URL).Fetch(context.Background())
	if err == nil {
		t.Fatal("Fetch() expected error for HTTP 500, got nil")
	}
	if !strings.Contains(err.Error(), "500") {
		t.Errorf("Fetch() error = %v, want error containing '500'", err)
	}
}

func TestFetch_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"not": "an array"}`)) // nolint:errcheck
	}))
	defer server.Close()

	if _, err := newTestFetcher(server.URL).Fetch(context.Background()); err == nil {
		t.Error("Fetch() expected error for non-array JSON, got nil")
	}
}

func TestFetchEvents_FailSoft(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		},
		{
			name: "garbage body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("<html>maintenance</html>")) // nolint:errcheck
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			days := newTestFetcher(server.URL).FetchEvents(context.Background())
			if days == nil || len(days) != 0 {
				t.Errorf("FetchEvents() = %v, want empty non-nil slice", days)
			}
		})
	}
}

func TestFetchEvents_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	days := newTestFetcher(url).FetchEvents(context.Background())
	if len(days) != 0 {
		t.Errorf("FetchEvents() returned %d days, want 0", len(days))
	}
}

func TestFetchEvents_SingleRequest(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	newTestFetcher(server.URL).FetchEvents(context.Background())

	if calls != 1 {
		t.Errorf("server received %d requests, want exactly 1", calls)
	}
}

func TestNew_DefaultTimeout(t *testing.T) {
	f := New("https://example.com/events.json", 0)
	if f.client.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", f.client.Timeout, DefaultTimeout)
	}
	if f.url != "https://example.com/events.json" {
		t.Errorf("url = %q", f.url)
	}
}

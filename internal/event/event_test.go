package event

import (
	"encoding/json"
	"testing"
)

func TestFilterRange(t *testing.T) {
	days := []EventDay{
		{Date: "2025-03-01", Events: []Event{{Title: "Before"}}},
		{Date: "2025-03-02", Events: []Event{{Title: "Start boundary"}}},
		{Date: "2025-03-05", Events: []Event{{Title: "Inside"}}},
		{Date: "2025-03-08", Events: []Event{{Title: "End boundary"}}},
		{Date: "2025-03-09", Events: []Event{{Title: "After"}}},
		{Date: "2024-03-05", Events: []Event{{Title: "Previous year"}}},
	}

	tests := []struct {
		name      string
		r         DateRange
		wantDates []string
	}{
		{
			name:      "week range keeps inclusive boundaries",
			r:         DateRange{Start: "2025-03-02", End: "2025-03-08"},
			wantDates: []string{"2025-03-02", "2025-03-05", "2025-03-08"},
		},
		{
			name:      "single day equals start and end",
			r:         DateRange{Start: "2025-03-05", End: "2025-03-05"},
			wantDates: []string{"2025-03-05"},
		},
		{
			name:      "single day on boundary entry",
			r:         DateRange{Start: "2025-03-09", End: "2025-03-09"},
			wantDates: []string{"2025-03-09"},
		},
		{
			name:      "no matches",
			r:         DateRange{Start: "2025-04-01", End: "2025-04-07"},
			wantDates: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterRange(days, tt.r)
			if len(got) != len(tt.wantDates) {
				t.Fatalf("FilterRange() returned %d days, want %d", len(got), len(tt.wantDates))
			}
			for i, day := range got {
				if day.Date != tt.wantDates[i] {
					t.Errorf("FilterRange()[%d].Date = %s, want %s", i, day.Date, tt.wantDates[i])
				}
			}
		})
	}
}

func TestFilterRange_EmptyInput(t *testing.T) {
	got := FilterRange(nil, DateRange{Start: "2025-03-02", End: "2025-03-08"})
	if got == nil || len(got) != 0 {
		t.Errorf("FilterRange(nil) = %v, want empty non-nil slice", got)
	}
}

func TestEventDay_DecodeIgnoresExtraFields(t *testing.T) {
	data := `[{"date":"2025-03-05","tithi":"Purnima","events":[{"title":" Gaura Purnima ","fast":true}]}]`

	var days []EventDay
	if err := json.Unmarshal([]byte(data), &days); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(days) != 1 || len(days[0].Events) != 1 {
		t.Fatalf("decoded %+v, want one day with one event", days)
	}
	if got := days[0].Events[0].TrimmedTitle(); got != "Gaura Purnima" {
		t.Errorf("TrimmedTitle() = %q, want %q", got, "Gaura Purnima")
	}
}

func TestDateRange_Contains(t *testing.T) {
	r := DateRange{Start: "2025-03-02", End: "2025-03-08"}

	tests := []struct {
		date string
		want bool
	}{
		{"2025-03-01", false},
		{"2025-03-02", true},
		{"2025-03-08", true},
		{"2025-03-09", false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.date); got != tt.want {
			t.Errorf("Contains(%q) = %v, want %v", tt.date, got, tt.want)
		}
	}
}

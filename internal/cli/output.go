package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"github.com/pfrederiksen/vcal-notify/internal/event"
	"github.com/pfrederiksen/vcal-notify/internal/pipeline"
)

// OutputFormat specifies the summary format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

type jsonSummary struct {
	Mode event.Mode `json:"mode"`
	*pipeline.Result
}

// WriteOutput writes the run summary in the specified format
func WriteOutput(w io.Writer, mode event.Mode, result *pipeline.Result, format OutputFormat) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(jsonSummary{Mode: mode, Result: result})
	case FormatText:
		return writeText(w, mode, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeText outputs the summary as human-readable text
func writeText(w io.Writer, mode event.Mode, result *pipeline.Result) error {
	r := result.Range
	if r.IsSingleDay() {
		fmt.Fprintf(w, "%s: %s\n", mode, event.FormatDisplayDate(r.Start))
	} else {
		fmt.Fprintf(w, "%s: %s to %s\n", mode, event.FormatDisplayDate(r.Start), event.FormatDisplayDate(r.End))
	}

	fmt.Fprintf(w, "Days with events: %d of %d fetched\n", result.MatchedDays, result.FetchedDays)

	switch {
	case result.Sent:
		color.New(color.FgGreen).Fprintln(w, "Message sent.")
	case result.MatchedDays == 0 && len(result.Failures) == 0:
		color.New(color.FgYellow).Fprintln(w, "No events in range; nothing sent.")
	default:
		color.New(color.FgRed).Fprintln(w, "Message not delivered.")
	}

	names := make([]string, 0, len(result.Failures))
	for name := range result.Failures {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %s: %s\n", color.RedString(name), result.Failures[name])
	}

	return nil
}

package telegram

import (
	"fmt"
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pfrederiksen/vcal-notify/internal/event"
)

// FormatRangeMessage renders the events in days as an HTML message for r.
// Returns "" when days is empty; callers send nothing in that case.
func FormatRangeMessage(days []event.EventDay, r event.DateRange, community string) string {
	if len(days) == 0 {
		return ""
	}

	var msg strings.Builder

	msg.WriteString("<i>")
	if r.Label != "" {
		msg.WriteString(r.Label)
		msg.WriteString(" ")
	}
	msg.WriteString(fmt.Sprintf("Vaiṣṇava Calendar events for %s</i> 🙏\n", html.EscapeString(community)))

	if !r.IsSingleDay() {
		msg.WriteString(fmt.Sprintf("<b>%s to %s</b>\n",
			event.FormatDisplayDate(r.Start), event.FormatDisplayDate(r.End)))
	}

	for _, day := range days {
		msg.WriteString(FormatDay(day))
	}

	return msg.String()
}

// FormatDay renders one day as a bold date line followed by one code line per event
func FormatDay(day event.EventDay) string {
	var msg strings.Builder

	msg.WriteString(fmt.Sprintf("<b>%s</b>\n", event.FormatDisplayDate(day.Date)))
	for _, evt := range day.Events {
		msg.WriteString(fmt.Sprintf("<code>%s</code>\n", cleanTitle(evt.Title)))
	}

	return msg.String()
}

// FormatEmptyNotice renders the "no special events" notice for r
func FormatEmptyNotice(r event.DateRange) string {
	if !r.IsSingleDay() {
		return fmt.Sprintf("No special events between %s and %s 😔",
			event.FormatDisplayDate(r.Start), event.FormatDisplayDate(r.End))
	}
	if r.Label == event.LabelTomorrow {
		return "No special events tomorrow 😔"
	}
	return "No special events today 😔"
}

// PlainText strips HTML markup from a formatted message, keeping line breaks
func PlainText(message string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(message))
	if err != nil {
		return message
	}
	return doc.Text()
}

// cleanTitle trims a feed title and escapes it for HTML parse mode.
// The title text is otherwise sent verbatim, angle brackets included.
func cleanTitle(title string) string {
	return html.EscapeString(strings.TrimSpace(title))
}

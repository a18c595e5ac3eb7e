package event

import (
	"errors"
	"fmt"
	"time"
)

// Mode selects which date window a run covers
type Mode string

const (
	ModeToday    Mode = "today"
	ModeTomorrow Mode = "tomorrow"
	ModeWeek     Mode = "week"
)

// Range labels prefixed to outbound messages
const (
	LabelToday    = "Today's"
	LabelTomorrow = "Tomorrow's"
	LabelWeek     = "This week"
)

// ErrInvalidMode is returned by ParseMode for anything other than today, tomorrow or week
var ErrInvalidMode = errors.New(`invalid mode: use "today", "tomorrow", or "week"`)

// ParseMode validates a mode string. Matching is exact: "Today" or " week" are rejected.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeToday, ModeTomorrow, ModeWeek:
		return m, nil
	default:
		return "", fmt.Errorf("%w (got %q)", ErrInvalidMode, s)
	}
}

// Today returns the single-day range for the local date of now
func Today(now time.Time) DateRange {
	d := FormatISODate(now)
	return DateRange{Start: d, End: d, Label: LabelToday}
}

// Tomorrow returns the single-day range for the day after now
func Tomorrow(now time.Time) DateRange {
	d := FormatISODate(now.AddDate(0, 0, 1))
	return DateRange{Start: d, End: d, Label: LabelTomorrow}
}

// Week returns the Sunday to Saturday range containing now.
// If now is a Sunday the range starts on now.
func Week(now time.Time) DateRange {
	start := now.AddDate(0, 0, -int(now.Weekday()))
	end := start.AddDate(0, 0, 6)
	return DateRange{
		Start: FormatISODate(start),
		End:   FormatISODate(end),
		Label: LabelWeek,
	}
}

// ForMode returns the range for mode relative to now
func ForMode(mode Mode, now time.Time) (DateRange, error) {
	switch mode {
	case ModeToday:
		return Today(now), nil
	case ModeTomorrow:
		return Tomorrow(now), nil
	case ModeWeek:
		return Week(now), nil
	default:
		return DateRange{}, fmt.Errorf("%w (got %q)", ErrInvalidMode, string(mode))
	}
}

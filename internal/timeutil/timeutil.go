package timeutil

import (
	"fmt"
	"time"
)

// Today is the date token accepted by range bounds, meaning the current
// calendar day.
const Today = "today"

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// CeilMinutes converts a duration in seconds to whole minutes, rounding up.
// A 90-second session counts as 2 minutes.
func CeilMinutes(seconds int64) int64 {
	if seconds <= 0 {
		return 0
	}
	return (seconds + 59) / 60
}

// FormatMinutes renders whole minutes as "<hours> hours <minutes> minutes",
// dropping the hours segment entirely when it is zero.
func FormatMinutes(minutes int64) string {
	h := minutes / 60
	m := minutes % 60
	if h > 0 {
		return fmt.Sprintf("%d hours %d minutes", h, m)
	}
	return fmt.Sprintf("%d minutes", m)
}

// ParseLowerBound parses a range lower bound: the "today" token (start of
// the current day), a bare date (its midnight), or a full date-time. The
// result is Unix epoch seconds in local time.
func ParseLowerBound(s string) (int64, error) {
	return parseBound(s, false)
}

// ParseUpperBound parses a range upper bound. A bare date is widened to
// 23:59:59 of that day so the range stays inclusive on both ends; the
// "today" token keeps its start-of-day meaning.
func ParseUpperBound(s string) (int64, error) {
	return parseBound(s, true)
}

func parseBound(s string, widen bool) (int64, error) {
	if s == Today {
		return StartOfDay(time.Now()).Unix(), nil
	}
	if t, err := time.ParseInLocation(dateTimeLayout, s, time.Local); err == nil {
		return t.Unix(), nil
	}
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q (want %q, %q or %q)", s, Today, dateLayout, dateTimeLayout)
	}
	if widen {
		return EndOfDay(t).Unix(), nil
	}
	return t.Unix(), nil
}

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59 of the same day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

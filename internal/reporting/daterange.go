package reporting

import (
	"fmt"
	"time"
)

// RangeKey selects a relative reporting window anchored to "now".
type RangeKey string

const (
	RangeToday     RangeKey = "today"
	RangeYesterday RangeKey = "yesterday"
	RangeWeek      RangeKey = "week"
	RangeMonth     RangeKey = "month"
	RangeAllTime   RangeKey = "all_time"
)

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, t.Location())
}

// Range resolves a symbolic key to a concrete [from, to] interval in now's
// location. all_time (and any unknown key) yields (nil, nil): the caller
// must omit date filtering entirely rather than pass degenerate bounds.
//
// week is a 7-day inclusive window ending today, not calendar-week aligned.
// month subtracts one calendar month, which may normalize onto a different
// day-of-month after short months.
func Range(key RangeKey, now time.Time) (*time.Time, *time.Time) {
	switch key {
	case RangeToday:
		from := StartOfDay(now)
		to := EndOfDay(now)
		return &from, &to

	case RangeYesterday:
		yesterday := now.AddDate(0, 0, -1)
		from := StartOfDay(yesterday)
		to := EndOfDay(yesterday)
		return &from, &to

	case RangeWeek:
		from := StartOfDay(now.AddDate(0, 0, -6))
		to := EndOfDay(now)
		return &from, &to

	case RangeMonth:
		from := StartOfDay(now.AddDate(0, -1, 0))
		to := EndOfDay(now)
		return &from, &to

	default:
		return nil, nil
	}
}

// FormatYMD renders a date as zero-padded YYYY-MM-DD in its own location,
// so day boundaries match Range's local-time computation.
func FormatYMD(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

package datetime

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimeFormat is returned when a configured "HH:MM" string
// cannot be parsed.
var ErrInvalidTimeFormat = errors.New("invalid time format")

// TimeOfDay is a wall-clock time with minute granularity.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// MinuteOfDay returns the time as minutes since midnight.
func (t TimeOfDay) MinuteOfDay() int {
	return t.Hour*60 + t.Minute
}

// ParseTimeOfDay parses an "HH:MM" string. Out-of-range hour or minute
// values are not rejected; only non-numeric parts fail.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// DayStart returns 00:00:00.000 of the calendar day containing t, in
// t's location.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayEnd returns the inclusive upper bound of the calendar day
// containing t.
func DayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}

// WeekStart returns the Monday at 00:00:00.000 of the week containing t.
func WeekStart(t time.Time) time.Time {
	return DayStart(t.AddDate(0, 0, -(WeekdayOrdinal(t) - 1)))
}

// WeekEnd returns the following Sunday at the end of day.
func WeekEnd(t time.Time) time.Time {
	return DayEnd(WeekStart(t).AddDate(0, 0, 6))
}

// MonthStart returns the first day of the month containing t, at start
// of day.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthEnd returns the last day of the month containing t, at end of
// day.
func MonthEnd(t time.Time) time.Time {
	return DayEnd(MonthStart(t).AddDate(0, 1, -1))
}

// WeekdayOrdinal returns the weekday of t with Monday=1 through
// Sunday=7.
func WeekdayOrdinal(t time.Time) int {
	day := int(t.Weekday())
	if day == 0 {
		day = 7
	}
	return day
}

// IsWorkday reports whether t falls on one of the configured workday
// ordinals (Monday=1 .. Sunday=7).
func IsWorkday(t time.Time, workdays []int) bool {
	ordinal := WeekdayOrdinal(t)
	for _, d := range workdays {
		if d == ordinal {
			return true
		}
	}
	return false
}

// DayKey returns the local calendar-day key of t, used to bucket
// records for uniqueness and aggregation.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

package datetime

import (
	"errors"
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{"09:00", TimeOfDay{9, 0}, false},
		{"18:30", TimeOfDay{18, 30}, false},
		{"0:5", TimeOfDay{0, 5}, false},
		// Out-of-range values parse; only non-numeric input fails.
		{"25:99", TimeOfDay{25, 99}, false},
		{"", TimeOfDay{}, true},
		{"09", TimeOfDay{}, true},
		{"ab:cd", TimeOfDay{}, true},
		{"09:xx", TimeOfDay{}, true},
	}
	for _, c := range cases {
		got, err := ParseTimeOfDay(c.input)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseTimeOfDay(%q) error = nil, want error", c.input)
			} else if !errors.Is(err, ErrInvalidTimeFormat) {
				t.Errorf("ParseTimeOfDay(%q) error = %v, want ErrInvalidTimeFormat", c.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimeOfDay(%q) error = %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseTimeOfDay(%q) = %+v, want %+v", c.input, got, c.want)
		}
	}
}

func TestDayBounds(t *testing.T) {
	// Wednesday, 2026-03-18 14:30 local.
	ts := time.Date(2026, 3, 18, 14, 30, 12, 0, time.Local)

	start := DayStart(ts)
	end := DayEnd(ts)

	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 || start.Nanosecond() != 0 {
		t.Errorf("DayStart = %v, want midnight", start)
	}
	if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Errorf("DayEnd = %v, want end of day", end)
	}
	if start.Day() != 18 || end.Day() != 18 {
		t.Errorf("day bounds changed calendar day: start=%v end=%v", start, end)
	}
	if ts.Before(start) || ts.After(end) {
		t.Errorf("t outside [DayStart, DayEnd]: %v not in [%v, %v]", ts, start, end)
	}
}

func TestWeekBounds(t *testing.T) {
	cases := []struct {
		name      string
		ts        time.Time
		wantStart string
		wantEnd   string
	}{
		{"wednesday", time.Date(2026, 3, 18, 10, 0, 0, 0, time.Local), "2026-03-16", "2026-03-22"},
		{"monday", time.Date(2026, 3, 16, 0, 0, 0, 0, time.Local), "2026-03-16", "2026-03-22"},
		{"sunday", time.Date(2026, 3, 22, 23, 0, 0, 0, time.Local), "2026-03-16", "2026-03-22"},
	}
	for _, c := range cases {
		start := WeekStart(c.ts)
		end := WeekEnd(c.ts)
		if got := start.Format("2006-01-02"); got != c.wantStart {
			t.Errorf("%s: WeekStart = %s, want %s", c.name, got, c.wantStart)
		}
		if got := end.Format("2006-01-02"); got != c.wantEnd {
			t.Errorf("%s: WeekEnd = %s, want %s", c.name, got, c.wantEnd)
		}
		if start.Weekday() != time.Monday {
			t.Errorf("%s: WeekStart weekday = %v, want Monday", c.name, start.Weekday())
		}
		if c.ts.Before(start) || c.ts.After(end) {
			t.Errorf("%s: t outside week bounds", c.name)
		}
	}
}

func TestMonthBounds(t *testing.T) {
	// February of a leap year.
	ts := time.Date(2024, 2, 15, 12, 0, 0, 0, time.Local)

	start := MonthStart(ts)
	end := MonthEnd(ts)

	if got := start.Format("2006-01-02"); got != "2024-02-01" {
		t.Errorf("MonthStart = %s, want 2024-02-01", got)
	}
	if got := end.Format("2006-01-02"); got != "2024-02-29" {
		t.Errorf("MonthEnd = %s, want 2024-02-29", got)
	}
	if ts.Before(start) || ts.After(end) {
		t.Errorf("t outside month bounds")
	}
}

func TestWeekdayOrdinal(t *testing.T) {
	// 2026-03-16 is a Monday.
	for i := 0; i < 7; i++ {
		ts := time.Date(2026, 3, 16+i, 9, 0, 0, 0, time.Local)
		if got := WeekdayOrdinal(ts); got != i+1 {
			t.Errorf("WeekdayOrdinal(%s) = %d, want %d", ts.Format("2006-01-02"), got, i+1)
		}
	}
}

func TestIsWorkday(t *testing.T) {
	workdays := []int{1, 2, 3, 4, 5}

	monday := time.Date(2026, 3, 16, 9, 0, 0, 0, time.Local)
	saturday := time.Date(2026, 3, 21, 9, 0, 0, 0, time.Local)
	sunday := time.Date(2026, 3, 22, 9, 0, 0, 0, time.Local)

	if !IsWorkday(monday, workdays) {
		t.Error("IsWorkday(monday) = false, want true")
	}
	if IsWorkday(saturday, workdays) {
		t.Error("IsWorkday(saturday) = true, want false")
	}
	if IsWorkday(sunday, workdays) {
		t.Error("IsWorkday(sunday) = true, want false")
	}
	if IsWorkday(monday, nil) {
		t.Error("IsWorkday with empty workdays = true, want false")
	}
	if !IsWorkday(sunday, []int{6, 7}) {
		t.Error("IsWorkday(sunday, weekend schedule) = false, want true")
	}
}

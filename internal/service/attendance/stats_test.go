package attendance

import (
	"testing"
	"time"

	"github.com/chronotrack/chronotrack-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
)

func record(day time.Time, recordType attendance.Type, status attendance.Status) attendance.Record {
	return attendance.Record{
		UserID:     "user-1",
		OccurredAt: day,
		Type:       recordType,
		Status:     status,
	}
}

func TestAggregate_EmptyRange(t *testing.T) {
	schedule := testSchedule()
	// Mon 2025-06-02 through Fri 2025-06-06, five workdays, no records.
	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)
	end := time.Date(2025, 6, 6, 0, 0, 0, 0, time.Local)

	stats := Aggregate(nil, start, end, schedule)

	assert.Equal(t, 0, stats.TotalDays)
	assert.Equal(t, 0, stats.NormalDays)
	assert.Equal(t, 5, stats.AbsentDays)
	assert.Equal(t, 0, stats.OvertimeDays)
}

func TestAggregate_FullNormalWeek(t *testing.T) {
	schedule := testSchedule()
	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)
	end := time.Date(2025, 6, 6, 0, 0, 0, 0, time.Local)

	var records []attendance.Record
	for d := 0; d < 5; d++ {
		day := start.AddDate(0, 0, d)
		records = append(records,
			record(day.Add(9*time.Hour), attendance.TypeClockIn, attendance.StatusNormal),
			record(day.Add(18*time.Hour), attendance.TypeClockOut, attendance.StatusNormal),
		)
	}

	stats := Aggregate(records, start, end, schedule)

	assert.Equal(t, 5, stats.TotalDays)
	assert.Equal(t, 5, stats.NormalDays)
	assert.Equal(t, 0, stats.LateDays)
	assert.Equal(t, 0, stats.EarlyLeaveDays)
	assert.Equal(t, 0, stats.AbsentDays)
}

func TestAggregate_LateBeatsEarlyLeave(t *testing.T) {
	schedule := testSchedule()
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)

	records := []attendance.Record{
		record(day.Add(10*time.Hour), attendance.TypeClockIn, attendance.StatusLate),
		record(day.Add(16*time.Hour), attendance.TypeClockOut, attendance.StatusEarlyLeave),
	}

	stats := Aggregate(records, day, day, schedule)

	assert.Equal(t, 1, stats.TotalDays)
	assert.Equal(t, 1, stats.LateDays)
	assert.Equal(t, 0, stats.EarlyLeaveDays)
	assert.Equal(t, 0, stats.NormalDays)
	assert.Equal(t, 0, stats.AbsentDays)
}

func TestAggregate_EarlyLeaveWithNormalArrival(t *testing.T) {
	schedule := testSchedule()
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)

	records := []attendance.Record{
		record(day.Add(9*time.Hour), attendance.TypeClockIn, attendance.StatusNormal),
		record(day.Add(16*time.Hour), attendance.TypeClockOut, attendance.StatusEarlyLeave),
	}

	stats := Aggregate(records, day, day, schedule)

	assert.Equal(t, 1, stats.EarlyLeaveDays)
	assert.Equal(t, 0, stats.NormalDays)
}

func TestAggregate_SinglePunchDays(t *testing.T) {
	schedule := testSchedule()
	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)
	end := time.Date(2025, 6, 4, 0, 0, 0, 0, time.Local)

	records := []attendance.Record{
		// Monday: late clock-in only.
		record(start.Add(11*time.Hour), attendance.TypeClockIn, attendance.StatusLate),
		// Tuesday: early clock-out only.
		record(start.AddDate(0, 0, 1).Add(15*time.Hour), attendance.TypeClockOut, attendance.StatusEarlyLeave),
		// Wednesday: normal clock-in only.
		record(start.AddDate(0, 0, 2).Add(9*time.Hour), attendance.TypeClockIn, attendance.StatusNormal),
	}

	stats := Aggregate(records, start, end, schedule)

	assert.Equal(t, 3, stats.TotalDays)
	assert.Equal(t, 1, stats.LateDays)
	assert.Equal(t, 1, stats.EarlyLeaveDays)
	assert.Equal(t, 1, stats.NormalDays)
	assert.Equal(t, 0, stats.AbsentDays)
}

func TestAggregate_WeekendPunchRaisesTotalOnly(t *testing.T) {
	schedule := testSchedule()
	// Sat 2025-06-07 and Sun 2025-06-08, zero scheduled workdays.
	start := time.Date(2025, 6, 7, 0, 0, 0, 0, time.Local)
	end := time.Date(2025, 6, 8, 0, 0, 0, 0, time.Local)

	records := []attendance.Record{
		record(start.Add(10*time.Hour), attendance.TypeClockIn, attendance.StatusNormal),
	}

	stats := Aggregate(records, start, end, schedule)

	assert.Equal(t, 1, stats.TotalDays)
	assert.Equal(t, 1, stats.NormalDays)
	// NormalDays exceeds the zero scheduled workdays; the residual clamps.
	assert.Equal(t, 0, stats.AbsentDays)
}

func TestAggregate_PartialAttendance(t *testing.T) {
	schedule := testSchedule()
	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)
	end := time.Date(2025, 6, 6, 0, 0, 0, 0, time.Local)

	// Present Monday and Tuesday only.
	records := []attendance.Record{
		record(start.Add(9*time.Hour), attendance.TypeClockIn, attendance.StatusNormal),
		record(start.Add(18*time.Hour), attendance.TypeClockOut, attendance.StatusNormal),
		record(start.AddDate(0, 0, 1).Add(10*time.Hour), attendance.TypeClockIn, attendance.StatusLate),
	}

	stats := Aggregate(records, start, end, schedule)

	assert.Equal(t, 2, stats.TotalDays)
	assert.Equal(t, 1, stats.NormalDays)
	assert.Equal(t, 1, stats.LateDays)
	assert.Equal(t, 3, stats.AbsentDays)
}

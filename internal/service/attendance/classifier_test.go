package attendance

import (
	"testing"
	"time"

	"github.com/chronotrack/chronotrack-backend-go/internal/config"
	"github.com/chronotrack/chronotrack-backend-go/internal/domain/attendance"
	"github.com/chronotrack/chronotrack-backend-go/internal/pkg/datetime"
	"github.com/stretchr/testify/assert"
)

func testSchedule() config.WorkScheduleConfig {
	return config.WorkScheduleConfig{
		StartTime:        datetime.TimeOfDay{Hour: 9, Minute: 0},
		EndTime:          datetime.TimeOfDay{Hour: 18, Minute: 0},
		Workdays:         []int{1, 2, 3, 4, 5},
		LateGraceMinutes: 15,
		StandardHours:    8,
	}
}

// 2025-06-02 is a Monday, 2025-06-01 a Sunday.
func workdayAt(hour, minute, second int) time.Time {
	return time.Date(2025, 6, 2, hour, minute, second, 0, time.Local)
}

func TestClassify_ClockIn(t *testing.T) {
	schedule := testSchedule()

	tests := []struct {
		name       string
		occurredAt time.Time
		want       attendance.Status
	}{
		{"before start", workdayAt(8, 30, 0), attendance.StatusNormal},
		{"exactly at start", workdayAt(9, 0, 0), attendance.StatusNormal},
		{"within grace", workdayAt(9, 10, 0), attendance.StatusNormal},
		{"exactly at grace boundary", workdayAt(9, 15, 0), attendance.StatusNormal},
		{"seconds past grace boundary still normal", workdayAt(9, 15, 59), attendance.StatusNormal},
		{"one minute past grace", workdayAt(9, 16, 0), attendance.StatusLate},
		{"hours past grace", workdayAt(13, 0, 0), attendance.StatusLate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(attendance.TypeClockIn, tt.occurredAt, schedule)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_ClockOut(t *testing.T) {
	schedule := testSchedule()

	tests := []struct {
		name       string
		occurredAt time.Time
		want       attendance.Status
	}{
		{"one minute before end", workdayAt(17, 59, 0), attendance.StatusEarlyLeave},
		{"exactly at end", workdayAt(18, 0, 0), attendance.StatusNormal},
		{"seconds before end classified by minute", workdayAt(17, 59, 59), attendance.StatusEarlyLeave},
		{"after end", workdayAt(20, 30, 0), attendance.StatusNormal},
		{"morning clock out", workdayAt(10, 0, 0), attendance.StatusEarlyLeave},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(attendance.TypeClockOut, tt.occurredAt, schedule)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_NonWorkday(t *testing.T) {
	schedule := testSchedule()
	sunday := time.Date(2025, 6, 1, 13, 0, 0, 0, time.Local)

	assert.Equal(t, attendance.StatusNormal, Classify(attendance.TypeClockIn, sunday, schedule))
	assert.Equal(t, attendance.StatusNormal, Classify(attendance.TypeClockOut, sunday, schedule))
}

func TestClassify_GraceCrossingHourBoundary(t *testing.T) {
	// Start 08:50 with 15 minutes grace puts the boundary at 09:05.
	schedule := testSchedule()
	schedule.StartTime = datetime.TimeOfDay{Hour: 8, Minute: 50}

	assert.Equal(t, attendance.StatusNormal, Classify(attendance.TypeClockIn, workdayAt(9, 5, 0), schedule))
	assert.Equal(t, attendance.StatusLate, Classify(attendance.TypeClockIn, workdayAt(9, 6, 0), schedule))
}

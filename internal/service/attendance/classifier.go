package attendance

import (
	"time"

	"github.com/chronotrack/chronotrack-backend-go/internal/config"
	"github.com/chronotrack/chronotrack-backend-go/internal/domain/attendance"
	"github.com/chronotrack/chronotrack-backend-go/internal/pkg/datetime"
)

// Classify maps a clock event's type and timestamp to an attendance
// status under the given work schedule. On non-workdays every event is
// normal. Comparison is done at minute granularity; seconds are
// ignored.
func Classify(recordType attendance.Type, occurredAt time.Time, schedule config.WorkScheduleConfig) attendance.Status {
	if !datetime.IsWorkday(occurredAt, schedule.Workdays) {
		return attendance.StatusNormal
	}

	minuteOfDay := occurredAt.Hour()*60 + occurredAt.Minute()

	switch recordType {
	case attendance.TypeClockOut:
		// No grace period on early leave.
		if minuteOfDay < schedule.EndTime.MinuteOfDay() {
			return attendance.StatusEarlyLeave
		}
	default:
		// Arrival exactly at start + grace is still normal.
		if minuteOfDay > schedule.StartTime.MinuteOfDay()+schedule.LateGraceMinutes {
			return attendance.StatusLate
		}
	}

	return attendance.StatusNormal
}

package attendance

import (
	"time"

	"github.com/chronotrack/chronotrack-backend-go/internal/config"
	"github.com/chronotrack/chronotrack-backend-go/internal/domain/attendance"
	"github.com/chronotrack/chronotrack-backend-go/internal/pkg/datetime"
)

// Aggregate groups a user's records by local calendar day and derives
// summary counts over the inclusive [startDate, endDate] range.
//
// When a day has both punches, clock-in lateness takes precedence over
// clock-out earliness. A day with a single punch is classified by that
// record's own status. Absent days are the residual of scheduled
// workdays not accounted for by the other counts, clamped at zero;
// punches on non-workdays raise TotalDays without affecting the
// workday count. OvertimeDays is reserved and always zero.
func Aggregate(records []attendance.Record, startDate, endDate time.Time, schedule config.WorkScheduleConfig) attendance.Stats {
	byDay := make(map[string][]attendance.Record)
	for _, rec := range records {
		key := datetime.DayKey(rec.OccurredAt)
		byDay[key] = append(byDay[key], rec)
	}

	stats := attendance.Stats{TotalDays: len(byDay)}

	for _, dayRecords := range byDay {
		var clockIn, clockOut *attendance.Record
		for i := range dayRecords {
			switch dayRecords[i].Type {
			case attendance.TypeClockIn:
				if clockIn == nil {
					clockIn = &dayRecords[i]
				}
			case attendance.TypeClockOut:
				if clockOut == nil {
					clockOut = &dayRecords[i]
				}
			}
		}

		switch {
		case clockIn != nil && clockOut != nil:
			if clockIn.Status == attendance.StatusLate {
				stats.LateDays++
			} else if clockOut.Status == attendance.StatusEarlyLeave {
				stats.EarlyLeaveDays++
			} else {
				stats.NormalDays++
			}
		case clockIn != nil:
			if clockIn.Status == attendance.StatusLate {
				stats.LateDays++
			} else {
				stats.NormalDays++
			}
		case clockOut != nil:
			if clockOut.Status == attendance.StatusEarlyLeave {
				stats.EarlyLeaveDays++
			} else {
				stats.NormalDays++
			}
		}
	}

	totalWorkdays := 0
	for d := datetime.DayStart(startDate); !d.After(endDate); d = d.AddDate(0, 0, 1) {
		if datetime.IsWorkday(d, schedule.Workdays) {
			totalWorkdays++
		}
	}

	stats.AbsentDays = totalWorkdays - stats.NormalDays - stats.LateDays - stats.EarlyLeaveDays
	if stats.AbsentDays < 0 {
		stats.AbsentDays = 0
	}

	return stats
}

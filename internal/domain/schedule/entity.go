package schedule

import (
	"strings"
	"time"
)

// Resolved is the effective work schedule for one employee on one day:
// clinic-wide defaults, overridden field-by-field by a personal schedule
// when one is enabled. Immutable once resolved for a given scan.
type Resolved struct {
	StartTime string // "HH:MM"
	EndTime   string // "HH:MM"
	WorkDays  []string

	GracePeriodMinutes         int
	EarlyLeaveThresholdMinutes int
	OvertimeThresholdMinutes   int
}

var dayNames = [7]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// IsWorkday reports whether now's weekday is in the schedule's work-day set.
// Evaluated in wall-clock local time.
func (r Resolved) IsWorkday(now time.Time) bool {
	today := dayNames[int(now.Weekday())]
	for _, d := range r.WorkDays {
		if strings.EqualFold(d, today) {
			return true
		}
	}
	return false
}

// StartOn places the schedule's start time onto day's calendar date.
func (r Resolved) StartOn(day time.Time) time.Time {
	return timeOfDayOn(r.StartTime, day)
}

// EndOn places the schedule's end time onto day's calendar date.
// Shifts crossing midnight are not modeled: start and end always fall on
// the same calendar day as the scan.
func (r Resolved) EndOn(day time.Time) time.Time {
	return timeOfDayOn(r.EndTime, day)
}

// GraceDeadlineOn is the last instant a check-in still counts as present.
func (r Resolved) GraceDeadlineOn(day time.Time) time.Time {
	return r.StartOn(day).Add(time.Duration(r.GracePeriodMinutes) * time.Minute)
}

func timeOfDayOn(hhmm string, day time.Time) time.Time {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location())
}

package clinic

import "time"

// Settings is the clinic-wide configuration the attendance core reads.
// Resolved fresh per scan; never cached across requests.
type Settings struct {
	ID                 string
	ClinicName         string
	Address            string
	Phone              string
	IsActive           bool
	WorkSchedule       WorkSchedule
	AttendanceSettings AttendanceSettings
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type WorkSchedule struct {
	StartTime string // "HH:MM"
	EndTime   string // "HH:MM"
	WorkDays  []string
}

type AttendanceSettings struct {
	GracePeriodMinutes         int
	EarlyLeaveThresholdMinutes int
	OvertimeThresholdMinutes   int
}

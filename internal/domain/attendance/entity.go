package attendance

import "time"

type Attendance struct {
	ID                string
	EmployeeID        string
	Date              string // clinic-local calendar day, "2006-01-02"
	CheckInTime       *time.Time
	CheckOutTime      *time.Time
	LateMinutes       int
	EarlyLeaveMinutes int
	OvertimeMinutes   int
	TotalWorkMinutes  int
	Status            Status
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Joined for responses
	EmployeeName *string
	EmployeeRole *string
}

type Status string

const (
	StatusPresent    Status = "present"
	StatusLate       Status = "late"
	StatusEarlyLeave Status = "early_leave"
	StatusOvertime   Status = "overtime"
	StatusAbsent     Status = "absent"
)

// IsComplete reports whether the day's record is terminal: both timestamps
// set, no further scan may mutate it.
func (a Attendance) IsComplete() bool {
	return a.CheckInTime != nil && a.CheckOutTime != nil
}

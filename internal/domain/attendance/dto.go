package attendance

import (
	"time"

	"github.com/clinicops/clinic-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	EmployeeID string `json:"employee_id"`

	// Now overrides the scan instant; nil means the service clock.
	Now *time.Time `json:"-"`
}

func (r CheckInRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckOutRequest struct {
	EmployeeID string `json:"employee_id"`

	Now *time.Time `json:"-"`
}

func (r CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ScanRequest struct {
	CardID string `json:"nfc_card_id"`

	Now *time.Time `json:"-"`
}

func (r ScanRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.CardID) {
		errs = append(errs, validator.ValidationError{Field: "nfc_card_id", Message: "nfc_card_id is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID                string  `json:"id"`
	EmployeeID        string  `json:"employee_id"`
	EmployeeName      *string `json:"employee_name,omitempty"`
	EmployeeRole      *string `json:"employee_role,omitempty"`
	Date              string  `json:"date"`
	CheckInTime       *string `json:"check_in_time"`
	CheckOutTime      *string `json:"check_out_time"`
	LateMinutes       int     `json:"late_minutes"`
	EarlyLeaveMinutes int     `json:"early_leave_minutes"`
	OvertimeMinutes   int     `json:"overtime_minutes"`
	TotalWorkMinutes  int     `json:"total_work_minutes"`
	Status            string  `json:"status"`
}

type CheckInResponse struct {
	Message       string             `json:"message"`
	Attendance    AttendanceResponse `json:"attendance"`
	LateInfo      *string            `json:"late_info"`
	WorkStartTime string             `json:"work_start_time"`
	GracePeriod   int                `json:"grace_period"`
}

type WorkSummary struct {
	TotalWorkTime string  `json:"total_work_time"`
	Overtime      *string `json:"overtime"`
	EarlyLeave    *string `json:"early_leave"`
	WorkEndTime   string  `json:"work_end_time"`
}

type CheckOutResponse struct {
	Message     string             `json:"message"`
	Attendance  AttendanceResponse `json:"attendance"`
	WorkSummary WorkSummary        `json:"work_summary"`
}

// ScanAction names the transition a combined NFC scan resolved to.
type ScanAction string

const (
	ScanActionCheckIn  ScanAction = "checkin"
	ScanActionCheckOut ScanAction = "checkout"
	ScanActionComplete ScanAction = "complete"
)

type ScanResponse struct {
	Action     ScanAction         `json:"action"`
	Message    string             `json:"message"`
	Attendance AttendanceResponse `json:"attendance"`

	// Set when Action is "checkin"
	LateInfo      *string `json:"late_info,omitempty"`
	WorkStartTime string  `json:"work_start_time,omitempty"`
	GracePeriod   int     `json:"grace_period,omitempty"`

	// Set when Action is "checkout" or "complete"
	WorkSummary *WorkSummary `json:"work_summary,omitempty"`
}

package report

import (
	"github.com/clinicops/clinic-backend-go/internal/domain/attendance"
	"github.com/clinicops/clinic-backend-go/internal/pkg/validator"
)

type DailyReportRequest struct {
	// Date in "2006-01-02"; empty means today.
	Date string
}

func (r DailyReportRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DailySummary struct {
	TotalEmployees int `json:"total_employees"`
	Present        int `json:"present"`
	Late           int `json:"late"`
	EarlyLeave     int `json:"early_leave"`
	Overtime       int `json:"overtime"`
}

type DailyReportResponse struct {
	Date        string                          `json:"date"`
	Summary     DailySummary                    `json:"summary"`
	Attendances []attendance.AttendanceResponse `json:"attendances"`
}

type HistoryRequest struct {
	EmployeeID string
	StartDate  string // optional, "2006-01-02"
	EndDate    string // optional, "2006-01-02"
}

func (r HistoryRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if r.StartDate != "" {
		if _, ok := validator.IsValidDate(r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
		}
	}
	if r.EndDate != "" {
		if _, ok := validator.IsValidDate(r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HistoryResponse struct {
	EmployeeID string                          `json:"employee_id"`
	History    []attendance.AttendanceResponse `json:"history"`
}

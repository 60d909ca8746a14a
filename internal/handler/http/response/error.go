package response

import (
	"errors"
	"net/http"

	"github.com/clinicops/clinic-backend-go/internal/domain/attendance"
	"github.com/clinicops/clinic-backend-go/internal/domain/auth"
	"github.com/clinicops/clinic-backend-go/internal/domain/clinic"
	"github.com/clinicops/clinic-backend-go/internal/domain/employee"
	"github.com/clinicops/clinic-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Invalid-state rejections carry the conflicting record
	var conflict *attendance.Conflict
	if errors.As(err, &conflict) {
		InvalidState(w, conflict.Error(), conflict.Existing)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrCardNotFound):
		NotFound(w, "NFC card is not registered or employee is inactive")
	case errors.Is(err, employee.ErrEmployeeInactive):
		BadRequest(w, "Employee is not active", nil)

	// Clinic domain errors
	case errors.Is(err, clinic.ErrClinicNotFound):
		NotFound(w, "Clinic configuration not found")
	case errors.Is(err, clinic.ErrClinicInactive):
		BadRequest(w, "Clinic is not active", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrNotWorkday):
		BadRequest(w, "Today is not a workday", nil)
	case errors.Is(err, attendance.ErrDuplicateScan):
		BadRequest(w, "Duplicate scan, please wait before scanning again", nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		BadRequest(w, "Already checked in today", nil)
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "No check-in recorded today", nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		BadRequest(w, "Already checked out today", nil)
	case errors.Is(err, attendance.ErrCheckOutTooSoon):
		BadRequest(w, "Check-out attempted too soon after check-in", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

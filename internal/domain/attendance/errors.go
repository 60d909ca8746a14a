package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in errors
	ErrNotWorkday       = errors.New("today is not a workday")
	ErrAlreadyCheckedIn = errors.New("already checked in today")

	// Check-out errors
	ErrNotCheckedIn      = errors.New("no check-in recorded today")
	ErrAlreadyCheckedOut = errors.New("already checked out today")
	ErrCheckOutTooSoon   = errors.New("check-out attempted too soon after check-in")

	// Shared
	ErrDuplicateScan      = errors.New("duplicate scan within the cool-down window")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)

// Conflict wraps an invalid-state rejection together with the existing
// record that caused it, so handlers can attach the record to the response.
type Conflict struct {
	Reason   error
	Existing *Attendance
}

func (c *Conflict) Error() string {
	return c.Reason.Error()
}

func (c *Conflict) Unwrap() error {
	return c.Reason
}

// NewConflict builds a Conflict; existing may be nil.
func NewConflict(reason error, existing *Attendance) *Conflict {
	return &Conflict{Reason: reason, Existing: existing}
}

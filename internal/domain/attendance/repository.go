package attendance

import "context"

// AttendanceRepository defines data access for attendance records. The
// one-record-per-(employee,date) invariant is owned by the ledger above it;
// the backing table carries a unique index on (employee_id, date) as the
// second line of defence.
type AttendanceRepository interface {
	// Create inserts a new record; ErrAlreadyCheckedIn when the day is taken
	Create(ctx context.Context, record Attendance) (Attendance, error)

	// Update replaces the mutable fields of an existing record
	Update(ctx context.Context, record Attendance) error

	// GetByEmployeeAndDate returns the day's record, nil when none exists
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*Attendance, error)
}

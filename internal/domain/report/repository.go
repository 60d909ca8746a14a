package report

import (
	"context"

	"github.com/clinicops/clinic-backend-go/internal/domain/attendance"
)

// Repository is the read projection over ledger entries. No invariants
// beyond read-consistency with the attendance store.
type Repository interface {
	// ListByDate returns all records for a date, ordered by check-in ascending
	ListByDate(ctx context.Context, date string) ([]attendance.Attendance, error)

	// ListByEmployee returns an employee's records filtered by the optional
	// inclusive date range, ordered by date descending
	ListByEmployee(ctx context.Context, employeeID string, startDate, endDate string) ([]attendance.Attendance, error)
}

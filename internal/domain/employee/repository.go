package employee

import "context"

// EmployeeRepository is the read-side boundary to the employee directory.
// The attendance core never mutates employees.
type EmployeeRepository interface {
	// GetByID retrieves an employee by identifier
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByCard retrieves an active employee by NFC card id
	GetByCard(ctx context.Context, cardID string) (Employee, error)

	// GetByLogin retrieves an employee by login name, for authentication
	GetByLogin(ctx context.Context, login string) (Employee, error)

	// ListActive retrieves all active employees
	ListActive(ctx context.Context) ([]Employee, error)
}

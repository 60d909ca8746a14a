package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/clinicops/clinic-backend-go/internal/domain/employee"
	"github.com/clinicops/clinic-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, first_name, last_name, address, login, password_hash,
	role, specialization, nfc_card_id, is_active,
	personal_schedule_enabled, personal_schedule_start_time,
	personal_schedule_end_time, personal_schedule_work_days,
	salary_per_month::text, created_at, updated_at
`

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}
	return emp, nil
}

// GetByCard implements employee.EmployeeRepository. Inactive employees are
// treated the same as an unregistered card.
func (e *employeeRepository) GetByCard(ctx context.Context, cardID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE nfc_card_id = $1 AND is_active`
	emp, err := scanEmployee(q.QueryRow(ctx, query, cardID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrCardNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by card: %w", err)
	}
	return emp, nil
}

// GetByLogin implements employee.EmployeeRepository.
func (e *employeeRepository) GetByLogin(ctx context.Context, login string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE login = $1`
	emp, err := scanEmployee(q.QueryRow(ctx, query, login))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by login: %w", err)
	}
	return emp, nil
}

// ListActive implements employee.EmployeeRepository.
func (e *employeeRepository) ListActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE is_active ORDER BY last_name, first_name`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	var salaryText *string
	var scheduleEnabled *bool
	var scheduleStart, scheduleEnd *string
	var scheduleDays []string

	err := row.Scan(
		&emp.ID, &emp.FirstName, &emp.LastName, &emp.Address, &emp.Login, &emp.PasswordHash,
		&emp.Role, &emp.Specialization, &emp.NFCCardID, &emp.IsActive,
		&scheduleEnabled, &scheduleStart, &scheduleEnd, &scheduleDays,
		&salaryText, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	if scheduleEnabled != nil {
		personal := &employee.PersonalSchedule{
			Enabled:  *scheduleEnabled,
			WorkDays: scheduleDays,
		}
		if scheduleStart != nil {
			personal.StartTime = *scheduleStart
		}
		if scheduleEnd != nil {
			personal.EndTime = *scheduleEnd
		}
		emp.PersonalSchedule = personal
	}

	if salaryText != nil {
		salary, err := decimal.NewFromString(*salaryText)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("invalid salary value: %w", err)
		}
		emp.SalaryPerMonth = salary
	}

	return emp, nil
}

package postgresql

import (
	"context"
	"fmt"

	"github.com/clinicops/clinic-backend-go/internal/domain/attendance"
	"github.com/clinicops/clinic-backend-go/internal/domain/report"
	"github.com/clinicops/clinic-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.Repository {
	return &reportRepository{db: db}
}

const reportColumns = `
	a.id, a.employee_id, to_char(a.date, 'YYYY-MM-DD'),
	a.check_in_time, a.check_out_time,
	a.late_minutes, a.early_leave_minutes, a.overtime_minutes,
	a.total_work_minutes, a.status, a.created_at, a.updated_at,
	e.first_name || ' ' || e.last_name AS employee_name,
	e.role AS employee_role
`

// ListByDate implements report.Repository.
func (r *reportRepository) ListByDate(ctx context.Context, date string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + reportColumns + `
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.date = $1
		ORDER BY a.check_in_time ASC NULLS LAST
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances by date: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

// ListByEmployee implements report.Repository.
func (r *reportRepository) ListByEmployee(ctx context.Context, employeeID string, startDate, endDate string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "a.employee_id = $1"
	args := []interface{}{employeeID}
	argIdx := 2

	if startDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, startDate)
		argIdx++
	}
	if endDate != "" {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, endDate)
		argIdx++
	}

	query := `
		SELECT ` + reportColumns + `
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE ` + baseWhere + `
		ORDER BY a.date DESC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance history: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

func collectRecords(rows pgx.Rows) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date,
			&att.CheckInTime, &att.CheckOutTime,
			&att.LateMinutes, &att.EarlyLeaveMinutes, &att.OvertimeMinutes,
			&att.TotalWorkMinutes, &att.Status, &att.CreatedAt, &att.UpdatedAt,
			&att.EmployeeName, &att.EmployeeRole,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance rows: %w", err)
	}
	return records, nil
}

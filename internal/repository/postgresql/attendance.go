package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/clinicops/clinic-backend-go/internal/domain/attendance"
	"github.com/clinicops/clinic-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository. The unique index on
// (employee_id, date) turns a racing insert from another process into
// ErrAlreadyCheckedIn rather than a second record.
func (a *attendanceRepository) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	record.ID = uuid.NewString()

	query := `
		INSERT INTO attendances (
			id, employee_id, date, check_in_time, check_out_time,
			late_minutes, early_leave_minutes, overtime_minutes,
			total_work_minutes, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.Date,
		record.CheckInTime,
		record.CheckOutTime,
		record.LateMinutes,
		record.EarlyLeaveMinutes,
		record.OvertimeMinutes,
		record.TotalWorkMinutes,
		record.Status,
	).Scan(&record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return record, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, record attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET check_in_time = $1,
			check_out_time = $2,
			late_minutes = $3,
			early_leave_minutes = $4,
			overtime_minutes = $5,
			total_work_minutes = $6,
			status = $7,
			updated_at = NOW()
		WHERE id = $8
	`

	tag, err := q.Exec(ctx, query,
		record.CheckInTime,
		record.CheckOutTime,
		record.LateMinutes,
		record.EarlyLeaveMinutes,
		record.OvertimeMinutes,
		record.TotalWorkMinutes,
		record.Status,
		record.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, to_char(date, 'YYYY-MM-DD'),
			   check_in_time, check_out_time,
			   late_minutes, early_leave_minutes, overtime_minutes,
			   total_work_minutes, status, created_at, updated_at
		FROM attendances
		WHERE employee_id = $1
		  AND date = $2
		LIMIT 1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&att.ID, &att.EmployeeID, &att.Date,
		&att.CheckInTime, &att.CheckOutTime,
		&att.LateMinutes, &att.EarlyLeaveMinutes, &att.OvertimeMinutes,
		&att.TotalWorkMinutes, &att.Status, &att.CreatedAt, &att.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No record for the day yet
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

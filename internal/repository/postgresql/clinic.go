package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/clinicops/clinic-backend-go/internal/domain/clinic"
	"github.com/clinicops/clinic-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type clinicSettingsRepository struct {
	db *database.DB
}

func NewClinicSettingsRepository(db *database.DB) clinic.SettingsRepository {
	return &clinicSettingsRepository{db: db}
}

// Get implements clinic.SettingsRepository. The table holds a single row.
func (c *clinicSettingsRepository) Get(ctx context.Context) (clinic.Settings, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT id, clinic_name, address, phone, is_active,
			   work_start_time, work_end_time, work_days,
			   grace_period_minutes, early_leave_threshold_minutes,
			   overtime_threshold_minutes, created_at, updated_at
		FROM clinic_settings
		LIMIT 1
	`

	var settings clinic.Settings
	err := q.QueryRow(ctx, query).Scan(
		&settings.ID, &settings.ClinicName, &settings.Address, &settings.Phone, &settings.IsActive,
		&settings.WorkSchedule.StartTime, &settings.WorkSchedule.EndTime, &settings.WorkSchedule.WorkDays,
		&settings.AttendanceSettings.GracePeriodMinutes,
		&settings.AttendanceSettings.EarlyLeaveThresholdMinutes,
		&settings.AttendanceSettings.OvertimeThresholdMinutes,
		&settings.CreatedAt, &settings.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return clinic.Settings{}, clinic.ErrClinicNotFound
		}
		return clinic.Settings{}, fmt.Errorf("failed to get clinic settings: %w", err)
	}

	return settings, nil
}

package schedule

import (
	"context"
	"fmt"

	"github.com/clinicops/clinic-backend-go/internal/domain/clinic"
	"github.com/clinicops/clinic-backend-go/internal/domain/employee"
	"github.com/clinicops/clinic-backend-go/internal/domain/schedule"
)

// Resolver produces the effective work schedule for an employee from the
// clinic-wide defaults and any enabled personal override. Resolved fresh per
// scan so a configuration change takes effect on the next tap.
type Resolver struct {
	clinicRepo clinic.SettingsRepository
}

func NewResolver(clinicRepo clinic.SettingsRepository) *Resolver {
	return &Resolver{clinicRepo: clinicRepo}
}

// Resolve merges the clinic defaults with the employee's personal schedule.
// Start/end/work-days come from the override field-by-field when present;
// thresholds always come from the clinic's attendance settings.
func (r *Resolver) Resolve(ctx context.Context, emp employee.Employee) (schedule.Resolved, error) {
	settings, err := r.clinicRepo.Get(ctx)
	if err != nil {
		if err == clinic.ErrClinicNotFound {
			return schedule.Resolved{}, clinic.ErrClinicNotFound
		}
		return schedule.Resolved{}, fmt.Errorf("failed to get clinic settings: %w", err)
	}

	resolved := schedule.Resolved{
		StartTime:                  settings.WorkSchedule.StartTime,
		EndTime:                    settings.WorkSchedule.EndTime,
		WorkDays:                   settings.WorkSchedule.WorkDays,
		GracePeriodMinutes:         settings.AttendanceSettings.GracePeriodMinutes,
		EarlyLeaveThresholdMinutes: settings.AttendanceSettings.EarlyLeaveThresholdMinutes,
		OvertimeThresholdMinutes:   settings.AttendanceSettings.OvertimeThresholdMinutes,
	}

	if emp.HasScheduleOverride() {
		personal := emp.PersonalSchedule
		if personal.StartTime != "" {
			resolved.StartTime = personal.StartTime
		}
		if personal.EndTime != "" {
			resolved.EndTime = personal.EndTime
		}
		resolved.WorkDays = personal.WorkDays
	}

	return resolved, nil
}

package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/clinicops/clinic-backend-go/internal/domain/attendance"
	"github.com/clinicops/clinic-backend-go/internal/domain/employee"
	"github.com/clinicops/clinic-backend-go/internal/pkg/clock"
	attendanceservice "github.com/clinicops/clinic-backend-go/internal/service/attendance"
	"github.com/clinicops/clinic-backend-go/internal/service/schedule"
)

type AttendanceJobs struct {
	employeeRepo employee.EmployeeRepository
	resolver     *schedule.Resolver
	ledger       *attendanceservice.Ledger
	clock        clock.Clock
}

func NewAttendanceJobs(
	employeeRepo employee.EmployeeRepository,
	resolver *schedule.Resolver,
	ledger *attendanceservice.Ledger,
	clk clock.Clock,
) *AttendanceJobs {
	return &AttendanceJobs{
		employeeRepo: employeeRepo,
		resolver:     resolver,
		ledger:       ledger,
		clock:        clk,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees creates an absence record for every active employee
// who had a workday yesterday but never scanned in.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	// Only run in the first hour after midnight
	if j.clock.Now().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting mark absent employees job")

	employees, err := j.employeeRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active employees: %w", err)
	}

	yesterday := j.clock.Now().AddDate(0, 0, -1)
	date := yesterday.Format("2006-01-02")

	marked := 0
	for _, emp := range employees {
		sched, err := j.resolver.Resolve(ctx, emp)
		if err != nil {
			slog.Error("Cron: Failed to resolve schedule", "employee_id", emp.ID, "error", err)
			continue
		}
		if !sched.IsWorkday(yesterday) {
			continue
		}

		_, err = j.ledger.Mutate(ctx, emp.ID, date, func(existing *attendance.Attendance) (*attendance.Attendance, error) {
			if existing != nil {
				// Already has a record (scanned or previously marked)
				return nil, nil
			}
			return &attendance.Attendance{
				EmployeeID: emp.ID,
				Date:       date,
				Status:     attendance.StatusAbsent,
			}, nil
		})
		if err != nil {
			if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
				// Lost the race to a real scan from another process
				continue
			}
			slog.Error("Cron: Failed to mark employee absent",
				"employee_id", emp.ID,
				"date", date,
				"error", err)
			continue
		}
		marked++
	}

	slog.Info("Cron: Marked absent employees", "count", marked)
	return nil
}

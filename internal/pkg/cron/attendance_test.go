package cron

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicops/clinic-backend-go/internal/domain/attendance"
	"github.com/clinicops/clinic-backend-go/internal/domain/clinic"
	"github.com/clinicops/clinic-backend-go/internal/domain/employee"
	"github.com/clinicops/clinic-backend-go/internal/pkg/clock"
	attendanceservice "github.com/clinicops/clinic-backend-go/internal/service/attendance"
	"github.com/clinicops/clinic-backend-go/internal/service/schedule"
)

type memAttendanceRepo struct {
	mu      sync.Mutex
	records map[string]attendance.Attendance
}

func newMemAttendanceRepo() *memAttendanceRepo {
	return &memAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func (m *memAttendanceRepo) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := record.EmployeeID + "|" + record.Date
	if _, ok := m.records[k]; ok {
		return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
	}
	record.ID = k
	m.records[k] = record
	return record, nil
}

func (m *memAttendanceRepo) Update(ctx context.Context, record attendance.Attendance) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[record.EmployeeID+"|"+record.Date] = record
	return nil
}

func (m *memAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (*attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[employeeID+"|"+date]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

type memEmployeeRepo struct {
	employees []employee.Employee
}

func (m *memEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, emp := range m.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (m *memEmployeeRepo) GetByCard(ctx context.Context, cardID string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrCardNotFound
}

func (m *memEmployeeRepo) GetByLogin(ctx context.Context, login string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (m *memEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range m.employees {
		if emp.IsActive {
			out = append(out, emp)
		}
	}
	return out, nil
}

type memClinicRepo struct{}

func (memClinicRepo) Get(ctx context.Context) (clinic.Settings, error) {
	return clinic.Settings{
		IsActive: true,
		WorkSchedule: clinic.WorkSchedule{
			StartTime: "09:00",
			EndTime:   "18:00",
			WorkDays:  []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
		},
	}, nil
}

func newJobsEnv(clk clock.Clock, emps ...employee.Employee) (*AttendanceJobs, *memAttendanceRepo) {
	repo := newMemAttendanceRepo()
	jobs := NewAttendanceJobs(
		&memEmployeeRepo{employees: emps},
		schedule.NewResolver(memClinicRepo{}),
		attendanceservice.NewLedger(repo, nil),
		clk,
	)
	return jobs, repo
}

// Tuesday 00:30; yesterday was a Monday workday.
var afterMidnight = time.Date(2026, 1, 6, 0, 30, 0, 0, time.UTC)

func TestMarkAbsentEmployees_CreatesAbsenceRecords(t *testing.T) {
	jobs, repo := newJobsEnv(clock.Fixed{Instant: afterMidnight},
		employee.Employee{ID: "emp-1", IsActive: true},
		employee.Employee{ID: "emp-2", IsActive: true},
	)

	err := jobs.MarkAbsentEmployees(context.Background())
	require.NoError(t, err)

	for _, id := range []string{"emp-1", "emp-2"} {
		rec, err := repo.GetByEmployeeAndDate(context.Background(), id, "2026-01-05")
		require.NoError(t, err)
		require.NotNil(t, rec, "expected absence record for %s", id)
		assert.Equal(t, attendance.StatusAbsent, rec.Status)
		assert.Nil(t, rec.CheckInTime)
	}
}

func TestMarkAbsentEmployees_SkipsEmployeesWithRecords(t *testing.T) {
	jobs, repo := newJobsEnv(clock.Fixed{Instant: afterMidnight},
		employee.Employee{ID: "emp-1", IsActive: true},
	)

	in := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	_, err := repo.Create(context.Background(), attendance.Attendance{
		EmployeeID:  "emp-1",
		Date:        "2026-01-05",
		CheckInTime: &in,
		Status:      attendance.StatusPresent,
	})
	require.NoError(t, err)

	err = jobs.MarkAbsentEmployees(context.Background())
	require.NoError(t, err)

	rec, err := repo.GetByEmployeeAndDate(context.Background(), "emp-1", "2026-01-05")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, attendance.StatusPresent, rec.Status)
}

func TestMarkAbsentEmployees_SkipsNonWorkdays(t *testing.T) {
	// Monday 00:30; yesterday was a Sunday.
	monday := time.Date(2026, 1, 5, 0, 30, 0, 0, time.UTC)
	jobs, repo := newJobsEnv(clock.Fixed{Instant: monday},
		employee.Employee{ID: "emp-1", IsActive: true},
	)

	err := jobs.MarkAbsentEmployees(context.Background())
	require.NoError(t, err)

	rec, err := repo.GetByEmployeeAndDate(context.Background(), "emp-1", "2026-01-04")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestMarkAbsentEmployees_OnlyRunsAfterMidnight(t *testing.T) {
	noon := time.Date(2026, 1, 6, 12, 0, 0, 0, time.UTC)
	jobs, repo := newJobsEnv(clock.Fixed{Instant: noon},
		employee.Employee{ID: "emp-1", IsActive: true},
	)

	err := jobs.MarkAbsentEmployees(context.Background())
	require.NoError(t, err)

	rec, err := repo.GetByEmployeeAndDate(context.Background(), "emp-1", "2026-01-05")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestMarkAbsentEmployees_SkipsInactiveEmployees(t *testing.T) {
	jobs, repo := newJobsEnv(clock.Fixed{Instant: afterMidnight},
		employee.Employee{ID: "emp-1", IsActive: false},
	)

	err := jobs.MarkAbsentEmployees(context.Background())
	require.NoError(t, err)

	rec, err := repo.GetByEmployeeAndDate(context.Background(), "emp-1", "2026-01-05")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

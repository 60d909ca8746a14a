package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicops/clinic-backend-go/internal/domain/attendance"
	"github.com/clinicops/clinic-backend-go/internal/domain/report"
	"github.com/clinicops/clinic-backend-go/internal/pkg/clock"
	"github.com/clinicops/clinic-backend-go/internal/pkg/validator"
)

type stubReportRepo struct {
	byDate     map[string][]attendance.Attendance
	byEmployee []attendance.Attendance

	lastEmployeeID string
	lastStartDate  string
	lastEndDate    string
}

func (s *stubReportRepo) ListByDate(ctx context.Context, date string) ([]attendance.Attendance, error) {
	return s.byDate[date], nil
}

func (s *stubReportRepo) ListByEmployee(ctx context.Context, employeeID, startDate, endDate string) ([]attendance.Attendance, error) {
	s.lastEmployeeID = employeeID
	s.lastStartDate = startDate
	s.lastEndDate = endDate
	return s.byEmployee, nil
}

func record(id string, status attendance.Status, late, early, overtime int, checkedIn bool) attendance.Attendance {
	rec := attendance.Attendance{
		ID:                id,
		EmployeeID:        "emp-" + id,
		Date:              "2026-01-05",
		LateMinutes:       late,
		EarlyLeaveMinutes: early,
		OvertimeMinutes:   overtime,
		Status:            status,
	}
	if checkedIn {
		in := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
		rec.CheckInTime = &in
	}
	return rec
}

func TestReportService_DailyReport_Summary(t *testing.T) {
	repo := &stubReportRepo{byDate: map[string][]attendance.Attendance{
		"2026-01-05": {
			record("1", attendance.StatusPresent, 0, 0, 0, true),
			record("2", attendance.StatusLate, 20, 0, 0, true),
			record("3", attendance.StatusOvertime, 0, 0, 45, true),
			record("4", attendance.StatusEarlyLeave, 10, 40, 0, true),
			record("5", attendance.StatusAbsent, 0, 0, 0, false),
		},
	}}
	svc := NewReportService(repo, clock.Fixed{Instant: time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)})

	resp, err := svc.DailyReport(context.Background(), report.DailyReportRequest{Date: "2026-01-05"})
	require.NoError(t, err)

	assert.Equal(t, "2026-01-05", resp.Date)
	assert.Equal(t, 5, resp.Summary.TotalEmployees)
	assert.Equal(t, 4, resp.Summary.Present)
	// The late employee who also left early counts in both buckets.
	assert.Equal(t, 2, resp.Summary.Late)
	assert.Equal(t, 1, resp.Summary.EarlyLeave)
	assert.Equal(t, 1, resp.Summary.Overtime)
	assert.Len(t, resp.Attendances, 5)
}

func TestReportService_DailyReport_DefaultsToToday(t *testing.T) {
	repo := &stubReportRepo{byDate: map[string][]attendance.Attendance{
		"2026-01-05": {record("1", attendance.StatusPresent, 0, 0, 0, true)},
	}}
	svc := NewReportService(repo, clock.Fixed{Instant: time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)})

	resp, err := svc.DailyReport(context.Background(), report.DailyReportRequest{})
	require.NoError(t, err)

	assert.Equal(t, "2026-01-05", resp.Date)
	assert.Equal(t, 1, resp.Summary.TotalEmployees)
}

func TestReportService_DailyReport_EmptyDay(t *testing.T) {
	repo := &stubReportRepo{byDate: map[string][]attendance.Attendance{}}
	svc := NewReportService(repo, clock.Fixed{Instant: time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)})

	resp, err := svc.DailyReport(context.Background(), report.DailyReportRequest{Date: "2026-01-06"})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Summary.TotalEmployees)
	assert.NotNil(t, resp.Attendances)
	assert.Empty(t, resp.Attendances)
}

func TestReportService_DailyReport_InvalidDate(t *testing.T) {
	svc := NewReportService(&stubReportRepo{}, clock.Fixed{})

	_, err := svc.DailyReport(context.Background(), report.DailyReportRequest{Date: "05-01-2026"})

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestReportService_EmployeeHistory(t *testing.T) {
	repo := &stubReportRepo{byEmployee: []attendance.Attendance{
		record("2", attendance.StatusLate, 20, 0, 0, true),
		record("1", attendance.StatusPresent, 0, 0, 0, true),
	}}
	svc := NewReportService(repo, clock.Fixed{})

	resp, err := svc.EmployeeHistory(context.Background(), report.HistoryRequest{
		EmployeeID: "emp-1",
		StartDate:  "2026-01-01",
		EndDate:    "2026-01-31",
	})
	require.NoError(t, err)

	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Len(t, resp.History, 2)
	assert.Equal(t, "emp-1", repo.lastEmployeeID)
	assert.Equal(t, "2026-01-01", repo.lastStartDate)
	assert.Equal(t, "2026-01-31", repo.lastEndDate)
}

func TestReportService_EmployeeHistory_RequiresEmployeeID(t *testing.T) {
	svc := NewReportService(&stubReportRepo{}, clock.Fixed{})

	_, err := svc.EmployeeHistory(context.Background(), report.HistoryRequest{})

	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

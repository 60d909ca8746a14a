package report

import (
	"context"
	"fmt"
	"time"

	"github.com/clinicops/clinic-backend-go/internal/domain/attendance"
	"github.com/clinicops/clinic-backend-go/internal/domain/report"
	"github.com/clinicops/clinic-backend-go/internal/pkg/clock"
)

type ReportServiceImpl struct {
	repo  report.Repository
	clock clock.Clock
}

func NewReportService(repo report.Repository, clk clock.Clock) report.ReportService {
	return &ReportServiceImpl{repo: repo, clock: clk}
}

// DailyReport implements report.ReportService.
func (r *ReportServiceImpl) DailyReport(ctx context.Context, req report.DailyReportRequest) (report.DailyReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.DailyReportResponse{}, err
	}

	date := req.Date
	if date == "" {
		date = r.clock.Now().Format("2006-01-02")
	}

	records, err := r.repo.ListByDate(ctx, date)
	if err != nil {
		return report.DailyReportResponse{}, fmt.Errorf("failed to list attendances for %s: %w", date, err)
	}

	summary := report.DailySummary{TotalEmployees: len(records)}
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		if rec.CheckInTime != nil {
			summary.Present++
		}
		if rec.LateMinutes > 0 {
			summary.Late++
		}
		if rec.EarlyLeaveMinutes > 0 {
			summary.EarlyLeave++
		}
		if rec.OvertimeMinutes > 0 {
			summary.Overtime++
		}
		responses = append(responses, mapRecord(rec))
	}

	return report.DailyReportResponse{
		Date:        date,
		Summary:     summary,
		Attendances: responses,
	}, nil
}

// EmployeeHistory implements report.ReportService.
func (r *ReportServiceImpl) EmployeeHistory(ctx context.Context, req report.HistoryRequest) (report.HistoryResponse, error) {
	if err := req.Validate(); err != nil {
		return report.HistoryResponse{}, err
	}

	records, err := r.repo.ListByEmployee(ctx, req.EmployeeID, req.StartDate, req.EndDate)
	if err != nil {
		return report.HistoryResponse{}, fmt.Errorf("failed to list attendance history: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecord(rec))
	}

	return report.HistoryResponse{
		EmployeeID: req.EmployeeID,
		History:    responses,
	}, nil
}

func mapRecord(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:                att.ID,
		EmployeeID:        att.EmployeeID,
		EmployeeName:      att.EmployeeName,
		EmployeeRole:      att.EmployeeRole,
		Date:              att.Date,
		CheckInTime:       formatTimePtr(att.CheckInTime),
		CheckOutTime:      formatTimePtr(att.CheckOutTime),
		LateMinutes:       att.LateMinutes,
		EarlyLeaveMinutes: att.EarlyLeaveMinutes,
		OvertimeMinutes:   att.OvertimeMinutes,
		TotalWorkMinutes:  att.TotalWorkMinutes,
		Status:            string(att.Status),
	}
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02 15:04:05")
	return &s
}

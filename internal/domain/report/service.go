package report

import "context"

type ReportService interface {
	// DailyReport summarizes one day's attendance; empty date means today
	DailyReport(ctx context.Context, req DailyReportRequest) (DailyReportResponse, error)

	// EmployeeHistory lists an employee's records, newest first
	EmployeeHistory(ctx context.Context, req HistoryRequest) (HistoryResponse, error)
}

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clinicops/clinic-backend-go/internal/domain/report"
	"github.com/clinicops/clinic-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	DailyReport(w http.ResponseWriter, r *http.Request)
	EmployeeHistory(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// DailyReport implements ReportHandler.
func (h *reportHandlerImpl) DailyReport(w http.ResponseWriter, r *http.Request) {
	req := report.DailyReportRequest{
		Date: r.URL.Query().Get("date"),
	}

	result, err := h.reportService.DailyReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// EmployeeHistory implements ReportHandler.
func (h *reportHandlerImpl) EmployeeHistory(w http.ResponseWriter, r *http.Request) {
	req := report.HistoryRequest{
		EmployeeID: chi.URLParam(r, "employeeID"),
		StartDate:  r.URL.Query().Get("start_date"),
		EndDate:    r.URL.Query().Get("end_date"),
	}

	result, err := h.reportService.EmployeeHistory(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

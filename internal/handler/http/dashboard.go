package http

import (
	"net/http"

	"github.com/prostaff/attendance-backend-go/internal/domain/report"
	"github.com/prostaff/attendance-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	reportService report.ReportService
}

func NewDashboardHandler(reportService report.ReportService) DashboardHandler {
	return &dashboardHandlerImpl{
		reportService: reportService,
	}
}

// Summary implements DashboardHandler.
func (h *dashboardHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.DashboardSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prostaff/attendance-backend-go/internal/domain/ledger"
	"github.com/prostaff/attendance-backend-go/internal/domain/report"
	"github.com/prostaff/attendance-backend-go/internal/handler/http/response"
)

type LedgerHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type ledgerHandlerImpl struct {
	ledgerService ledger.LedgerService
	reportService report.ReportService
}

func NewLedgerHandler(ledgerService ledger.LedgerService, reportService report.ReportService) LedgerHandler {
	return &ledgerHandlerImpl{
		ledgerService: ledgerService,
		reportService: reportService,
	}
}

// List implements LedgerHandler.
func (h *ledgerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.ledgerService.BuildLedger(r.Context(), filterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// Export implements LedgerHandler.
func (h *ledgerHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	format := report.Format(r.URL.Query().Get("format"))
	if format == "" {
		format = report.FormatCSV
	}

	rows, err := h.ledgerService.BuildLedger(r.Context(), filterFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	file, err := h.reportService.ExportLedger(r.Context(), rows, format)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file.Data)
}

// filterFromQuery reads the optional date_start, date_end and employee_id
// query parameters. Malformed dates are treated as absent bounds.
func filterFromQuery(r *http.Request) ledger.Filter {
	q := r.URL.Query()

	var filter ledger.Filter
	filter.EmployeeID = q.Get("employee_id")

	if t, err := time.ParseInLocation("2006-01-02", q.Get("date_start"), time.Local); err == nil {
		filter.DateStart = &t
	}
	if t, err := time.ParseInLocation("2006-01-02", q.Get("date_end"), time.Local); err == nil {
		filter.DateEnd = &t
	}

	return filter
}

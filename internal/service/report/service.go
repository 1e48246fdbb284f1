package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/prostaff/attendance-backend-go/internal/domain/attendance"
	"github.com/prostaff/attendance-backend-go/internal/domain/ledger"
	"github.com/prostaff/attendance-backend-go/internal/domain/policy"
	"github.com/prostaff/attendance-backend-go/internal/domain/report"
)

var exportHeader = []string{"Date", "Employee Name", "Check-In", "Check-Out", "Lateness", "Overtime", "Notes"}

const exportSheet = "Attendance"

type ReportServiceImpl struct {
	attendanceService attendance.AttendanceService
	now               func() time.Time
}

func NewReportService(attendanceService attendance.AttendanceService) report.ReportService {
	return &ReportServiceImpl{
		attendanceService: attendanceService,
		now:               time.Now,
	}
}

// ExportLedger implements report.ReportService.
func (s *ReportServiceImpl) ExportLedger(ctx context.Context, rows []ledger.Row, format report.Format) (report.ExportFile, error) {
	switch format {
	case report.FormatCSV:
		return s.exportCSV(rows)
	case report.FormatXLSX:
		return s.exportXLSX(rows)
	default:
		return report.ExportFile{}, fmt.Errorf("%w: %q", report.ErrUnsupportedFormat, format)
	}
}

// DashboardSummary implements report.ReportService.
func (s *ReportServiceImpl) DashboardSummary(ctx context.Context) (report.DashboardSummary, error) {
	events, err := s.attendanceService.ListToday(ctx)
	if err != nil {
		return report.DashboardSummary{}, err
	}

	summary := report.DashboardSummary{
		Date:   s.now().Format("2006-01-02"),
		Events: events,
	}

	for _, event := range events {
		if event.Kind != string(attendance.KindCheckIn) {
			continue
		}
		switch policy.Status(event.Status) {
		case policy.StatusOnTime:
			summary.OnTimeCount++
		case policy.StatusLate:
			summary.LateCount++
		}
	}

	return summary, nil
}

func (s *ReportServiceImpl) exportCSV(rows []ledger.Row) (report.ExportFile, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(exportHeader); err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(exportRecord(row)); err != nil {
			return report.ExportFile{}, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to flush csv: %w", err)
	}

	return report.ExportFile{
		Filename:    s.exportFilename("csv"),
		ContentType: "text/csv",
		Data:        buf.Bytes(),
	}, nil
}

func (s *ReportServiceImpl) exportXLSX(rows []ledger.Row) (report.ExportFile, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	for col, title := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return report.ExportFile{}, fmt.Errorf("failed to resolve header cell: %w", err)
		}
		if err := f.SetCellValue(exportSheet, cell, title); err != nil {
			return report.ExportFile{}, fmt.Errorf("failed to write header cell: %w", err)
		}
	}

	for i, row := range rows {
		for col, value := range exportRecord(row) {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return report.ExportFile{}, fmt.Errorf("failed to resolve cell: %w", err)
			}
			if err := f.SetCellValue(exportSheet, cell, value); err != nil {
				return report.ExportFile{}, fmt.Errorf("failed to write cell: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return report.ExportFile{}, fmt.Errorf("failed to render workbook: %w", err)
	}

	return report.ExportFile{
		Filename:    s.exportFilename("xlsx"),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
	}, nil
}

// exportRecord maps a row to the seven export columns. A leave day renders
// "LEAVE" in the check-in column and its reason under Notes.
func exportRecord(row ledger.Row) []string {
	notes := ""
	if row.IsLeave {
		notes = row.LeaveReason
	}
	return []string{
		row.Date,
		row.EmployeeName,
		row.CheckInDisplay,
		row.CheckOutDisplay,
		row.Lateness,
		row.Overtime,
		notes,
	}
}

func (s *ReportServiceImpl) exportFilename(ext string) string {
	return fmt.Sprintf("attendance_report_%s.%s", s.now().Format("2006-01-02"), ext)
}

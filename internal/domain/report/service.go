package report

import (
	"context"

	"github.com/prostaff/attendance-backend-go/internal/domain/ledger"
)

// ReportService renders ledger rows for export and serves the admin
// dashboard. Export is deterministic for identical input rows and degrades
// to a header-only table on empty input.
type ReportService interface {
	// ExportLedger serializes rows into the requested tabular format.
	ExportLedger(ctx context.Context, rows []ledger.Row, format Format) (ExportFile, error)

	// DashboardSummary builds today's punctuality overview.
	DashboardSummary(ctx context.Context) (DashboardSummary, error)
}

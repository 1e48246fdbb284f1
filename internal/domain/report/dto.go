package report

import (
	"github.com/prostaff/attendance-backend-go/internal/domain/attendance"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ExportFile is a rendered ledger export ready to stream as an attachment.
// The filename embeds the generation date.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// DashboardSummary is the admin overview: today's check-in punctuality
// counts plus the raw event feed.
type DashboardSummary struct {
	Date        string                     `json:"date"` // YYYY-MM-DD
	OnTimeCount int                        `json:"on_time_count"`
	LateCount   int                        `json:"late_count"`
	Events      []attendance.EventResponse `json:"events"`
}

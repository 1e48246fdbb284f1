package ledger

import (
	"time"
)

// Placeholder rendered for missing check-in/check-out times, and the
// display value a leave day substitutes for the check-in column.
const (
	MissingTime  = "--"
	LeaveDisplay = "LEAVE"
)

// Row is the derived daily summary of one employee's attendance or leave.
// Rows are recomputed on every query and never persisted.
type Row struct {
	Date         string `json:"date"` // YYYY-MM-DD
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`

	// Raw resolved instants; nil when no event of that kind exists.
	CheckIn  *time.Time `json:"-"`
	CheckOut *time.Time `json:"-"`

	// Display values: "HH:MM", "LEAVE" or "--".
	CheckInDisplay  string `json:"check_in"`
	CheckOutDisplay string `json:"check_out"`

	IsLate     bool   `json:"is_late"`
	Lateness   string `json:"lateness,omitempty"` // e.g. "15m"
	IsOvertime bool   `json:"is_overtime"`
	Overtime   string `json:"overtime,omitempty"` // e.g. "+1.5h"

	IsLeave     bool   `json:"is_leave"`
	LeaveReason string `json:"leave_reason,omitempty"`

	// Status carried from the check-in event recorded that day, if any.
	Status string `json:"status,omitempty"`
}

// Filter narrows a ledger build. Nil/empty members mean "no bound"; date
// bounds are inclusive.
type Filter struct {
	DateStart  *time.Time
	DateEnd    *time.Time
	EmployeeID string
}

package leave

import "time"

// DefaultReason is attached when the administrator records a leave without
// giving a reason.
const DefaultReason = "Leave of absence"

// LeaveRecord marks one employee as on leave for one calendar date.
// Independent of attendance events; on overlap, leave wins for display.
type LeaveRecord struct {
	ID           string
	EmployeeID   string
	EmployeeName string    // denormalized snapshot, survives employee deletion
	Date         time.Time // day granularity, no time component
	Reason       string
	CreatedAt    time.Time
}

package attendance

import (
	"context"
	"time"
)

// AttendanceRepository is the append-only event collection. The duplicate
// check is read-then-decide; the submit service re-runs it inside the insert
// transaction to narrow the window between check and write.
type AttendanceRepository interface {
	// Create appends a new event
	Create(ctx context.Context, event Event) (Event, error)

	// List retrieves all events in timestamp order
	List(ctx context.Context) ([]Event, error)

	// ListByDay retrieves events whose timestamp falls on the given local
	// calendar day
	ListByDay(ctx context.Context, day time.Time) ([]Event, error)

	// ExistsByEmployeeKindDay reports whether an event of this kind exists
	// for the employee on the given local calendar day
	ExistsByEmployeeKindDay(ctx context.Context, employeeID string, kind Kind, day time.Time) (bool, error)
}

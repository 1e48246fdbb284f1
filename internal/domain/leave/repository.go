package leave

import "context"

type LeaveRepository interface {
	// Create inserts a new leave record
	Create(ctx context.Context, record LeaveRecord) (LeaveRecord, error)

	// List retrieves all leave records in date order
	List(ctx context.Context) ([]LeaveRecord, error)

	// Delete removes a leave record by ID
	Delete(ctx context.Context, id string) error
}

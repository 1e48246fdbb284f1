package leave

import "context"

type LeaveService interface {
	// CreateLeave records a leave day for an employee
	CreateLeave(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)

	// ListLeaves retrieves all leave records
	ListLeaves(ctx context.Context) ([]LeaveResponse, error)

	// DeleteLeave removes a leave record
	DeleteLeave(ctx context.Context, id string) error
}

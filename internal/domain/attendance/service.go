package attendance

import "context"

// AttendanceService validates and records submissions.
type AttendanceService interface {
	// SubmitEvent runs the full pipeline: input validation, duplicate
	// check, geofence, face verification, classification, persistence.
	SubmitEvent(ctx context.Context, req SubmitEventRequest) (EventResponse, error)

	// ListToday retrieves today's events for the admin overview feed.
	ListToday(ctx context.Context) ([]EventResponse, error)
}

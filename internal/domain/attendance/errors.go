package attendance

import (
	"errors"
	"fmt"
)

// Attendance domain errors. All are recoverable at the point of submission;
// the engine never retries on the user's behalf.
var (
	// ErrDuplicateEvent: an event of the same kind already exists for this
	// employee on this calendar day.
	ErrDuplicateEvent = errors.New("an event of this kind is already recorded for today")

	// ErrFaceRejected: the external verifier declined the photo.
	ErrFaceRejected = errors.New("face verification failed")

	// ErrLocationUnavailable: the submission arrived without acquired
	// coordinates (upstream geolocation failure).
	ErrLocationUnavailable = errors.New("location unavailable, check location permissions")

	ErrEventNotFound = errors.New("attendance event not found")
)

// GeofenceError reports a submission outside the office geofence, carrying
// the measured distance for display.
type GeofenceError struct {
	DistanceM float64
}

func (e *GeofenceError) Error() string {
	return fmt.Sprintf("outside the allowed radius: you are %.0f m away", e.DistanceM)
}

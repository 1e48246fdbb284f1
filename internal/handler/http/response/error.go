package response

import (
	"errors"
	"net/http"

	"github.com/prostaff/attendance-backend-go/internal/domain/attendance"
	"github.com/prostaff/attendance-backend-go/internal/domain/auth"
	"github.com/prostaff/attendance-backend-go/internal/domain/employee"
	"github.com/prostaff/attendance-backend-go/internal/domain/leave"
	"github.com/prostaff/attendance-backend-go/internal/domain/policy"
	"github.com/prostaff/attendance-backend-go/internal/domain/report"
	"github.com/prostaff/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Geofence rejections carry the measured distance in the message.
	var geofenceErr *attendance.GeofenceError
	if errors.As(err, &geofenceErr) {
		BadRequest(w, geofenceErr.Error(), nil)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidPIN):
		Unauthorized(w, "Invalid PIN")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrDuplicateEvent):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrFaceRejected):
		BadRequest(w, "Face verification failed, please retake the photo", nil)
	case errors.Is(err, attendance.ErrLocationUnavailable):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrEventNotFound):
		NotFound(w, "Attendance event not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave record not found")

	// Policy and report errors
	case errors.Is(err, policy.ErrPolicyNotFound):
		NotFound(w, "Shift policy not configured")
	case errors.Is(err, report.ErrUnsupportedFormat):
		BadRequest(w, "Unsupported export format, use csv or xlsx", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

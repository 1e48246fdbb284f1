package attendance

import (
	"mime/multipart"

	"github.com/prostaff/attendance-backend-go/internal/pkg/validator"
)

type SubmitEventRequest struct {
	EmployeeID string   `json:"employee_id"`
	Kind       string   `json:"kind"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`

	// Captured photo, attached by the handler from the multipart form.
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *SubmitEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee selection is required",
		})
	}
	if !validator.IsInSlice(r.Kind, ValidKinds()) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be check-in or check-out",
		})
	}
	if r.File == nil || r.FileHeader == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "photo",
			Message: "captured photo is required",
		})
	}
	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "must be between -90 and 90",
		})
	}
	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EventResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Kind         string  `json:"kind"`
	Timestamp    string  `json:"timestamp"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	DistanceM    float64 `json:"distance_m"`
	Status       string  `json:"status"`
	PhotoURL     string  `json:"photo_url,omitempty"`
	Quote        string  `json:"quote,omitempty"`
}

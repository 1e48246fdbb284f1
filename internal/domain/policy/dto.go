package policy

import (
	"github.com/prostaff/attendance-backend-go/internal/pkg/validator"
)

type UpdatePolicyRequest struct {
	WorkStartTime   string  `json:"work_start_time"`
	WorkEndTime     string  `json:"work_end_time"`
	OfficeLatitude  float64 `json:"office_latitude"`
	OfficeLongitude float64 `json:"office_longitude"`
	GeofenceRadiusM float64 `json:"geofence_radius_m"`
}

func (r *UpdatePolicyRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidClockTime(r.WorkStartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_start_time",
			Message: "must be HH:MM (24-hour)",
		})
	}
	if !validator.IsValidClockTime(r.WorkEndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_end_time",
			Message: "must be HH:MM (24-hour)",
		})
	}
	if !validator.IsValidLatitude(r.OfficeLatitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "office_latitude",
			Message: "must be between -90 and 90",
		})
	}
	if !validator.IsValidLongitude(r.OfficeLongitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "office_longitude",
			Message: "must be between -180 and 180",
		})
	}
	if r.GeofenceRadiusM <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "geofence_radius_m",
			Message: "must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PolicyResponse struct {
	WorkStartTime   string  `json:"work_start_time"`
	WorkEndTime     string  `json:"work_end_time"`
	OfficeLatitude  float64 `json:"office_latitude"`
	OfficeLongitude float64 `json:"office_longitude"`
	GeofenceRadiusM float64 `json:"geofence_radius_m"`
	UpdatedAt       string  `json:"updated_at,omitempty"`
}

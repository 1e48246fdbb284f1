package employee

import (
	"github.com/prostaff/attendance-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name     string `json:"name"`
	Gender   string `json:"gender"`
	Position string `json:"position"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position is required",
		})
	}
	if !validator.IsInSlice(r.Gender, ValidGenders()) {
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: "gender must be male, female or other",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Gender    string `json:"gender"`
	Position  string `json:"position"`
	CreatedAt string `json:"created_at,omitempty"`
}

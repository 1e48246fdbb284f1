package employee

import "context"

type EmployeeService interface {
	// CreateEmployee registers a new employee on the roster
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// ListEmployees retrieves the roster
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// DeleteEmployee removes an employee from the roster
	DeleteEmployee(ctx context.Context, id string) error
}

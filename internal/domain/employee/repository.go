package employee

import "context"

type EmployeeRepository interface {
	// Create inserts a new employee
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// List retrieves all employees in creation order
	List(ctx context.Context) ([]Employee, error)

	// Delete removes an employee. Historical attendance and leave records
	// keep the employee name as a denormalized snapshot.
	Delete(ctx context.Context, id string) error
}

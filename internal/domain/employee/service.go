package employee

import "context"

// EmployeeService defines directory operations for administrators.
type EmployeeService interface {
	// ListEmployees returns the whole directory sorted by employee code.
	ListEmployees(ctx context.Context) (ListEmployeeResponse, error)

	// GetEmployee retrieves a single record by employee code.
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// CreateEmployee registers a new employee; the code must be unused.
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// UpdateEmployee replaces the mutable fields of an existing record.
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes the record and every attendance session of
	// that employee across all dates. Unknown codes are a no-op.
	DeleteEmployee(ctx context.Context, id string) error
}

package employee

import "context"

type EmployeeRepository interface {
	// GetAll returns the whole directory keyed by employee code.
	GetAll(ctx context.Context) (map[string]Employee, error)

	// GetByID returns ErrEmployeeNotFound for unknown codes.
	GetByID(ctx context.Context, id string) (Employee, error)

	// Save creates or replaces the record under its code.
	Save(ctx context.Context, emp Employee) error

	// Delete removes the record. Unknown codes are a no-op.
	Delete(ctx context.Context, id string) error
}

package department

import "context"

type DepartmentRepository interface {
	// Create creates a new department
	Create(ctx context.Context, d Department) (Department, error)

	// GetByID retrieves a department with its active employee count
	GetByID(ctx context.Context, id string) (Department, error)

	// List retrieves departments ordered by name, with active employee counts
	List(ctx context.Context, filter DepartmentFilter) ([]Department, error)

	// Update updates name and description
	Update(ctx context.Context, d Department) error

	// Delete removes a department; employees cascade at the store level
	Delete(ctx context.Context, id string) error
}

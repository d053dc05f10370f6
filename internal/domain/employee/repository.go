package employee

import "context"

type EmployeeRepository interface {
	// Create creates a new employee
	Create(ctx context.Context, e Employee) (Employee, error)

	// GetByID retrieves an employee with department name and record counts
	GetByID(ctx context.Context, id string) (Employee, error)

	// List retrieves employees with filters and pagination
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)

	// Search runs the free-text search over name, email and employee code,
	// capped at limit rows
	Search(ctx context.Context, query string, departmentID *string, isActive *bool, limit int) ([]Employee, error)

	// Update replaces all mutable fields
	Update(ctx context.Context, e Employee) error

	// Delete removes an employee; performance and attendance records cascade
	// at the store level
	Delete(ctx context.Context, id string) error
}

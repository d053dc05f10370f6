package performance

import (
	"context"
	"time"
)

type PerformanceRepository interface {
	// Create creates a new performance record
	Create(ctx context.Context, p Performance) (Performance, error)

	// GetByID retrieves a performance record with employee name and code
	GetByID(ctx context.Context, id string) (Performance, error)

	// GetByEmployeeAndReviewDate retrieves the record for an employee on a
	// review date, skipping excludeID when set. Used for the duplicate
	// pre-check; returns nil when no record exists.
	GetByEmployeeAndReviewDate(ctx context.Context, employeeID string, reviewDate time.Time, excludeID string) (*Performance, error)

	// List retrieves performance records with filters and pagination
	List(ctx context.Context, filter PerformanceFilter) ([]Performance, int64, error)

	// Update replaces all mutable fields
	Update(ctx context.Context, p Performance) error

	// Delete removes a performance record
	Delete(ctx context.Context, id string) error
}

package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, a Attendance) (Attendance, error)

	// GetByID retrieves an attendance record with employee name and code
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate retrieves the record for an employee on a date,
	// skipping excludeID when set. Used for the duplicate pre-check; returns
	// nil when no record exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, excludeID string) (*Attendance, error)

	// List retrieves attendance records with filters and pagination
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// Update replaces all mutable fields
	Update(ctx context.Context, a Attendance) error

	// Delete removes an attendance record
	Delete(ctx context.Context, id string) error
}

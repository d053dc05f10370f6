package stats

import (
	"context"
	"time"
)

// StatsRepository exposes the count and group-by aggregates the statistics
// service is built on. Every call recomputes from the store; volumes are
// bounded by employee count times range length.
type StatsRepository interface {
	// StatusCounts returns attendance counts for one employee over [start, end].
	StatusCounts(ctx context.Context, employeeID string, start, end time.Time) (StatusCounts, error)

	// FleetStatusCounts returns one row per active employee over [start, end],
	// including employees with no attendance records in range.
	FleetStatusCounts(ctx context.Context, start, end time.Time) ([]EmployeeStatusCounts, error)

	// TotalAttendanceRecords counts all attendance rows in range.
	TotalAttendanceRecords(ctx context.Context, start, end time.Time) (int64, error)

	// StatusDistribution groups attendance rows in range by status.
	StatusDistribution(ctx context.Context, start, end time.Time) ([]StatusCount, error)

	// DailyPresentCounts counts present records per day in range, ordered by date.
	DailyPresentCounts(ctx context.Context, start, end time.Time) ([]DailyCount, error)

	// CountActiveEmployees counts employees flagged active.
	CountActiveEmployees(ctx context.Context) (int64, error)

	// CountRecentJoiners counts active employees who joined on or after since.
	CountRecentJoiners(ctx context.Context, since time.Time) (int64, error)

	// DepartmentHeadcounts returns active employee counts per department.
	DepartmentHeadcounts(ctx context.Context) ([]DepartmentHeadcount, error)

	// RatingDistribution groups performance records by rating.
	RatingDistribution(ctx context.Context) ([]RatingCount, error)

	// CountDepartments counts all departments.
	CountDepartments(ctx context.Context) (int64, error)
}

package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/employeems/ems-backend-go/internal/domain/stats"
	"github.com/employeems/ems-backend-go/internal/pkg/database"
)

type statsRepositoryImpl struct {
	db *database.DB
}

func NewStatsRepository(db *database.DB) stats.StatsRepository {
	return &statsRepositoryImpl{db: db}
}

// StatusCounts implements stats.StatsRepository. All per-status counts come
// back in a single query.
func (r *statsRepositoryImpl) StatusCounts(ctx context.Context, employeeID string, start, end time.Time) (stats.StatusCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN status = 'present' THEN 1 ELSE 0 END), 0) AS present_count,
			COALESCE(SUM(CASE WHEN status = 'absent' THEN 1 ELSE 0 END), 0) AS absent_count,
			COALESCE(SUM(CASE WHEN status = 'late' THEN 1 ELSE 0 END), 0) AS late_count,
			COALESCE(SUM(CASE WHEN status = 'half_day' THEN 1 ELSE 0 END), 0) AS half_day_count
		FROM attendances
		WHERE employee_id = $1 AND date >= $2 AND date <= $3
	`

	var counts stats.StatusCounts
	err := q.QueryRow(ctx, query, employeeID, start, end).Scan(
		&counts.Total, &counts.Present, &counts.Absent, &counts.Late, &counts.HalfDay,
	)
	if err != nil {
		return stats.StatusCounts{}, fmt.Errorf("failed to get status counts: %w", err)
	}
	return counts, nil
}

// FleetStatusCounts implements stats.StatsRepository. The LEFT JOIN keeps
// active employees with no attendance rows in range in the result.
func (r *statsRepositoryImpl) FleetStatusCounts(ctx context.Context, start, end time.Time) ([]stats.EmployeeStatusCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.employee_code, e.first_name || ' ' || e.last_name AS employee_name,
			COUNT(a.id) AS total,
			COALESCE(SUM(CASE WHEN a.status = 'present' THEN 1 ELSE 0 END), 0) AS present_count,
			COALESCE(SUM(CASE WHEN a.status = 'absent' THEN 1 ELSE 0 END), 0) AS absent_count,
			COALESCE(SUM(CASE WHEN a.status = 'late' THEN 1 ELSE 0 END), 0) AS late_count,
			COALESCE(SUM(CASE WHEN a.status = 'half_day' THEN 1 ELSE 0 END), 0) AS half_day_count
		FROM employees e
		LEFT JOIN attendances a
			ON a.employee_id = e.id AND a.date >= $1 AND a.date <= $2
		WHERE e.is_active
		GROUP BY e.id, e.employee_code, e.first_name, e.last_name
		ORDER BY e.last_name, e.first_name
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get fleet status counts: %w", err)
	}
	defer rows.Close()

	results := []stats.EmployeeStatusCounts{}
	for rows.Next() {
		var row stats.EmployeeStatusCounts
		if err := rows.Scan(
			&row.EmployeeID, &row.EmployeeCode, &row.EmployeeName,
			&row.Counts.Total, &row.Counts.Present, &row.Counts.Absent,
			&row.Counts.Late, &row.Counts.HalfDay,
		); err != nil {
			return nil, fmt.Errorf("failed to scan fleet status counts: %w", err)
		}
		results = append(results, row)
	}

	return results, rows.Err()
}

// TotalAttendanceRecords implements stats.StatsRepository.
func (r *statsRepositoryImpl) TotalAttendanceRecords(ctx context.Context, start, end time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendances WHERE date >= $1 AND date <= $2`,
		start, end,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance records: %w", err)
	}
	return total, nil
}

// StatusDistribution implements stats.StatsRepository.
func (r *statsRepositoryImpl) StatusDistribution(ctx context.Context, start, end time.Time) ([]stats.StatusCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT status, COUNT(*) AS count
		FROM attendances
		WHERE date >= $1 AND date <= $2
		GROUP BY status
		ORDER BY status
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get status distribution: %w", err)
	}
	defer rows.Close()

	distribution := []stats.StatusCount{}
	for rows.Next() {
		var sc stats.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan status distribution: %w", err)
		}
		distribution = append(distribution, sc)
	}

	return distribution, rows.Err()
}

// DailyPresentCounts implements stats.StatsRepository.
func (r *statsRepositoryImpl) DailyPresentCounts(ctx context.Context, start, end time.Time) ([]stats.DailyCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT date, COUNT(*) AS count
		FROM attendances
		WHERE date >= $1 AND date <= $2 AND status = 'present'
		GROUP BY date
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily present counts: %w", err)
	}
	defer rows.Close()

	counts := []stats.DailyCount{}
	for rows.Next() {
		var date time.Time
		var count int64
		if err := rows.Scan(&date, &count); err != nil {
			return nil, fmt.Errorf("failed to scan daily present counts: %w", err)
		}
		counts = append(counts, stats.DailyCount{Date: date.Format("2006-01-02"), Count: count})
	}

	return counts, rows.Err()
}

// CountActiveEmployees implements stats.StatsRepository.
func (r *statsRepositoryImpl) CountActiveEmployees(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE is_active`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count active employees: %w", err)
	}
	return total, nil
}

// CountRecentJoiners implements stats.StatsRepository.
func (r *statsRepositoryImpl) CountRecentJoiners(ctx context.Context, since time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM employees WHERE is_active AND date_joined >= $1`,
		since,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count recent joiners: %w", err)
	}
	return total, nil
}

// DepartmentHeadcounts implements stats.StatsRepository.
func (r *statsRepositoryImpl) DepartmentHeadcounts(ctx context.Context) ([]stats.DepartmentHeadcount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.name, COUNT(e.id) FILTER (WHERE e.is_active) AS employee_count
		FROM departments d
		LEFT JOIN employees e ON e.department_id = d.id
		GROUP BY d.name
		ORDER BY d.name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get department headcounts: %w", err)
	}
	defer rows.Close()

	headcounts := []stats.DepartmentHeadcount{}
	for rows.Next() {
		var hc stats.DepartmentHeadcount
		if err := rows.Scan(&hc.Name, &hc.EmployeeCount); err != nil {
			return nil, fmt.Errorf("failed to scan department headcount: %w", err)
		}
		headcounts = append(headcounts, hc)
	}

	return headcounts, rows.Err()
}

// RatingDistribution implements stats.StatsRepository.
func (r *statsRepositoryImpl) RatingDistribution(ctx context.Context) ([]stats.RatingCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT rating, COUNT(*) AS count
		FROM performances
		GROUP BY rating
		ORDER BY rating
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get rating distribution: %w", err)
	}
	defer rows.Close()

	distribution := []stats.RatingCount{}
	for rows.Next() {
		var rc stats.RatingCount
		if err := rows.Scan(&rc.Rating, &rc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan rating distribution: %w", err)
		}
		distribution = append(distribution, rc)
	}

	return distribution, rows.Err()
}

// CountDepartments implements stats.StatsRepository.
func (r *statsRepositoryImpl) CountDepartments(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM departments`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count departments: %w", err)
	}
	return total, nil
}

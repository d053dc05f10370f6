package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/employeems/ems-backend-go/internal/domain/performance"
	"github.com/employeems/ems-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type performanceRepositoryImpl struct {
	db *database.DB
}

func NewPerformanceRepository(db *database.DB) performance.PerformanceRepository {
	return &performanceRepositoryImpl{db: db}
}

// Create implements performance.PerformanceRepository.
func (r *performanceRepositoryImpl) Create(ctx context.Context, p performance.Performance) (performance.Performance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO performances (
			id, employee_id, rating, review_date, comments, reviewer,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		uuid.NewString(), p.EmployeeID, p.Rating, p.ReviewDate, p.Comments, p.Reviewer,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return performance.Performance{}, fmt.Errorf("failed to create performance: %w", err)
	}

	return p, nil
}

// GetByID implements performance.PerformanceRepository.
func (r *performanceRepositoryImpl) GetByID(ctx context.Context, id string) (performance.Performance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, p.rating, p.review_date, p.comments, p.reviewer,
			   p.created_at, p.updated_at,
			   e.first_name || ' ' || e.last_name AS employee_name,
			   e.employee_code
		FROM performances p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	var perf performance.Performance
	err := q.QueryRow(ctx, query, id).Scan(
		&perf.ID, &perf.EmployeeID, &perf.Rating, &perf.ReviewDate, &perf.Comments, &perf.Reviewer,
		&perf.CreatedAt, &perf.UpdatedAt,
		&perf.EmployeeName, &perf.EmployeeCode,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return performance.Performance{}, performance.ErrPerformanceNotFound
		}
		return performance.Performance{}, fmt.Errorf("failed to get performance by ID: %w", err)
	}

	return perf, nil
}

// GetByEmployeeAndReviewDate implements performance.PerformanceRepository.
func (r *performanceRepositoryImpl) GetByEmployeeAndReviewDate(ctx context.Context, employeeID string, reviewDate time.Time, excludeID string) (*performance.Performance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, rating, review_date, comments, reviewer,
			   created_at, updated_at
		FROM performances
		WHERE employee_id = $1
		  AND review_date = $2
		  AND ($3 = '' OR id::text <> $3)
		LIMIT 1
	`

	var perf performance.Performance
	err := q.QueryRow(ctx, query, employeeID, reviewDate, excludeID).Scan(
		&perf.ID, &perf.EmployeeID, &perf.Rating, &perf.ReviewDate, &perf.Comments, &perf.Reviewer,
		&perf.CreatedAt, &perf.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No existing performance found
		}
		return nil, fmt.Errorf("failed to get performance by employee and review date: %w", err)
	}

	return &perf, nil
}

// List implements performance.PerformanceRepository.
func (r *performanceRepositoryImpl) List(ctx context.Context, filter performance.PerformanceFilter) ([]performance.Performance, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		baseWhere += fmt.Sprintf(" AND p.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	if filter.Rating != nil {
		baseWhere += fmt.Sprintf(" AND p.rating = $%d", argIdx)
		args = append(args, *filter.Rating)
		argIdx++
	}

	if filter.ReviewDate != nil {
		baseWhere += fmt.Sprintf(" AND p.review_date = $%d", argIdx)
		args = append(args, *filter.ReviewDate)
		argIdx++
	}

	if filter.Search != nil && *filter.Search != "" {
		baseWhere += fmt.Sprintf(
			" AND (e.first_name ILIKE $%d OR e.last_name ILIKE $%d OR e.employee_code ILIKE $%d)",
			argIdx, argIdx, argIdx,
		)
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	var total int64
	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM performances p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE %s
	`, baseWhere)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count performances: %w", err)
	}

	sortBy := "p.review_date DESC"
	if filter.SortBy != "" {
		column := "p." + filter.SortBy
		order := "ASC"
		if strings.EqualFold(filter.SortOrder, "desc") {
			order = "DESC"
		}
		sortBy = column + " " + order
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT p.id, p.employee_id, p.rating, p.review_date, p.comments, p.reviewer,
			   p.created_at, p.updated_at,
			   e.first_name || ' ' || e.last_name AS employee_name,
			   e.employee_code
		FROM performances p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, baseWhere, sortBy, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list performances: %w", err)
	}
	defer rows.Close()

	performances := []performance.Performance{}
	for rows.Next() {
		var perf performance.Performance
		if err := rows.Scan(
			&perf.ID, &perf.EmployeeID, &perf.Rating, &perf.ReviewDate, &perf.Comments, &perf.Reviewer,
			&perf.CreatedAt, &perf.UpdatedAt,
			&perf.EmployeeName, &perf.EmployeeCode,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan performance: %w", err)
		}
		performances = append(performances, perf)
	}

	return performances, total, rows.Err()
}

// Update implements performance.PerformanceRepository.
func (r *performanceRepositoryImpl) Update(ctx context.Context, p performance.Performance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE performances
		SET employee_id = $2, rating = $3, review_date = $4, comments = $5,
			reviewer = $6, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, p.ID, p.EmployeeID, p.Rating, p.ReviewDate, p.Comments, p.Reviewer)
	if err != nil {
		return fmt.Errorf("failed to update performance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return performance.ErrPerformanceNotFound
	}

	return nil
}

// Delete implements performance.PerformanceRepository.
func (r *performanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM performances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete performance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return performance.ErrPerformanceNotFound
	}

	return nil
}

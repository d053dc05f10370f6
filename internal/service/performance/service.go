package performance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/employeems/ems-backend-go/internal/domain/employee"
	"github.com/employeems/ems-backend-go/internal/domain/performance"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type PerformanceService interface {
	Create(ctx context.Context, req performance.CreatePerformanceRequest) (performance.PerformanceResponse, error)
	Get(ctx context.Context, id string) (performance.PerformanceResponse, error)
	List(ctx context.Context, filter performance.PerformanceFilter) ([]performance.PerformanceResponse, int64, error)
	Update(ctx context.Context, req performance.UpdatePerformanceRequest) (performance.PerformanceResponse, error)
	Delete(ctx context.Context, id string) error
}

type performanceServiceImpl struct {
	performanceRepo performance.PerformanceRepository
	employeeRepo    employee.EmployeeRepository
}

func NewPerformanceService(
	performanceRepo performance.PerformanceRepository,
	employeeRepo employee.EmployeeRepository,
) PerformanceService {
	return &performanceServiceImpl{
		performanceRepo: performanceRepo,
		employeeRepo:    employeeRepo,
	}
}

func entityFromRequest(req performance.CreatePerformanceRequest) performance.Performance {
	reviewDate, _ := time.Parse("2006-01-02", req.ReviewDate)
	return performance.Performance{
		EmployeeID: req.EmployeeID,
		Rating:     req.Rating,
		ReviewDate: reviewDate,
		Comments:   req.Comments,
		Reviewer:   req.Reviewer,
	}
}

// validateRecord enforces one review per employee per review date, skipping
// excludeID so updates don't collide with themselves.
func (s *performanceServiceImpl) validateRecord(ctx context.Context, p performance.Performance, excludeID string) error {
	if _, err := s.employeeRepo.GetByID(ctx, p.EmployeeID); err != nil {
		return err
	}

	existing, err := s.performanceRepo.GetByEmployeeAndReviewDate(ctx, p.EmployeeID, p.ReviewDate, excludeID)
	if err != nil {
		return err
	}
	if existing != nil {
		return performance.ErrDuplicatePerformance
	}

	return nil
}

// Create implements PerformanceService.
func (s *performanceServiceImpl) Create(ctx context.Context, req performance.CreatePerformanceRequest) (performance.PerformanceResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.PerformanceResponse{}, err
	}

	record := entityFromRequest(req)
	if err := s.validateRecord(ctx, record, ""); err != nil {
		return performance.PerformanceResponse{}, err
	}

	created, err := s.performanceRepo.Create(ctx, record)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return performance.PerformanceResponse{}, performance.ErrDuplicatePerformance
		}
		return performance.PerformanceResponse{}, fmt.Errorf("failed to create performance: %w", err)
	}

	return s.Get(ctx, created.ID)
}

// Get implements PerformanceService.
func (s *performanceServiceImpl) Get(ctx context.Context, id string) (performance.PerformanceResponse, error) {
	found, err := s.performanceRepo.GetByID(ctx, id)
	if err != nil {
		return performance.PerformanceResponse{}, err
	}
	return performance.NewPerformanceResponse(found), nil
}

// List implements PerformanceService.
func (s *performanceServiceImpl) List(ctx context.Context, filter performance.PerformanceFilter) ([]performance.PerformanceResponse, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}

	records, total, err := s.performanceRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]performance.PerformanceResponse, 0, len(records))
	for _, p := range records {
		responses = append(responses, performance.NewPerformanceResponse(p))
	}
	return responses, total, nil
}

// Update implements PerformanceService.
func (s *performanceServiceImpl) Update(ctx context.Context, req performance.UpdatePerformanceRequest) (performance.PerformanceResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.PerformanceResponse{}, err
	}

	existing, err := s.performanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return performance.PerformanceResponse{}, err
	}

	record := entityFromRequest(req.CreatePerformanceRequest)
	record.ID = existing.ID
	if err := s.validateRecord(ctx, record, record.ID); err != nil {
		return performance.PerformanceResponse{}, err
	}

	if err := s.performanceRepo.Update(ctx, record); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return performance.PerformanceResponse{}, performance.ErrDuplicatePerformance
		}
		return performance.PerformanceResponse{}, fmt.Errorf("failed to update performance: %w", err)
	}

	return s.Get(ctx, req.ID)
}

// Delete implements PerformanceService.
func (s *performanceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.performanceRepo.Delete(ctx, id)
}

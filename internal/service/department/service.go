package department

import (
	"context"
	"errors"
	"fmt"

	"github.com/employeems/ems-backend-go/internal/domain/department"
	"github.com/jackc/pgx/v5/pgconn"
)

type DepartmentService interface {
	Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	Get(ctx context.Context, id string) (department.DepartmentResponse, error)
	List(ctx context.Context, filter department.DepartmentFilter) ([]department.DepartmentResponse, error)
	Update(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error)
	Delete(ctx context.Context, id string) error
}

type departmentServiceImpl struct {
	departmentRepo department.DepartmentRepository
}

func NewDepartmentService(departmentRepo department.DepartmentRepository) DepartmentService {
	return &departmentServiceImpl{departmentRepo: departmentRepo}
}

func toResponse(d department.Department) department.DepartmentResponse {
	return department.DepartmentResponse{
		ID:            d.ID,
		Name:          d.Name,
		Description:   d.Description,
		EmployeeCount: d.EmployeeCount,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

// Create implements DepartmentService.
func (s *departmentServiceImpl) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return department.DepartmentResponse{}, department.ErrDepartmentNameExists
		}
		return department.DepartmentResponse{}, fmt.Errorf("failed to create department: %w", err)
	}

	return toResponse(created), nil
}

// Get implements DepartmentService.
func (s *departmentServiceImpl) Get(ctx context.Context, id string) (department.DepartmentResponse, error) {
	found, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return toResponse(found), nil
}

// List implements DepartmentService.
func (s *departmentServiceImpl) List(ctx context.Context, filter department.DepartmentFilter) ([]department.DepartmentResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	departments, err := s.departmentRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, toResponse(d))
	}
	return responses, nil
}

// Update implements DepartmentService.
func (s *departmentServiceImpl) Update(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	existing, err := s.departmentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Description != nil {
		existing.Description = req.Description
	}

	if err := s.departmentRepo.Update(ctx, existing); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return department.DepartmentResponse{}, department.ErrDepartmentNameExists
		}
		return department.DepartmentResponse{}, fmt.Errorf("failed to update department: %w", err)
	}

	return s.Get(ctx, req.ID)
}

// Delete implements DepartmentService.
func (s *departmentServiceImpl) Delete(ctx context.Context, id string) error {
	return s.departmentRepo.Delete(ctx, id)
}

package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/employeems/ems-backend-go/internal/domain/department"
	"github.com/employeems/ems-backend-go/internal/domain/employee"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	searchLimit     = 50
)

type EmployeeService interface {
	Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeDetailResponse, error)
	Get(ctx context.Context, id string) (employee.EmployeeDetailResponse, error)
	List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeListResponse, int64, error)
	Search(ctx context.Context, query string, departmentID *string, isActive *bool) ([]employee.EmployeeListResponse, error)
	Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeDetailResponse, error)
	Delete(ctx context.Context, id string) error
}

type employeeServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, departmentRepo department.DepartmentRepository) EmployeeService {
	return &employeeServiceImpl{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
	}
}

func toListResponse(e employee.Employee) employee.EmployeeListResponse {
	return employee.EmployeeListResponse{
		ID:             e.ID,
		EmployeeCode:   e.EmployeeCode,
		FullName:       e.FullName(),
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		Email:          e.Email,
		DepartmentName: e.DepartmentName,
		Position:       e.Position,
		IsActive:       e.IsActive,
		DateJoined:     e.DateJoined.Format("2006-01-02"),
	}
}

func toDetailResponse(e employee.Employee) employee.EmployeeDetailResponse {
	return employee.EmployeeDetailResponse{
		ID:               e.ID,
		EmployeeCode:     e.EmployeeCode,
		FirstName:        e.FirstName,
		LastName:         e.LastName,
		FullName:         e.FullName(),
		Email:            e.Email,
		PhoneNumber:      e.PhoneNumber,
		Address:          e.Address,
		DepartmentID:     e.DepartmentID,
		DepartmentName:   e.DepartmentName,
		DateJoined:       e.DateJoined.Format("2006-01-02"),
		Position:         e.Position,
		Salary:           e.Salary,
		IsActive:         e.IsActive,
		PerformanceCount: e.PerformanceCount,
		AttendanceCount:  e.AttendanceCount,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

// entityFromRequest builds an entity from a validated create request.
func entityFromRequest(req employee.CreateEmployeeRequest) employee.Employee {
	dateJoined, _ := time.Parse("2006-01-02", req.DateJoined)

	e := employee.Employee{
		EmployeeCode: strings.ToUpper(req.EmployeeCode),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        strings.ToLower(req.Email),
		PhoneNumber:  req.PhoneNumber,
		Address:      req.Address,
		DepartmentID: req.DepartmentID,
		DateJoined:   dateJoined,
		Position:     req.Position,
		IsActive:     true,
	}
	if req.Salary != nil {
		salary, _ := decimal.NewFromString(*req.Salary)
		e.Salary = &salary
	}
	if req.IsActive != nil {
		e.IsActive = *req.IsActive
	}
	return e
}

// mapUniqueViolation translates a unique constraint violation into the domain
// error for the column that collided.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}
	if strings.Contains(pgErr.ConstraintName, "email") {
		return employee.ErrEmailExists
	}
	return employee.ErrEmployeeCodeExists
}

// Create implements EmployeeService.
func (s *employeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeDetailResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeDetailResponse{}, err
	}

	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return employee.EmployeeDetailResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, entityFromRequest(req))
	if err != nil {
		if mapped := mapUniqueViolation(err); mapped != nil {
			return employee.EmployeeDetailResponse{}, mapped
		}
		return employee.EmployeeDetailResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return s.Get(ctx, created.ID)
}

// Get implements EmployeeService.
func (s *employeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeDetailResponse, error) {
	found, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeDetailResponse{}, err
	}
	return toDetailResponse(found), nil
}

// List implements EmployeeService.
func (s *employeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeListResponse, int64, error) {
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

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]employee.EmployeeListResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, toListResponse(e))
	}
	return responses, total, nil
}

// Search implements EmployeeService. An empty query returns an empty result
// rather than the full roster.
func (s *employeeServiceImpl) Search(ctx context.Context, query string, departmentID *string, isActive *bool) ([]employee.EmployeeListResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []employee.EmployeeListResponse{}, nil
	}

	employees, err := s.employeeRepo.Search(ctx, query, departmentID, isActive, searchLimit)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeListResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, toListResponse(e))
	}
	return responses, nil
}

// Update implements EmployeeService.
func (s *employeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeDetailResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeDetailResponse{}, err
	}

	existing, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeDetailResponse{}, err
	}

	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return employee.EmployeeDetailResponse{}, err
	}

	updated := entityFromRequest(req.CreateEmployeeRequest)
	updated.ID = existing.ID
	if req.IsActive == nil {
		updated.IsActive = existing.IsActive
	}

	if err := s.employeeRepo.Update(ctx, updated); err != nil {
		if mapped := mapUniqueViolation(err); mapped != nil {
			return employee.EmployeeDetailResponse{}, mapped
		}
		return employee.EmployeeDetailResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return s.Get(ctx, req.ID)
}

// Delete implements EmployeeService.
func (s *employeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

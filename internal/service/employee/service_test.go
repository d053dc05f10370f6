package employee

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/employeems/ems-backend-go/internal/domain/department"
	"github.com/employeems/ems-backend-go/internal/domain/employee"
	"github.com/employeems/ems-backend-go/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	for _, existing := range f.employees {
		if existing.Email == e.Email {
			return employee.Employee{}, &pgconn.PgError{Code: "23505", ConstraintName: "employees_email_key"}
		}
		if existing.EmployeeCode == e.EmployeeCode {
			return employee.Employee{}, &pgconn.PgError{Code: "23505", ConstraintName: "employees_employee_code_key"}
		}
	}
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	f.employees[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	results := []employee.Employee{}
	for _, e := range f.employees {
		if filter.IsActive != nil && e.IsActive != *filter.IsActive {
			continue
		}
		results = append(results, e)
	}
	return results, int64(len(results)), nil
}

func (f *fakeEmployeeRepo) Search(ctx context.Context, query string, departmentID *string, isActive *bool, limit int) ([]employee.Employee, error) {
	query = strings.ToLower(query)
	results := []employee.Employee{}
	for _, e := range f.employees {
		if strings.Contains(strings.ToLower(e.FullName()), query) ||
			strings.Contains(strings.ToLower(e.Email), query) ||
			strings.Contains(strings.ToLower(e.EmployeeCode), query) {
			results = append(results, e)
		}
		if len(results) == limit {
			break
		}
	}
	return results, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) error {
	existing, ok := f.employees[e.ID]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	e.CreatedAt = existing.CreatedAt
	e.UpdatedAt = time.Now()
	f.employees[e.ID] = e
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(f.employees, id)
	return nil
}

type fakeDepartmentRepo struct {
	departments map[string]department.Department
}

func newFakeDepartmentRepo(departments ...department.Department) *fakeDepartmentRepo {
	f := &fakeDepartmentRepo{departments: make(map[string]department.Department)}
	for _, d := range departments {
		f.departments[d.ID] = d
	}
	return f
}

func (f *fakeDepartmentRepo) Create(ctx context.Context, d department.Department) (department.Department, error) {
	d.ID = uuid.NewString()
	f.departments[d.ID] = d
	return d, nil
}

func (f *fakeDepartmentRepo) GetByID(ctx context.Context, id string) (department.Department, error) {
	d, ok := f.departments[id]
	if !ok {
		return department.Department{}, department.ErrDepartmentNotFound
	}
	return d, nil
}

func (f *fakeDepartmentRepo) List(ctx context.Context, filter department.DepartmentFilter) ([]department.Department, error) {
	results := []department.Department{}
	for _, d := range f.departments {
		results = append(results, d)
	}
	return results, nil
}

func (f *fakeDepartmentRepo) Update(ctx context.Context, d department.Department) error {
	if _, ok := f.departments[d.ID]; !ok {
		return department.ErrDepartmentNotFound
	}
	f.departments[d.ID] = d
	return nil
}

func (f *fakeDepartmentRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.departments[id]; !ok {
		return department.ErrDepartmentNotFound
	}
	delete(f.departments, id)
	return nil
}

func newTestService(t *testing.T) (EmployeeService, department.Department) {
	t.Helper()
	dept := department.Department{ID: uuid.NewString(), Name: "Engineering"}
	return NewEmployeeService(newFakeEmployeeRepo(), newFakeDepartmentRepo(dept)), dept
}

func createRequest(deptID string) employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		EmployeeCode: "EMP001",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "Ada.Lovelace@Example.com",
		PhoneNumber:  "+628123456789",
		Address:      "Jl. Merdeka No. 1",
		DepartmentID: deptID,
		DateJoined:   "2025-01-15",
		Position:     "Engineer",
	}
}

func TestEmployeeService_Create_Success(t *testing.T) {
	ctx := context.Background()
	svc, dept := newTestService(t)

	result, err := svc.Create(ctx, createRequest(dept.ID))

	require.NoError(t, err)
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "EMP001", result.EmployeeCode)
	assert.Equal(t, "ada.lovelace@example.com", result.Email)
	assert.Equal(t, "Ada Lovelace", result.FullName)
	assert.True(t, result.IsActive)
}

func TestEmployeeService_Create_UnknownDepartment(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Create(ctx, createRequest(uuid.NewString()))
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
}

func TestEmployeeService_Create_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, dept := newTestService(t)

	_, err := svc.Create(ctx, createRequest(dept.ID))
	require.NoError(t, err)

	second := createRequest(dept.ID)
	second.EmployeeCode = "EMP002"
	_, err = svc.Create(ctx, second)
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestEmployeeService_Create_DuplicateCode(t *testing.T) {
	ctx := context.Background()
	svc, dept := newTestService(t)

	_, err := svc.Create(ctx, createRequest(dept.ID))
	require.NoError(t, err)

	second := createRequest(dept.ID)
	second.Email = "other@example.com"
	_, err = svc.Create(ctx, second)
	assert.ErrorIs(t, err, employee.ErrEmployeeCodeExists)
}

func TestEmployeeService_Create_InvalidRequest(t *testing.T) {
	ctx := context.Background()
	svc, dept := newTestService(t)

	req := createRequest(dept.ID)
	req.Email = "not-an-email"
	req.DateJoined = "15/01/2025"

	_, err := svc.Create(ctx, req)
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "date_joined")
}

func TestEmployeeService_Update_KeepsActiveFlagWhenOmitted(t *testing.T) {
	ctx := context.Background()
	svc, dept := newTestService(t)

	inactive := false
	req := createRequest(dept.ID)
	req.IsActive = &inactive
	created, err := svc.Create(ctx, req)
	require.NoError(t, err)
	require.False(t, created.IsActive)

	update := employee.UpdateEmployeeRequest{
		ID:                    created.ID,
		CreateEmployeeRequest: createRequest(dept.ID),
	}
	update.Position = "Senior Engineer"

	updated, err := svc.Update(ctx, update)
	require.NoError(t, err)
	assert.Equal(t, "Senior Engineer", updated.Position)
	assert.False(t, updated.IsActive)
}

func TestEmployeeService_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, dept := newTestService(t)

	_, err := svc.Update(ctx, employee.UpdateEmployeeRequest{
		ID:                    uuid.NewString(),
		CreateEmployeeRequest: createRequest(dept.ID),
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_Search_EmptyQuery(t *testing.T) {
	ctx := context.Background()
	svc, dept := newTestService(t)

	_, err := svc.Create(ctx, createRequest(dept.ID))
	require.NoError(t, err)

	results, err := svc.Search(ctx, "   ", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestEmployeeService_Search_MatchesCode(t *testing.T) {
	ctx := context.Background()
	svc, dept := newTestService(t)

	_, err := svc.Create(ctx, createRequest(dept.ID))
	require.NoError(t, err)

	results, err := svc.Search(ctx, "emp001", nil, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "EMP001", results[0].EmployeeCode)
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, dept := newTestService(t)

	created, err := svc.Create(ctx, createRequest(dept.ID))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

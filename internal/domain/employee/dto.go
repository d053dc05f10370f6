package employee

import (
	"time"

	"github.com/employeems/ems-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// EmployeeListResponse is the trimmed shape used by list and search views.
type EmployeeListResponse struct {
	ID             string  `json:"id"`
	EmployeeCode   string  `json:"employee_code"`
	FullName       string  `json:"full_name"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Email          string  `json:"email"`
	DepartmentName *string `json:"department_name,omitempty"`
	Position       string  `json:"position"`
	IsActive       bool    `json:"is_active"`
	DateJoined     string  `json:"date_joined"`
}

// EmployeeDetailResponse is the full shape used by detail views.
type EmployeeDetailResponse struct {
	ID               string           `json:"id"`
	EmployeeCode     string           `json:"employee_code"`
	FirstName        string           `json:"first_name"`
	LastName         string           `json:"last_name"`
	FullName         string           `json:"full_name"`
	Email            string           `json:"email"`
	PhoneNumber      string           `json:"phone_number"`
	Address          string           `json:"address"`
	DepartmentID     string           `json:"department_id"`
	DepartmentName   *string          `json:"department_name,omitempty"`
	DateJoined       string           `json:"date_joined"`
	Position         string           `json:"position"`
	Salary           *decimal.Decimal `json:"salary,omitempty"`
	IsActive         bool             `json:"is_active"`
	PerformanceCount *int64           `json:"performance_count,omitempty"`
	AttendanceCount  *int64           `json:"attendance_count,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// CreateEmployeeRequest represents the request structure for creating an employee.
type CreateEmployeeRequest struct {
	EmployeeCode string  `json:"employee_code"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        string  `json:"email"`
	PhoneNumber  string  `json:"phone_number"`
	Address      string  `json:"address"`
	DepartmentID string  `json:"department_id"`
	DateJoined   string  `json:"date_joined"`
	Position     string  `json:"position"`
	Salary       *string `json:"salary,omitempty"`
	IsActive     *bool   `json:"is_active,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "employee_code is required"})
	} else if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "employee_code must look like 'EMP001'"})
	}

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first_name is required"})
	}
	if len(r.FirstName) > 50 {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first_name must not exceed 50 characters"})
	}

	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "last_name is required"})
	}
	if len(r.LastName) > 50 {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "last_name must not exceed 50 characters"})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid email address"})
	}

	if !validator.IsValidPhoneNumber(r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{Field: "phone_number", Message: "phone_number must be entered in the format '+999999999', up to 15 digits"})
	}

	if validator.IsEmpty(r.Address) {
		errs = append(errs, validator.ValidationError{Field: "address", Message: "address is required"})
	}

	if !validator.IsValidUUID(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{Field: "department_id", Message: "department_id must be a valid UUID"})
	}

	if _, ok := validator.IsValidDate(r.DateJoined); !ok {
		errs = append(errs, validator.ValidationError{Field: "date_joined", Message: "date_joined must be in YYYY-MM-DD format"})
	}

	if len(r.Position) > 100 {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "position must not exceed 100 characters"})
	}

	if r.Salary != nil {
		if _, err := decimal.NewFromString(*r.Salary); err != nil {
			errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must be a decimal number"})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEmployeeRequest represents the request structure for updating an employee.
// All fields are replaced, mirroring the create shape.
type UpdateEmployeeRequest struct {
	ID string `json:"-"` // From URL
	CreateEmployeeRequest
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}

	if err := r.CreateEmployeeRequest.Validate(); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			errs = append(errs, fieldErrs...)
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// EmployeeFilter carries list query options.
type EmployeeFilter struct {
	DepartmentID *string
	IsActive     *bool
	Position     *string
	Search       *string
	Page         int
	Limit        int
	SortBy       string
	SortOrder    string
}

func (f *EmployeeFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.DepartmentID != nil && !validator.IsValidUUID(*f.DepartmentID) {
		errs = append(errs, validator.ValidationError{Field: "department_id", Message: "department_id must be a valid UUID"})
	}

	if f.SortBy != "" && !validator.IsInSlice(f.SortBy, []string{"first_name", "last_name", "date_joined", "created_at"}) {
		errs = append(errs, validator.ValidationError{Field: "sort_by", Message: "sort_by must be one of: first_name, last_name, date_joined, created_at"})
	}

	if f.SortOrder != "" && !validator.IsInSlice(f.SortOrder, []string{"asc", "desc"}) {
		errs = append(errs, validator.ValidationError{Field: "sort_order", Message: "sort_order must be asc or desc"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

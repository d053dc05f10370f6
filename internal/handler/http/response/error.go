package response

import (
	"errors"
	"net/http"

	"github.com/employeems/ems-backend-go/internal/domain/attendance"
	"github.com/employeems/ems-backend-go/internal/domain/auth"
	"github.com/employeems/ems-backend-go/internal/domain/department"
	"github.com/employeems/ems-backend-go/internal/domain/employee"
	"github.com/employeems/ems-backend-go/internal/domain/performance"
	"github.com/employeems/ems-backend-go/internal/domain/user"
	"github.com/employeems/ems-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentNameExists):
		Conflict(w, "Department name already exists")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Performance domain errors
	case errors.Is(err, performance.ErrPerformanceNotFound):
		NotFound(w, "Performance record not found")
	case errors.Is(err, performance.ErrDuplicatePerformance):
		Conflict(w, "Performance record already exists for this employee on this review date")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrDuplicateAttendance):
		Conflict(w, "Attendance record already exists for this employee on this date")
	case errors.Is(err, attendance.ErrCheckInRequired):
		BadRequest(w, "Check-in time is required when status is present", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}

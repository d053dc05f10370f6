package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	EmployeeCode string
	FirstName    string
	LastName     string
	Email        string
	PhoneNumber  string
	Address      string
	DepartmentID string
	DateJoined   time.Time
	Position     string
	Salary       *decimal.Decimal
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO
	DepartmentName   *string
	PerformanceCount *int64
	AttendanceCount  *int64
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

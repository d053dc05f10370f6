package attendance

import (
	"time"

	"github.com/employeems/ems-backend-go/internal/pkg/validator"
)

// AttendanceResponse represents the response structure for an attendance record.
type AttendanceResponse struct {
	ID            string    `json:"id"`
	EmployeeID    string    `json:"employee_id"`
	EmployeeName  *string   `json:"employee_name,omitempty"`
	EmployeeCode  *string   `json:"employee_code,omitempty"`
	Date          string    `json:"date"`
	Status        string    `json:"status"`
	StatusDisplay string    `json:"status_display"`
	CheckInTime   *string   `json:"check_in_time,omitempty"`
	CheckOutTime  *string   `json:"check_out_time,omitempty"`
	HoursWorked   *float64  `json:"hours_worked,omitempty"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewAttendanceResponse maps an entity to its response shape, deriving
// hours_worked on the way out.
func NewAttendanceResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:            a.ID,
		EmployeeID:    a.EmployeeID,
		EmployeeName:  a.EmployeeName,
		EmployeeCode:  a.EmployeeCode,
		Date:          a.Date.Format("2006-01-02"),
		Status:        string(a.Status),
		StatusDisplay: a.Status.Display(),
		HoursWorked:   a.HoursWorked(),
		Notes:         a.Notes,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
	if a.CheckInTime != nil {
		s := a.CheckInTime.String()
		resp.CheckInTime = &s
	}
	if a.CheckOutTime != nil {
		s := a.CheckOutTime.String()
		resp.CheckOutTime = &s
	}
	return resp
}

// CreateAttendanceRequest represents the request structure for creating an
// attendance record.
type CreateAttendanceRequest struct {
	EmployeeID   string  `json:"employee_id"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	CheckInTime  *string `json:"check_in_time,omitempty"`
	CheckOutTime *string `json:"check_out_time,omitempty"`
	Notes        string  `json:"notes"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id must be a valid UUID"})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}

	if !Status(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of: present, absent, late, half_day"})
	}

	if r.CheckInTime != nil {
		if _, err := ParseTimeOfDay(*r.CheckInTime); err != nil {
			errs = append(errs, validator.ValidationError{Field: "check_in_time", Message: "check_in_time must be in HH:MM or HH:MM:SS format"})
		}
	}

	if r.CheckOutTime != nil {
		if _, err := ParseTimeOfDay(*r.CheckOutTime); err != nil {
			errs = append(errs, validator.ValidationError{Field: "check_out_time", Message: "check_out_time must be in HH:MM or HH:MM:SS format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateAttendanceRequest represents the request structure for updating an
// attendance record. All fields are replaced, mirroring the create shape.
type UpdateAttendanceRequest struct {
	ID string `json:"-"` // From URL
	CreateAttendanceRequest
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}

	if err := r.CreateAttendanceRequest.Validate(); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			errs = append(errs, fieldErrs...)
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AttendanceFilter carries list query options.
type AttendanceFilter struct {
	EmployeeID *string
	Status     *string
	Date       *string
	StartDate  *string
	EndDate    *string
	Search     *string
	Page       int
	Limit      int
	SortBy     string
	SortOrder  string
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.EmployeeID != nil && !validator.IsValidUUID(*f.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id must be a valid UUID"})
	}

	if f.Status != nil && !Status(*f.Status).Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of: present, absent, late, half_day"})
	}

	for field, value := range map[string]*string{"date": f.Date, "start_date": f.StartDate, "end_date": f.EndDate} {
		if value != nil {
			if _, ok := validator.IsValidDate(*value); !ok {
				errs = append(errs, validator.ValidationError{Field: field, Message: field + " must be in YYYY-MM-DD format"})
			}
		}
	}

	if f.SortBy != "" && !validator.IsInSlice(f.SortBy, []string{"date", "created_at"}) {
		errs = append(errs, validator.ValidationError{Field: "sort_by", Message: "sort_by must be one of: date, created_at"})
	}

	if f.SortOrder != "" && !validator.IsInSlice(f.SortOrder, []string{"asc", "desc"}) {
		errs = append(errs, validator.ValidationError{Field: "sort_order", Message: "sort_order must be asc or desc"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

package performance

import (
	"time"

	"github.com/employeems/ems-backend-go/internal/pkg/validator"
)

// PerformanceResponse represents the response structure for a performance record.
type PerformanceResponse struct {
	ID            string    `json:"id"`
	EmployeeID    string    `json:"employee_id"`
	EmployeeName  *string   `json:"employee_name,omitempty"`
	EmployeeCode  *string   `json:"employee_code,omitempty"`
	Rating        int       `json:"rating"`
	RatingDisplay string    `json:"rating_display"`
	ReviewDate    string    `json:"review_date"`
	Comments      string    `json:"comments"`
	Reviewer      string    `json:"reviewer"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewPerformanceResponse(p Performance) PerformanceResponse {
	return PerformanceResponse{
		ID:            p.ID,
		EmployeeID:    p.EmployeeID,
		EmployeeName:  p.EmployeeName,
		EmployeeCode:  p.EmployeeCode,
		Rating:        p.Rating,
		RatingDisplay: RatingDisplay(p.Rating),
		ReviewDate:    p.ReviewDate.Format("2006-01-02"),
		Comments:      p.Comments,
		Reviewer:      p.Reviewer,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// CreatePerformanceRequest represents the request structure for creating a
// performance record.
type CreatePerformanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Rating     int    `json:"rating"`
	ReviewDate string `json:"review_date"`
	Comments   string `json:"comments"`
	Reviewer   string `json:"reviewer"`
}

func (r *CreatePerformanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id must be a valid UUID"})
	}

	if r.Rating < 1 || r.Rating > 5 {
		errs = append(errs, validator.ValidationError{Field: "rating", Message: "rating must be between 1 and 5"})
	}

	if _, ok := validator.IsValidDate(r.ReviewDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "review_date", Message: "review_date must be in YYYY-MM-DD format"})
	}

	if validator.IsEmpty(r.Reviewer) {
		errs = append(errs, validator.ValidationError{Field: "reviewer", Message: "reviewer is required"})
	}
	if len(r.Reviewer) > 100 {
		errs = append(errs, validator.ValidationError{Field: "reviewer", Message: "reviewer must not exceed 100 characters"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdatePerformanceRequest represents the request structure for updating a
// performance record.
type UpdatePerformanceRequest struct {
	ID string `json:"-"` // From URL
	CreatePerformanceRequest
}

func (r *UpdatePerformanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}

	if err := r.CreatePerformanceRequest.Validate(); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			errs = append(errs, fieldErrs...)
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// PerformanceFilter carries list query options.
type PerformanceFilter struct {
	EmployeeID *string
	Rating     *int
	ReviewDate *string
	Search     *string
	Page       int
	Limit      int
	SortBy     string
	SortOrder  string
}

func (f *PerformanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.EmployeeID != nil && !validator.IsValidUUID(*f.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id must be a valid UUID"})
	}

	if f.Rating != nil && (*f.Rating < 1 || *f.Rating > 5) {
		errs = append(errs, validator.ValidationError{Field: "rating", Message: "rating must be between 1 and 5"})
	}

	if f.ReviewDate != nil {
		if _, ok := validator.IsValidDate(*f.ReviewDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "review_date", Message: "review_date must be in YYYY-MM-DD format"})
		}
	}

	if f.SortBy != "" && !validator.IsInSlice(f.SortBy, []string{"review_date", "rating", "created_at"}) {
		errs = append(errs, validator.ValidationError{Field: "sort_by", Message: "sort_by must be one of: review_date, rating, created_at"})
	}

	if f.SortOrder != "" && !validator.IsInSlice(f.SortOrder, []string{"asc", "desc"}) {
		errs = append(errs, validator.ValidationError{Field: "sort_order", Message: "sort_order must be asc or desc"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

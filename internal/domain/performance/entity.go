package performance

import "time"

type Performance struct {
	ID         string
	EmployeeID string
	Rating     int
	ReviewDate time.Time
	Comments   string
	Reviewer   string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
	EmployeeCode *string
}

// RatingDisplay returns the label for a 1-5 rating.
func RatingDisplay(rating int) string {
	switch rating {
	case 1:
		return "Poor"
	case 2:
		return "Below Average"
	case 3:
		return "Average"
	case 4:
		return "Good"
	case 5:
		return "Excellent"
	}
	return "Unknown"
}

package performance

import "errors"

var (
	ErrPerformanceNotFound  = errors.New("performance record not found")
	ErrDuplicatePerformance = errors.New("performance record already exists for this employee on this review date")
)

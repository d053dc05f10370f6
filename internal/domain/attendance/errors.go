package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound  = errors.New("attendance record not found")
	ErrDuplicateAttendance = errors.New("attendance record already exists for this employee on this date")
	ErrCheckInRequired     = errors.New("check-in time is required for present status")
)

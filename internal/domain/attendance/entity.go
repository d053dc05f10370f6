package attendance

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half_day"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusHalfDay:
		return true
	}
	return false
}

// Display returns the human readable label for a status.
func (s Status) Display() string {
	switch s {
	case StatusPresent:
		return "Present"
	case StatusAbsent:
		return "Absent"
	case StatusLate:
		return "Late"
	case StatusHalfDay:
		return "Half Day"
	}
	return string(s)
}

// TimeOfDay is a wall-clock time with no date attached. Check-in and
// check-out are optional, so records carry *TimeOfDay rather than a zero
// value standing in for "absent".
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// ParseTimeOfDay accepts "HH:MM" or "HH:MM:SS".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
		}
	}
	return TimeOfDay{}, fmt.Errorf("invalid time of day: %q", s)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// At anchors the time of day on the given date.
func (t TimeOfDay) At(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour, t.Minute, t.Second, 0, time.UTC)
}

type Attendance struct {
	ID           string
	EmployeeID   string
	Date         time.Time
	Status       Status
	CheckInTime  *TimeOfDay
	CheckOutTime *TimeOfDay
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO
	EmployeeName *string
	EmployeeCode *string
}

// HoursWorked derives the elapsed hours between check-in and check-out.
// A check-out earlier than check-in is read as a shift crossing midnight and
// advanced one calendar day; there is no upper bound on shift length.
// Returns nil when either time is absent.
func (a Attendance) HoursWorked() *float64 {
	if a.CheckInTime == nil || a.CheckOutTime == nil {
		return nil
	}

	checkIn := a.CheckInTime.At(a.Date)
	checkOut := a.CheckOutTime.At(a.Date)
	if checkOut.Before(checkIn) {
		checkOut = checkOut.AddDate(0, 0, 1)
	}

	hours := checkOut.Sub(checkIn).Seconds() / 3600
	return &hours
}

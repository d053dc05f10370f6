package stats

import "time"

// DateRange is an inclusive [Start, End] day span.
type DateRange struct {
	Start time.Time
	End   time.Time
}

type DateRangeResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func NewDateRangeResponse(r DateRange) DateRangeResponse {
	return DateRangeResponse{
		StartDate: r.Start.Format("2006-01-02"),
		EndDate:   r.End.Format("2006-01-02"),
	}
}

// StatusCounts holds per-status attendance record counts over a range.
type StatusCounts struct {
	Total   int64
	Present int64
	Absent  int64
	Late    int64
	HalfDay int64
}

// EmployeeStatusCounts pairs an employee with its counts; produced by the
// fleet-wide group-by so zero-record employees still appear.
type EmployeeStatusCounts struct {
	EmployeeID   string
	EmployeeCode string
	EmployeeName string
	Counts       StatusCounts
}

// EmployeeStats is the per-employee summary exposed over HTTP. The
// employee_id field carries the external employee code, matching what
// clients key their reports on.
type EmployeeStats struct {
	EmployeeCode         string  `json:"employee_id"`
	EmployeeName         string  `json:"employee_name"`
	TotalDays            int64   `json:"total_days"`
	PresentDays          int64   `json:"present_days"`
	AbsentDays           int64   `json:"absent_days"`
	LateDays             int64   `json:"late_days"`
	HalfDays             int64   `json:"half_days"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}

type EmployeeStatsResponse struct {
	DateRange DateRangeResponse `json:"date_range"`
	EmployeeStats
}

type FleetStatsResponse struct {
	DateRange     DateRangeResponse `json:"date_range"`
	EmployeeStats []EmployeeStats   `json:"employee_stats"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type AttendanceAnalyticsResponse struct {
	DateRange          DateRangeResponse `json:"date_range"`
	TotalRecords       int64             `json:"total_records"`
	StatusDistribution []StatusCount     `json:"status_distribution"`
	DailyAttendance    []DailyCount      `json:"daily_attendance"`
}

type DepartmentHeadcount struct {
	Name          string `json:"name"`
	EmployeeCount int64  `json:"employee_count"`
}

type RatingCount struct {
	Rating int   `json:"rating"`
	Count  int64 `json:"count"`
}

type EmployeeAnalyticsResponse struct {
	TotalEmployees          int64                 `json:"total_employees"`
	RecentJoiners           int64                 `json:"recent_joiners"`
	DepartmentDistribution  []DepartmentHeadcount `json:"department_distribution"`
	PerformanceDistribution []RatingCount         `json:"performance_distribution"`
	DailyAttendance         []DailyCount          `json:"daily_attendance"`
	StatusDistribution      []StatusCount         `json:"status_distribution"`
}

type PublicStatsResponse struct {
	Message          string `json:"message"`
	TotalEmployees   int64  `json:"total_employees"`
	TotalDepartments int64  `json:"total_departments"`
	Status           string `json:"status"`
}

package stats

import (
	"context"
	"math"
	"time"

	"github.com/employeems/ems-backend-go/internal/domain/employee"
	"github.com/employeems/ems-backend-go/internal/domain/stats"
	"github.com/employeems/ems-backend-go/internal/pkg/clock"
)

// defaultRangeDays is the lookback applied when a caller supplies no range.
const defaultRangeDays = 30

// analyticsRangeDays is the window for the daily breakdowns on the
// analytics endpoints.
const analyticsRangeDays = 7

type StatsService interface {
	EmployeeStats(ctx context.Context, employeeID string, start, end *time.Time) (stats.EmployeeStatsResponse, error)
	FleetStats(ctx context.Context, start, end *time.Time) (stats.FleetStatsResponse, error)
	AttendanceAnalytics(ctx context.Context, start, end *time.Time) (stats.AttendanceAnalyticsResponse, error)
	EmployeeAnalytics(ctx context.Context) (stats.EmployeeAnalyticsResponse, error)
	PublicStats(ctx context.Context) (stats.PublicStatsResponse, error)
}

type statsServiceImpl struct {
	statsRepo    stats.StatsRepository
	employeeRepo employee.EmployeeRepository
	clock        clock.Clock
}

func NewStatsService(
	statsRepo stats.StatsRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
) StatsService {
	return &statsServiceImpl{
		statsRepo:    statsRepo,
		employeeRepo: employeeRepo,
		clock:        clk,
	}
}

// AttendancePercentage is the share of records in range marked present,
// rounded to two decimal places. Zero records means zero percent, not a
// division error.
func AttendancePercentage(counts stats.StatusCounts) float64 {
	if counts.Total == 0 {
		return 0
	}
	return math.Round(float64(counts.Present)/float64(counts.Total)*10000) / 100
}

// resolveRange fills missing bounds from the clock: the end defaults to
// today and the start to defaultRangeDays before the end. Bounds are
// truncated to whole days so the inclusive date comparison in the store
// behaves.
func (s *statsServiceImpl) resolveRange(start, end *time.Time) stats.DateRange {
	today := truncateToDay(s.clock.Now())

	r := stats.DateRange{End: today}
	if end != nil {
		r.End = truncateToDay(*end)
	}
	r.Start = r.End.AddDate(0, 0, -defaultRangeDays)
	if start != nil {
		r.Start = truncateToDay(*start)
	}
	return r
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EmployeeStats implements StatsService.
func (s *statsServiceImpl) EmployeeStats(ctx context.Context, employeeID string, start, end *time.Time) (stats.EmployeeStatsResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return stats.EmployeeStatsResponse{}, err
	}

	r := s.resolveRange(start, end)
	counts, err := s.statsRepo.StatusCounts(ctx, employeeID, r.Start, r.End)
	if err != nil {
		return stats.EmployeeStatsResponse{}, err
	}

	return stats.EmployeeStatsResponse{
		DateRange: stats.NewDateRangeResponse(r),
		EmployeeStats: stats.EmployeeStats{
			EmployeeCode:         emp.EmployeeCode,
			EmployeeName:         emp.FullName(),
			TotalDays:            counts.Total,
			PresentDays:          counts.Present,
			AbsentDays:           counts.Absent,
			LateDays:             counts.Late,
			HalfDays:             counts.HalfDay,
			AttendancePercentage: AttendancePercentage(counts),
		},
	}, nil
}

// FleetStats implements StatsService. Active employees with no records in
// range still appear, with zero counts and zero percentage.
func (s *statsServiceImpl) FleetStats(ctx context.Context, start, end *time.Time) (stats.FleetStatsResponse, error) {
	r := s.resolveRange(start, end)

	rows, err := s.statsRepo.FleetStatusCounts(ctx, r.Start, r.End)
	if err != nil {
		return stats.FleetStatsResponse{}, err
	}

	employeeStats := make([]stats.EmployeeStats, 0, len(rows))
	for _, row := range rows {
		employeeStats = append(employeeStats, stats.EmployeeStats{
			EmployeeCode:         row.EmployeeCode,
			EmployeeName:         row.EmployeeName,
			TotalDays:            row.Counts.Total,
			PresentDays:          row.Counts.Present,
			AbsentDays:           row.Counts.Absent,
			LateDays:             row.Counts.Late,
			HalfDays:             row.Counts.HalfDay,
			AttendancePercentage: AttendancePercentage(row.Counts),
		})
	}

	return stats.FleetStatsResponse{
		DateRange:     stats.NewDateRangeResponse(r),
		EmployeeStats: employeeStats,
	}, nil
}

// AttendanceAnalytics implements StatsService.
func (s *statsServiceImpl) AttendanceAnalytics(ctx context.Context, start, end *time.Time) (stats.AttendanceAnalyticsResponse, error) {
	r := s.resolveRange(start, end)

	total, err := s.statsRepo.TotalAttendanceRecords(ctx, r.Start, r.End)
	if err != nil {
		return stats.AttendanceAnalyticsResponse{}, err
	}

	distribution, err := s.statsRepo.StatusDistribution(ctx, r.Start, r.End)
	if err != nil {
		return stats.AttendanceAnalyticsResponse{}, err
	}

	daily, err := s.statsRepo.DailyPresentCounts(ctx, r.Start, r.End)
	if err != nil {
		return stats.AttendanceAnalyticsResponse{}, err
	}

	return stats.AttendanceAnalyticsResponse{
		DateRange:          stats.NewDateRangeResponse(r),
		TotalRecords:       total,
		StatusDistribution: distribution,
		DailyAttendance:    daily,
	}, nil
}

// EmployeeAnalytics implements StatsService. Joiner counts look back
// defaultRangeDays; the daily and status breakdowns cover the last
// analyticsRangeDays.
func (s *statsServiceImpl) EmployeeAnalytics(ctx context.Context) (stats.EmployeeAnalyticsResponse, error) {
	today := truncateToDay(s.clock.Now())
	weekStart := today.AddDate(0, 0, -analyticsRangeDays)

	totalEmployees, err := s.statsRepo.CountActiveEmployees(ctx)
	if err != nil {
		return stats.EmployeeAnalyticsResponse{}, err
	}

	recentJoiners, err := s.statsRepo.CountRecentJoiners(ctx, today.AddDate(0, 0, -defaultRangeDays))
	if err != nil {
		return stats.EmployeeAnalyticsResponse{}, err
	}

	headcounts, err := s.statsRepo.DepartmentHeadcounts(ctx)
	if err != nil {
		return stats.EmployeeAnalyticsResponse{}, err
	}

	ratings, err := s.statsRepo.RatingDistribution(ctx)
	if err != nil {
		return stats.EmployeeAnalyticsResponse{}, err
	}

	daily, err := s.statsRepo.DailyPresentCounts(ctx, weekStart, today)
	if err != nil {
		return stats.EmployeeAnalyticsResponse{}, err
	}

	statuses, err := s.statsRepo.StatusDistribution(ctx, weekStart, today)
	if err != nil {
		return stats.EmployeeAnalyticsResponse{}, err
	}

	return stats.EmployeeAnalyticsResponse{
		TotalEmployees:          totalEmployees,
		RecentJoiners:           recentJoiners,
		DepartmentDistribution:  headcounts,
		PerformanceDistribution: ratings,
		DailyAttendance:         daily,
		StatusDistribution:      statuses,
	}, nil
}

// PublicStats implements StatsService.
func (s *statsServiceImpl) PublicStats(ctx context.Context) (stats.PublicStatsResponse, error) {
	totalEmployees, err := s.statsRepo.CountActiveEmployees(ctx)
	if err != nil {
		return stats.PublicStatsResponse{}, err
	}

	totalDepartments, err := s.statsRepo.CountDepartments(ctx)
	if err != nil {
		return stats.PublicStatsResponse{}, err
	}

	return stats.PublicStatsResponse{
		Message:          "Employee Management System API",
		TotalEmployees:   totalEmployees,
		TotalDepartments: totalDepartments,
		Status:           "operational",
	}, nil
}

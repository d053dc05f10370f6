package stats

import (
	"context"
	"testing"
	"time"

	"github.com/employeems/ems-backend-go/internal/domain/employee"
	"github.com/employeems/ems-backend-go/internal/domain/stats"
	"github.com/employeems/ems-backend-go/internal/pkg/clock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStatsRepo struct {
	counts      map[string]stats.StatusCounts
	fleetCounts []stats.EmployeeStatusCounts

	// captured arguments for range assertions
	lastStart time.Time
	lastEnd   time.Time
}

func (f *fakeStatsRepo) StatusCounts(ctx context.Context, employeeID string, start, end time.Time) (stats.StatusCounts, error) {
	f.lastStart, f.lastEnd = start, end
	return f.counts[employeeID], nil
}

func (f *fakeStatsRepo) FleetStatusCounts(ctx context.Context, start, end time.Time) ([]stats.EmployeeStatusCounts, error) {
	f.lastStart, f.lastEnd = start, end
	return f.fleetCounts, nil
}

func (f *fakeStatsRepo) TotalAttendanceRecords(ctx context.Context, start, end time.Time) (int64, error) {
	f.lastStart, f.lastEnd = start, end
	var total int64
	for _, c := range f.counts {
		total += c.Total
	}
	return total, nil
}

func (f *fakeStatsRepo) StatusDistribution(ctx context.Context, start, end time.Time) ([]stats.StatusCount, error) {
	return []stats.StatusCount{}, nil
}

func (f *fakeStatsRepo) DailyPresentCounts(ctx context.Context, start, end time.Time) ([]stats.DailyCount, error) {
	return []stats.DailyCount{}, nil
}

func (f *fakeStatsRepo) CountActiveEmployees(ctx context.Context) (int64, error) {
	return int64(len(f.counts)), nil
}

func (f *fakeStatsRepo) CountRecentJoiners(ctx context.Context, since time.Time) (int64, error) {
	return 0, nil
}

func (f *fakeStatsRepo) DepartmentHeadcounts(ctx context.Context) ([]stats.DepartmentHeadcount, error) {
	return []stats.DepartmentHeadcount{}, nil
}

func (f *fakeStatsRepo) RatingDistribution(ctx context.Context) ([]stats.RatingCount, error) {
	return []stats.RatingCount{}, nil
}

func (f *fakeStatsRepo) CountDepartments(ctx context.Context) (int64, error) {
	return 0, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) Search(ctx context.Context, query string, departmentID *string, isActive *bool, limit int) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) error { return nil }
func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error           { return nil }

func TestAttendancePercentage(t *testing.T) {
	cases := []struct {
		name   string
		counts stats.StatusCounts
		want   float64
	}{
		{"no records", stats.StatusCounts{}, 0},
		{"all present", stats.StatusCounts{Total: 10, Present: 10}, 100},
		{"three of five", stats.StatusCounts{Total: 5, Present: 3}, 60},
		{"one third rounds", stats.StatusCounts{Total: 3, Present: 1}, 33.33},
		{"two thirds rounds", stats.StatusCounts{Total: 3, Present: 2}, 66.67},
		{"none present", stats.StatusCounts{Total: 7}, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, AttendancePercentage(c.counts))
		})
	}
}

func TestStatsService_EmployeeStats(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.NewString()
	now := time.Date(2025, 3, 31, 15, 30, 0, 0, time.UTC)

	statsRepo := &fakeStatsRepo{
		counts: map[string]stats.StatusCounts{
			employeeID: {Total: 5, Present: 3, Absent: 1, Late: 1},
		},
	}
	employeeRepo := &fakeEmployeeRepo{
		employees: map[string]employee.Employee{
			employeeID: {ID: employeeID, EmployeeCode: "EMP001", FirstName: "Ada", LastName: "Lovelace"},
		},
	}
	svc := NewStatsService(statsRepo, employeeRepo, clock.Fixed(now))

	result, err := svc.EmployeeStats(ctx, employeeID, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "EMP001", result.EmployeeCode)
	assert.Equal(t, "Ada Lovelace", result.EmployeeName)
	assert.Equal(t, int64(5), result.TotalDays)
	assert.Equal(t, int64(3), result.PresentDays)
	assert.Equal(t, int64(1), result.AbsentDays)
	assert.Equal(t, int64(1), result.LateDays)
	assert.Equal(t, int64(0), result.HalfDays)
	assert.Equal(t, 60.0, result.AttendancePercentage)
}

func TestStatsService_EmployeeStats_DefaultRange(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.NewString()
	now := time.Date(2025, 3, 31, 15, 30, 0, 0, time.UTC)

	statsRepo := &fakeStatsRepo{counts: map[string]stats.StatusCounts{}}
	employeeRepo := &fakeEmployeeRepo{
		employees: map[string]employee.Employee{employeeID: {ID: employeeID, EmployeeCode: "EMP001"}},
	}
	svc := NewStatsService(statsRepo, employeeRepo, clock.Fixed(now))

	result, err := svc.EmployeeStats(ctx, employeeID, nil, nil)
	require.NoError(t, err)

	// Default window is the 30 days ending today, with time-of-day dropped.
	assert.Equal(t, "2025-03-01", result.DateRange.StartDate)
	assert.Equal(t, "2025-03-31", result.DateRange.EndDate)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), statsRepo.lastStart)
	assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), statsRepo.lastEnd)
}

func TestStatsService_EmployeeStats_ExplicitRange(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.NewString()
	now := time.Date(2025, 3, 31, 15, 30, 0, 0, time.UTC)

	statsRepo := &fakeStatsRepo{counts: map[string]stats.StatusCounts{}}
	employeeRepo := &fakeEmployeeRepo{
		employees: map[string]employee.Employee{employeeID: {ID: employeeID, EmployeeCode: "EMP001"}},
	}
	svc := NewStatsService(statsRepo, employeeRepo, clock.Fixed(now))

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
	result, err := svc.EmployeeStats(ctx, employeeID, &start, &end)
	require.NoError(t, err)

	assert.Equal(t, "2025-01-01", result.DateRange.StartDate)
	assert.Equal(t, "2025-01-31", result.DateRange.EndDate)
}

func TestStatsService_EmployeeStats_NoRecords(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.NewString()
	now := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	statsRepo := &fakeStatsRepo{counts: map[string]stats.StatusCounts{}}
	employeeRepo := &fakeEmployeeRepo{
		employees: map[string]employee.Employee{employeeID: {ID: employeeID, EmployeeCode: "EMP001"}},
	}
	svc := NewStatsService(statsRepo, employeeRepo, clock.Fixed(now))

	result, err := svc.EmployeeStats(ctx, employeeID, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(0), result.TotalDays)
	assert.Equal(t, 0.0, result.AttendancePercentage)
}

func TestStatsService_EmployeeStats_UnknownEmployee(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	svc := NewStatsService(
		&fakeStatsRepo{counts: map[string]stats.StatusCounts{}},
		&fakeEmployeeRepo{employees: map[string]employee.Employee{}},
		clock.Fixed(now),
	)

	_, err := svc.EmployeeStats(ctx, uuid.NewString(), nil, nil)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestStatsService_FleetStats(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	statsRepo := &fakeStatsRepo{
		fleetCounts: []stats.EmployeeStatusCounts{
			{
				EmployeeID:   uuid.NewString(),
				EmployeeCode: "EMP001",
				EmployeeName: "Ada Lovelace",
				Counts:       stats.StatusCounts{Total: 4, Present: 4},
			},
			{
				// Active employee with no records in range still shows up.
				EmployeeID:   uuid.NewString(),
				EmployeeCode: "EMP002",
				EmployeeName: "Grace Hopper",
				Counts:       stats.StatusCounts{},
			},
		},
	}
	svc := NewStatsService(statsRepo, &fakeEmployeeRepo{}, clock.Fixed(now))

	result, err := svc.FleetStats(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, result.EmployeeStats, 2)

	assert.Equal(t, 100.0, result.EmployeeStats[0].AttendancePercentage)
	assert.Equal(t, int64(0), result.EmployeeStats[1].TotalDays)
	assert.Equal(t, 0.0, result.EmployeeStats[1].AttendancePercentage)
}

func TestStatsService_FleetStats_Empty(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	svc := NewStatsService(&fakeStatsRepo{}, &fakeEmployeeRepo{}, clock.Fixed(now))

	result, err := svc.FleetStats(ctx, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, result.EmployeeStats)
	assert.Equal(t, "2025-03-01", result.DateRange.StartDate)
	assert.Equal(t, "2025-03-31", result.DateRange.EndDate)
}

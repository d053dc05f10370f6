package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/employeems/ems-backend-go/internal/domain/attendance"
	"github.com/employeems/ems-backend-go/internal/domain/employee"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAttendanceRepo keeps records in memory so the validation rules can be
// exercised without a database.
type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	a.ID = uuid.NewString()
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	f.records[a.ID] = a
	return a, nil
}

func (f *fakeAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	a, ok := f.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return a, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, excludeID string) (*attendance.Attendance, error) {
	for _, a := range f.records {
		if a.EmployeeID == employeeID && a.Date.Equal(date) && a.ID != excludeID {
			found := a
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	results := []attendance.Attendance{}
	for _, a := range f.records {
		results = append(results, a)
	}
	return results, int64(len(results)), nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, a attendance.Attendance) error {
	existing, ok := f.records[a.ID]
	if !ok {
		return attendance.ErrAttendanceNotFound
	}
	a.CreatedAt = existing.CreatedAt
	a.UpdatedAt = time.Now()
	f.records[a.ID] = a
	return nil
}

func (f *fakeAttendanceRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.records[id]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	delete(f.records, id)
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(ids ...string) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for i, id := range ids {
		f.employees[id] = employee.Employee{
			ID:           id,
			EmployeeCode: "EMP00" + string(rune('1'+i)),
			FirstName:    "Test",
			LastName:     "Employee",
			IsActive:     true,
		}
	}
	return f
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	f.employees[e.ID] = e
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

func (f *fakeEmployeeRepo) Update(ctx context.Context, e employee.Employee) error {
	f.employees[e.ID] = e
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	delete(f.employees, id)
	return nil
}

func strPtr(s string) *string { return &s }

func TestAttendanceService_Create_Success(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.NewString()
	svc := NewAttendanceService(newFakeAttendanceRepo(), newFakeEmployeeRepo(employeeID))

	result, err := svc.Create(ctx, attendance.CreateAttendanceRequest{
		EmployeeID:   employeeID,
		Date:         "2025-03-10",
		Status:       "present",
		CheckInTime:  strPtr("09:00"),
		CheckOutTime: strPtr("17:00"),
	})

	require.NoError(t, err)
	assert.Equal(t, "present", result.Status)
	assert.Equal(t, "Present", result.StatusDisplay)
	require.NotNil(t, result.HoursWorked)
	assert.Equal(t, 8.0, *result.HoursWorked)
}

func TestAttendanceService_Create_OvernightShiftAccepted(t *testing.T) {
	// A check-out earlier than check-in is a night shift, not an error.
	ctx := context.Background()
	employeeID := uuid.NewString()
	svc := NewAttendanceService(newFakeAttendanceRepo(), newFakeEmployeeRepo(employeeID))

	result, err := svc.Create(ctx, attendance.CreateAttendanceRequest{
		EmployeeID:   employeeID,
		Date:         "2025-03-10",
		Status:       "present",
		CheckInTime:  strPtr("22:00"),
		CheckOutTime: strPtr("06:00"),
	})

	require.NoError(t, err)
	require.NotNil(t, result.HoursWorked)
	assert.Equal(t, 8.0, *result.HoursWorked)
}

func TestAttendanceService_Create_DuplicateDate(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.NewString()
	svc := NewAttendanceService(newFakeAttendanceRepo(), newFakeEmployeeRepo(employeeID))

	req := attendance.CreateAttendanceRequest{
		EmployeeID:  employeeID,
		Date:        "2025-03-10",
		Status:      "present",
		CheckInTime: strPtr("09:00"),
	}
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, attendance.ErrDuplicateAttendance)
}

func TestAttendanceService_Create_SameDateDifferentEmployees(t *testing.T) {
	ctx := context.Background()
	firstID := uuid.NewString()
	secondID := uuid.NewString()
	svc := NewAttendanceService(newFakeAttendanceRepo(), newFakeEmployeeRepo(firstID, secondID))

	for _, id := range []string{firstID, secondID} {
		_, err := svc.Create(ctx, attendance.CreateAttendanceRequest{
			EmployeeID:  id,
			Date:        "2025-03-10",
			Status:      "present",
			CheckInTime: strPtr("09:00"),
		})
		require.NoError(t, err)
	}
}

func TestAttendanceService_Create_PresentRequiresCheckIn(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.NewString()
	svc := NewAttendanceService(newFakeAttendanceRepo(), newFakeEmployeeRepo(employeeID))

	_, err := svc.Create(ctx, attendance.CreateAttendanceRequest{
		EmployeeID: employeeID,
		Date:       "2025-03-10",
		Status:     "present",
	})

	assert.ErrorIs(t, err, attendance.ErrCheckInRequired)
}

func TestAttendanceService_Create_AbsentWithoutTimes(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.NewString()
	svc := NewAttendanceService(newFakeAttendanceRepo(), newFakeEmployeeRepo(employeeID))

	result, err := svc.Create(ctx, attendance.CreateAttendanceRequest{
		EmployeeID: employeeID,
		Date:       "2025-03-10",
		Status:     "absent",
	})

	require.NoError(t, err)
	assert.Nil(t, result.HoursWorked)
	assert.Nil(t, result.CheckInTime)
}

func TestAttendanceService_Create_UnknownEmployee(t *testing.T) {
	ctx := context.Background()
	svc := NewAttendanceService(newFakeAttendanceRepo(), newFakeEmployeeRepo())

	_, err := svc.Create(ctx, attendance.CreateAttendanceRequest{
		EmployeeID: uuid.NewString(),
		Date:       "2025-03-10",
		Status:     "absent",
	})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAttendanceService_Create_InvalidStatus(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.NewString()
	svc := NewAttendanceService(newFakeAttendanceRepo(), newFakeEmployeeRepo(employeeID))

	_, err := svc.Create(ctx, attendance.CreateAttendanceRequest{
		EmployeeID: employeeID,
		Date:       "2025-03-10",
		Status:     "vacation",
	})

	assert.Error(t, err)
}

func TestAttendanceService_Update_OwnDateNotDuplicate(t *testing.T) {
	// Updating a record keeping its own date must not trip the duplicate
	// check.
	ctx := context.Background()
	employeeID := uuid.NewString()
	svc := NewAttendanceService(newFakeAttendanceRepo(), newFakeEmployeeRepo(employeeID))

	created, err := svc.Create(ctx, attendance.CreateAttendanceRequest{
		EmployeeID:  employeeID,
		Date:        "2025-03-10",
		Status:      "present",
		CheckInTime: strPtr("09:00"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, attendance.UpdateAttendanceRequest{
		ID: created.ID,
		CreateAttendanceRequest: attendance.CreateAttendanceRequest{
			EmployeeID:   employeeID,
			Date:         "2025-03-10",
			Status:       "late",
			CheckInTime:  strPtr("10:15"),
			CheckOutTime: strPtr("17:00"),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "late", updated.Status)
	require.NotNil(t, updated.HoursWorked)
	assert.Equal(t, 6.75, *updated.HoursWorked)
}

func TestAttendanceService_Update_CollidingDate(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.NewString()
	svc := NewAttendanceService(newFakeAttendanceRepo(), newFakeEmployeeRepo(employeeID))

	_, err := svc.Create(ctx, attendance.CreateAttendanceRequest{
		EmployeeID: employeeID,
		Date:       "2025-03-10",
		Status:     "absent",
	})
	require.NoError(t, err)

	second, err := svc.Create(ctx, attendance.CreateAttendanceRequest{
		EmployeeID: employeeID,
		Date:       "2025-03-11",
		Status:     "absent",
	})
	require.NoError(t, err)

	// Move the second record onto the first one's date.
	_, err = svc.Update(ctx, attendance.UpdateAttendanceRequest{
		ID: second.ID,
		CreateAttendanceRequest: attendance.CreateAttendanceRequest{
			EmployeeID: employeeID,
			Date:       "2025-03-10",
			Status:     "absent",
		},
	})

	assert.ErrorIs(t, err, attendance.ErrDuplicateAttendance)
}

func TestAttendanceService_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.NewString()
	svc := NewAttendanceService(newFakeAttendanceRepo(), newFakeEmployeeRepo(employeeID))

	_, err := svc.Update(ctx, attendance.UpdateAttendanceRequest{
		ID: uuid.NewString(),
		CreateAttendanceRequest: attendance.CreateAttendanceRequest{
			EmployeeID: employeeID,
			Date:       "2025-03-10",
			Status:     "absent",
		},
	})

	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestAttendanceService_Delete(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.NewString()
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo, newFakeEmployeeRepo(employeeID))

	created, err := svc.Create(ctx, attendance.CreateAttendanceRequest{
		EmployeeID: employeeID,
		Date:       "2025-03-10",
		Status:     "absent",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), attendance.ErrAttendanceNotFound)
}

package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/employeems/ems-backend-go/internal/domain/attendance"
	"github.com/employeems/ems-backend-go/internal/domain/employee"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type AttendanceService interface {
	Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error)
	Get(ctx context.Context, id string) (attendance.AttendanceResponse, error)
	List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, int64, error)
	Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error)
	Delete(ctx context.Context, id string) error
}

type attendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) AttendanceService {
	return &attendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// entityFromRequest builds an entity from a validated create request. A
// check-out before check-in is kept as-is; it reads as an overnight shift
// when hours are derived.
func entityFromRequest(req attendance.CreateAttendanceRequest) attendance.Attendance {
	date, _ := time.Parse("2006-01-02", req.Date)

	a := attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Status:     attendance.Status(req.Status),
		Notes:      req.Notes,
	}
	if req.CheckInTime != nil {
		t, _ := attendance.ParseTimeOfDay(*req.CheckInTime)
		a.CheckInTime = &t
	}
	if req.CheckOutTime != nil {
		t, _ := attendance.ParseTimeOfDay(*req.CheckOutTime)
		a.CheckOutTime = &t
	}
	return a
}

// validateRecord runs the cross-field rules shared by create and update:
// one record per employee per date (excludeID skips the record being
// updated), and a present record must carry a check-in time.
func (s *attendanceServiceImpl) validateRecord(ctx context.Context, a attendance.Attendance, excludeID string) error {
	if _, err := s.employeeRepo.GetByID(ctx, a.EmployeeID); err != nil {
		return err
	}

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, a.EmployeeID, a.Date, excludeID)
	if err != nil {
		return err
	}
	if existing != nil {
		return attendance.ErrDuplicateAttendance
	}

	if a.Status == attendance.StatusPresent && a.CheckInTime == nil {
		return attendance.ErrCheckInRequired
	}

	return nil
}

// Create implements AttendanceService.
func (s *attendanceServiceImpl) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record := entityFromRequest(req)
	if err := s.validateRecord(ctx, record, ""); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		// The pre-check races with concurrent writers; the unique index is
		// authoritative.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.AttendanceResponse{}, attendance.ErrDuplicateAttendance
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return s.Get(ctx, created.ID)
}

// Get implements AttendanceService.
func (s *attendanceServiceImpl) Get(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	found, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.NewAttendanceResponse(found), nil
}

// List implements AttendanceService.
func (s *attendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}

	records, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, a := range records {
		responses = append(responses, attendance.NewAttendanceResponse(a))
	}
	return responses, total, nil
}

// Update implements AttendanceService. The record being updated is excluded
// from the duplicate check so re-submitting the same date is not a conflict.
func (s *attendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	existing, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record := entityFromRequest(req.CreateAttendanceRequest)
	record.ID = existing.ID
	if err := s.validateRecord(ctx, record, record.ID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := s.attendanceRepo.Update(ctx, record); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.AttendanceResponse{}, attendance.ErrDuplicateAttendance
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return s.Get(ctx, req.ID)
}

// Delete implements AttendanceService.
func (s *attendanceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.attendanceRepo.Delete(ctx, id)
}

package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/audit"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/export"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/utils"
)

const exportDomain = "attendance"

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	verifier auth.AdminVerifier
	auditor  audit.AuditService
	now      func() time.Time
}

func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	employeeRepository employee.EmployeeRepository,
	verifier auth.AdminVerifier,
	auditor audit.AuditService,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
		verifier:             verifier,
		auditor:              auditor,
		now:                  time.Now,
	}
}

func (s *AttendanceServiceImpl) fetch(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	query := attendance.ListQuery{}
	if filter.Date != nil {
		query.Date = *filter.Date
	}

	records, err := s.AttendanceRepository.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	return Filter(records, filter.Criteria), nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, err := s.fetch(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	pageItems, info := utils.Paginate(records, filter.Page, filter.Limit)

	responses := make([]attendance.AttendanceResponse, 0, len(pageItems))
	for _, a := range pageItems {
		responses = append(responses, attendance.ToResponse(a))
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  info.TotalCount,
		Page:        info.Page,
		Limit:       info.Limit,
		TotalPages:  info.TotalPages,
		Showing:     info.Showing,
		Attendances: responses,
	}, nil
}

// Create implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to load employee directory: %w", err)
	}
	emp, ok := employee.Find(employees, req.UserID)
	if !ok {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeNotFound
	}

	record := attendance.Attendance{
		UserID:            emp.UserID,
		Username:          emp.Username,
		DisplayName:       emp.DisplayName,
		Date:              req.Date,
		FirstHalfPresent:  req.FirstHalfPresent,
		SecondHalfPresent: req.SecondHalfPresent,
		Note:              req.Note,
	}

	created, err := s.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}
	if created == nil {
		created = &record
	}

	s.auditor.Record(ctx, audit.ActionCreate, audit.ResourceAttendance, created.ID)

	return attendance.ToResponse(*created), nil
}

// Update implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (*attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.AttendanceRepository.Update(ctx, req.ID, attendance.Patch{
		Date:              req.Date,
		FirstHalfPresent:  req.FirstHalfPresent,
		SecondHalfPresent: req.SecondHalfPresent,
		Note:              req.Note,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update attendance record: %w", err)
	}

	s.auditor.Record(ctx, audit.ActionUpdate, audit.ResourceAttendance, req.ID)

	if updated == nil {
		return nil, nil
	}
	resp := attendance.ToResponse(*updated)
	return &resp, nil
}

// Delete implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, req attendance.DeleteAttendanceRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.verifier.VerifyAdminPassword(req.Password); err != nil {
		return err
	}

	if err := s.AttendanceRepository.Delete(ctx, req.ID); err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}

	s.auditor.Record(ctx, audit.ActionDelete, audit.ResourceAttendance, req.ID)
	return nil
}

// Export implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Export(ctx context.Context, filter attendance.AttendanceFilter) (export.File, error) {
	if err := filter.Validate(); err != nil {
		return export.File{}, err
	}

	records, err := s.fetch(ctx, filter)
	if err != nil {
		return export.File{}, err
	}

	date := s.now().Format(utils.DateLayout)
	if filter.Date != nil {
		date = *filter.Date
	}

	return export.Render(Table(records), export.Stem(exportDomain, date), filter.Format)
}

// Table lays out attendance records for download.
func Table(records []attendance.Attendance) *export.Table {
	table := export.NewTable("Name", "Username", "Date", "Time", "Status", "First Half", "Second Half")
	for _, a := range records {
		table.AddRow(
			a.Name(),
			a.Username,
			a.Date,
			clockTime(a.CreatedAt),
			a.Status(),
			presence(a.FirstHalfPresent),
			presence(a.SecondHalfPresent),
		)
	}
	return table
}

func clockTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("15:04")
}

func presence(present bool) string {
	if present {
		return "Present"
	}
	return "Absent"
}

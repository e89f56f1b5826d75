package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/audit"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/export"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/utils"
)

const exportDomain = "leaves"

type LeaveServiceImpl struct {
	leave.LeaveRepository
	employee.EmployeeRepository
	verifier auth.AdminVerifier
	auditor  audit.AuditService
	now      func() time.Time
}

func NewLeaveService(
	leaveRepository leave.LeaveRepository,
	employeeRepository employee.EmployeeRepository,
	verifier auth.AdminVerifier,
	auditor audit.AuditService,
) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository:    leaveRepository,
		EmployeeRepository: employeeRepository,
		verifier:           verifier,
		auditor:            auditor,
		now:                time.Now,
	}
}

func (s *LeaveServiceImpl) fetch(ctx context.Context, filter leave.LeaveFilter) ([]leave.Leave, error) {
	query := leave.ListQuery{}
	if filter.Date != nil {
		query.Date = *filter.Date
	}

	records, err := s.LeaveRepository.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave records: %w", err)
	}
	return Filter(records, filter.Criteria), nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.LeaveFilter) (leave.ListLeaveResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveResponse{}, err
	}

	records, err := s.fetch(ctx, filter)
	if err != nil {
		return leave.ListLeaveResponse{}, err
	}

	pageItems, info := utils.Paginate(records, filter.Page, filter.Limit)

	responses := make([]leave.LeaveResponse, 0, len(pageItems))
	for _, l := range pageItems {
		responses = append(responses, leave.ToResponse(l))
	}

	return leave.ListLeaveResponse{
		TotalCount: info.TotalCount,
		Page:       info.Page,
		Limit:      info.Limit,
		TotalPages: info.TotalPages,
		Showing:    info.Showing,
		Leaves:     responses,
	}, nil
}

// Create implements leave.LeaveService.
func (s *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to load employee directory: %w", err)
	}
	emp, ok := employee.Find(employees, req.UserID)
	if !ok {
		return leave.LeaveResponse{}, employee.ErrEmployeeNotFound
	}

	record := leave.Leave{
		UserID:      emp.UserID,
		Username:    emp.Username,
		DisplayName: emp.DisplayName,
		Date:        req.Date,
		HalfDay:     req.HalfDay,
		Reason:      req.Reason,
	}

	created, err := s.LeaveRepository.Create(ctx, record)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave record: %w", err)
	}
	if created == nil {
		created = &record
	}

	s.auditor.Record(ctx, audit.ActionCreate, audit.ResourceLeave, created.ID)

	return leave.ToResponse(*created), nil
}

// Update implements leave.LeaveService.
func (s *LeaveServiceImpl) Update(ctx context.Context, req leave.UpdateLeaveRequest) (*leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.LeaveRepository.Update(ctx, req.ID, leave.Patch{
		Date:    req.Date,
		HalfDay: req.HalfDay,
		Reason:  req.Reason,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update leave record: %w", err)
	}

	s.auditor.Record(ctx, audit.ActionUpdate, audit.ResourceLeave, req.ID)

	if updated == nil {
		return nil, nil
	}
	resp := leave.ToResponse(*updated)
	return &resp, nil
}

// Delete implements leave.LeaveService.
func (s *LeaveServiceImpl) Delete(ctx context.Context, req leave.DeleteLeaveRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.verifier.VerifyAdminPassword(req.Password); err != nil {
		return err
	}

	if err := s.LeaveRepository.Delete(ctx, req.ID); err != nil {
		return fmt.Errorf("failed to delete leave record: %w", err)
	}

	s.auditor.Record(ctx, audit.ActionDelete, audit.ResourceLeave, req.ID)
	return nil
}

// Export implements leave.LeaveService.
func (s *LeaveServiceImpl) Export(ctx context.Context, filter leave.LeaveFilter) (export.File, error) {
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

// Table lays out leave records for download. Reason is always quoted in CSV.
func Table(records []leave.Leave) *export.Table {
	table := export.NewTable("Name", "Username", "Date", "Leave Type", "Reason", "Applied On").
		WithFreeText("Reason")
	for _, l := range records {
		appliedOn := ""
		if !l.CreatedAt.IsZero() {
			appliedOn = l.CreatedAt.Format(utils.DateLayout)
		}
		table.AddRow(l.Name(), l.Username, l.Date, l.Label(), l.Reason, appliedOn)
	}
	return table
}

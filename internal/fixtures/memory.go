package fixtures

import (
	"context"
	"fmt"
	"sync"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/audit"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
)

// AttendanceStore is an in-memory attendance.AttendanceRepository.
type AttendanceStore struct {
	mu      sync.Mutex
	Records []attendance.Attendance
	// Err, when set, is returned by every call.
	Err   error
	Calls []string
	seq   int
}

func NewAttendanceStore(records []attendance.Attendance) *AttendanceStore {
	return &AttendanceStore{Records: append([]attendance.Attendance(nil), records...)}
}

func (s *AttendanceStore) List(ctx context.Context, query attendance.ListQuery) ([]attendance.Attendance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls = append(s.Calls, "list")
	if s.Err != nil {
		return nil, s.Err
	}
	result := []attendance.Attendance{}
	for _, r := range s.Records {
		if query.Date != "" && r.Date != query.Date {
			continue
		}
		if query.UserID != "" && r.UserID != query.UserID {
			continue
		}
		result = append(result, r)
	}
	return result, nil
}

func (s *AttendanceStore) Create(ctx context.Context, a attendance.Attendance) (*attendance.Attendance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls = append(s.Calls, "create")
	if s.Err != nil {
		return nil, s.Err
	}
	s.seq++
	a.ID = fmt.Sprintf("new-a%d", s.seq)
	s.Records = append(s.Records, a)
	return &a, nil
}

func (s *AttendanceStore) Update(ctx context.Context, id string, patch attendance.Patch) (*attendance.Attendance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls = append(s.Calls, "update")
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Records {
		if s.Records[i].ID != id {
			continue
		}
		r := &s.Records[i]
		if patch.Date != nil {
			r.Date = *patch.Date
		}
		if patch.FirstHalfPresent != nil {
			r.FirstHalfPresent = *patch.FirstHalfPresent
		}
		if patch.SecondHalfPresent != nil {
			r.SecondHalfPresent = *patch.SecondHalfPresent
		}
		if patch.Note != nil {
			r.Note = patch.Note
		}
		updated := *r
		return &updated, nil
	}
	return nil, attendance.ErrAttendanceNotFound
}

func (s *AttendanceStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls = append(s.Calls, "delete")
	if s.Err != nil {
		return s.Err
	}
	for i, r := range s.Records {
		if r.ID == id {
			s.Records = append(s.Records[:i], s.Records[i+1:]...)
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

// LeaveStore is an in-memory leave.LeaveRepository.
type LeaveStore struct {
	mu      sync.Mutex
	Records []leave.Leave
	Err     error
	Calls   []string
	seq     int
}

func NewLeaveStore(records []leave.Leave) *LeaveStore {
	return &LeaveStore{Records: append([]leave.Leave(nil), records...)}
}

func (s *LeaveStore) List(ctx context.Context, query leave.ListQuery) ([]leave.Leave, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls = append(s.Calls, "list")
	if s.Err != nil {
		return nil, s.Err
	}
	result := []leave.Leave{}
	for _, r := range s.Records {
		if query.Date != "" && r.Date != query.Date {
			continue
		}
		if query.UserID != "" && r.UserID != query.UserID {
			continue
		}
		result = append(result, r)
	}
	return result, nil
}

func (s *LeaveStore) Create(ctx context.Context, l leave.Leave) (*leave.Leave, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls = append(s.Calls, "create")
	if s.Err != nil {
		return nil, s.Err
	}
	s.seq++
	l.ID = fmt.Sprintf("new-l%d", s.seq)
	s.Records = append(s.Records, l)
	return &l, nil
}

func (s *LeaveStore) Update(ctx context.Context, id string, patch leave.Patch) (*leave.Leave, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls = append(s.Calls, "update")
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Records {
		if s.Records[i].ID != id {
			continue
		}
		r := &s.Records[i]
		if patch.Date != nil {
			r.Date = *patch.Date
		}
		if patch.HalfDay != nil {
			r.HalfDay = *patch.HalfDay
		}
		if patch.Reason != nil {
			r.Reason = *patch.Reason
		}
		updated := *r
		return &updated, nil
	}
	return nil, leave.ErrLeaveNotFound
}

func (s *LeaveStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls = append(s.Calls, "delete")
	if s.Err != nil {
		return s.Err
	}
	for i, r := range s.Records {
		if r.ID == id {
			s.Records = append(s.Records[:i], s.Records[i+1:]...)
			return nil
		}
	}
	return leave.ErrLeaveNotFound
}

// Directory is an in-memory employee.EmployeeRepository.
type Directory struct {
	Employees []employee.Employee
	Err       error
}

func (d *Directory) List(ctx context.Context) ([]employee.Employee, error) {
	if d.Err != nil {
		return nil, d.Err
	}
	return append([]employee.Employee(nil), d.Employees...), nil
}

// Verifier accepts exactly Password.
type Verifier struct {
	Password string
}

func (v Verifier) VerifyAdminPassword(password string) error {
	if password != v.Password {
		return auth.ErrInvalidAdminPassword
	}
	return nil
}

// RecordedAction is one call captured by Auditor.
type RecordedAction struct {
	Action   string
	Resource string
	RecordID string
}

// Auditor captures audit.AuditService.Record calls.
type Auditor struct {
	mu      sync.Mutex
	Actions []RecordedAction
}

func (a *Auditor) Record(ctx context.Context, action, resource, recordID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Actions = append(a.Actions, RecordedAction{Action: action, Resource: resource, RecordID: recordID})
}

func (a *Auditor) List(ctx context.Context, filter audit.AuditFilter) (audit.ListAuditResponse, error) {
	return audit.ListAuditResponse{Page: 1, Limit: 20, Entries: []audit.EntryResponse{}}, nil
}

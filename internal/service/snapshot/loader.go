package snapshot

import (
	"context"
	"log/slog"
	"sync"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
	"golang.org/x/sync/errgroup"
)

// Source selects which collections a Load fetches.
type Source uint8

const (
	Attendance Source = 1 << iota
	Leaves
	Employees

	None Source = 0
	All         = Attendance | Leaves | Employees
)

// Snapshot is a request-scoped copy of the HR API collections.
type Snapshot struct {
	Attendance []attendance.Attendance
	Leaves     []leave.Leave
	Employees  []employee.Employee
	Warnings   []string
}

// Loader fetches several collections concurrently for joined views.
type Loader struct {
	attendance attendance.AttendanceRepository
	leaves     leave.LeaveRepository
	employees  employee.EmployeeRepository
}

func NewLoader(attendanceRepository attendance.AttendanceRepository, leaveRepository leave.LeaveRepository, employeeRepository employee.EmployeeRepository) *Loader {
	return &Loader{
		attendance: attendanceRepository,
		leaves:     leaveRepository,
		employees:  employeeRepository,
	}
}

// Load fetches sources concurrently and waits for all of them. A failing source listed in
// required fails the load; any other failure leaves that collection empty and adds a warning.
func (l *Loader) Load(ctx context.Context, sources, required Source) (Snapshot, error) {
	var (
		snap Snapshot
		mu   sync.Mutex
	)

	degrade := func(src Source, name string, err error) error {
		if required&src != 0 {
			return err
		}
		slog.Warn("HR API source unavailable, continuing without it", "source", name, "error", err)
		mu.Lock()
		snap.Warnings = append(snap.Warnings, "Failed to load "+name+" records")
		mu.Unlock()
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)

	if sources&Attendance != 0 {
		g.Go(func() error {
			records, err := l.attendance.List(gctx, attendance.ListQuery{})
			if err != nil {
				return degrade(Attendance, "attendance", err)
			}
			snap.Attendance = records
			return nil
		})
	}
	if sources&Leaves != 0 {
		g.Go(func() error {
			records, err := l.leaves.List(gctx, leave.ListQuery{})
			if err != nil {
				return degrade(Leaves, "leave", err)
			}
			snap.Leaves = records
			return nil
		})
	}
	if sources&Employees != 0 {
		g.Go(func() error {
			records, err := l.employees.List(gctx)
			if err != nil {
				return degrade(Employees, "employee", err)
			}
			snap.Employees = records
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}

	if snap.Attendance == nil {
		snap.Attendance = []attendance.Attendance{}
	}
	if snap.Leaves == nil {
		snap.Leaves = []leave.Leave{}
	}
	if snap.Employees == nil {
		snap.Employees = []employee.Employee{}
	}
	return snap, nil
}

package fixtures

import (
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func BoolPtr(b bool) *bool    { return &b }
func StrPtr(s string) *string { return &s }

func at(date string, hour int) time.Time {
	d, _ := time.Parse("2006-01-02", date)
	return d.Add(time.Duration(hour) * time.Hour)
}

// ==========================================
// DEFAULT DATASET
// ==========================================

// Dataset is a coherent set of HR API records for service and handler tests.
type Dataset struct {
	Employees  []employee.Employee
	Attendance []attendance.Attendance
	Leaves     []leave.Leave
}

// DefaultDataset returns three employees around the week of 2024-03-04:
// Alice is present every day, Bob has half days and a leave, Carol only has leave.
func DefaultDataset() Dataset {
	alice := employee.Employee{UserID: "u-alice", Username: "alice", DisplayName: "Alice Anders", Email: StrPtr("alice@example.com")}
	bob := employee.Employee{UserID: "u-bob", Username: "bob", DisplayName: "Bob Brown"}
	carol := employee.Employee{UserID: "u-carol", Username: "carol", DisplayName: "Carol Chen"}

	return Dataset{
		Employees: []employee.Employee{alice, bob, carol},
		Attendance: []attendance.Attendance{
			Attendance("a1", alice, "2024-03-04", true, true, at("2024-03-04", 8)),
			Attendance("a2", alice, "2024-03-05", true, true, at("2024-03-05", 8)),
			Attendance("a3", bob, "2024-03-04", true, false, at("2024-03-04", 9)),
			Attendance("a4", bob, "2024-03-05", false, true, at("2024-03-05", 13)),
			Attendance("a5", bob, "2024-03-06", true, true, at("2024-03-06", 9)),
		},
		Leaves: []leave.Leave{
			Leave("l1", bob, "2024-03-07", leave.HalfDayFull, "Family event", at("2024-03-01", 10)),
			Leave("l2", carol, "2024-03-04", leave.HalfDayFirst, "Doctor, dentist", at("2024-03-02", 11)),
			Leave("l3", carol, "2024-03-05", leave.HalfDayFull, "Travel", at("2024-03-02", 12)),
		},
	}
}

func Attendance(id string, e employee.Employee, date string, first, second bool, createdAt time.Time) attendance.Attendance {
	return attendance.Attendance{
		ID:                id,
		UserID:            e.UserID,
		Username:          e.Username,
		DisplayName:       e.DisplayName,
		Date:              date,
		FirstHalfPresent:  first,
		SecondHalfPresent: second,
		CreatedAt:         createdAt,
	}
}

func Leave(id string, e employee.Employee, date, halfDay, reason string, createdAt time.Time) leave.Leave {
	return leave.Leave{
		ID:          id,
		UserID:      e.UserID,
		Username:    e.Username,
		DisplayName: e.DisplayName,
		Date:        date,
		HalfDay:     halfDay,
		Reason:      reason,
		CreatedAt:   createdAt,
	}
}

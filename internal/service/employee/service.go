package employee

import (
	"context"
	"sort"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/utils"
	reportservice "github.com/cmlabs-hris/hris-dashboard-go/internal/service/report"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/service/snapshot"
)

const attendanceChartPoints = 14

type EmployeeServiceImpl struct {
	loader *snapshot.Loader
	opts   reportservice.Options
	now    func() time.Time
}

func NewEmployeeService(loader *snapshot.Loader, halfDayMode report.HalfDayMode) employee.EmployeeService {
	return &EmployeeServiceImpl{
		loader: loader,
		opts:   reportservice.Options{HalfDayMode: halfDayMode},
		now:    time.Now,
	}
}

type cardState struct {
	card           employee.EmployeeCard
	lastAttendance string
	lastLeave      string
	fullDayToday   bool
	leaveToday     bool
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if err := filter.Validate(); err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	snap, err := s.loader.Load(ctx, snapshot.All, snapshot.None)
	if err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	today := s.now().UTC().Format(utils.DateLayout)
	states := map[string]*cardState{}

	state := func(userID, username, displayName string) *cardState {
		st, ok := states[userID]
		if !ok {
			st = &cardState{card: employee.EmployeeCard{UserID: userID}}
			states[userID] = st
		}
		if st.card.Username == "" {
			st.card.Username = username
		}
		if st.card.DisplayName == "" {
			st.card.DisplayName = displayName
		}
		return st
	}

	for _, a := range snap.Attendance {
		if a.UserID == "" {
			continue
		}
		st := state(a.UserID, a.Username, a.DisplayName)
		st.card.AttendanceCount++
		day, ok := utils.NormalizeDate(a.Date)
		if !ok {
			continue
		}
		if day > st.lastAttendance {
			st.lastAttendance = day
		}
		if day == today && a.IsFullDay() {
			st.fullDayToday = true
		}
	}

	for _, l := range snap.Leaves {
		if l.UserID == "" {
			continue
		}
		st := state(l.UserID, l.Username, l.DisplayName)
		st.card.LeaveCount++
		day, ok := utils.NormalizeDate(l.Date)
		if !ok {
			continue
		}
		if day > st.lastLeave {
			st.lastLeave = day
		}
		if day == today {
			st.leaveToday = true
		}
	}

	cards := make([]employee.EmployeeCard, 0, len(states))
	for _, st := range states {
		card := st.card
		if emp, ok := employee.Find(snap.Employees, card.UserID); ok {
			card.Email = emp.Email
			if card.DisplayName == "" {
				card.DisplayName = emp.DisplayName
			}
		}

		switch {
		case st.lastAttendance != "":
			lastSeen := st.lastAttendance
			card.LastSeen = &lastSeen
		case st.lastLeave != "":
			lastSeen := st.lastLeave
			card.LastSeen = &lastSeen
		}

		switch {
		case st.leaveToday:
			card.Status = employee.PresenceOnLeave
		case st.fullDayToday:
			card.Status = employee.PresencePresent
		default:
			card.Status = employee.PresenceAbsent
		}

		if filter.Search != "" && !utils.ContainsFoldAny(filter.Search, card.DisplayName, card.Username) {
			continue
		}
		cards = append(cards, card)
	}

	sort.Slice(cards, func(i, j int) bool {
		if cards[i].DisplayName != cards[j].DisplayName {
			return cards[i].DisplayName < cards[j].DisplayName
		}
		return cards[i].UserID < cards[j].UserID
	})

	return employee.ListEmployeeResponse{Employees: cards, Warnings: snap.Warnings}, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, req employee.GetEmployeeRequest) (employee.EmployeeDetailResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeDetailResponse{}, err
	}

	snap, err := s.loader.Load(ctx, snapshot.All, snapshot.Employees)
	if err != nil {
		return employee.EmployeeDetailResponse{}, err
	}

	emp, ok := employee.Find(snap.Employees, req.UserID)
	if !ok {
		return employee.EmployeeDetailResponse{}, employee.ErrEmployeeNotFound
	}

	atts := []attendance.Attendance{}
	for _, a := range snap.Attendance {
		if a.UserID == emp.UserID {
			atts = append(atts, a)
		}
	}
	leaves := []leave.Leave{}
	for _, l := range snap.Leaves {
		if l.UserID == emp.UserID {
			leaves = append(leaves, l)
		}
	}

	summary := reportservice.Aggregate(atts, leaves, nil, s.opts)[emp.UserID]

	sort.SliceStable(atts, func(i, j int) bool { return atts[i].Date > atts[j].Date })
	sort.SliceStable(leaves, func(i, j int) bool { return leaves[i].Date > leaves[j].Date })

	attResponses := make([]attendance.AttendanceResponse, 0, len(atts))
	for _, a := range atts {
		attResponses = append(attResponses, attendance.ToResponse(a))
	}
	leaveResponses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		leaveResponses = append(leaveResponses, leave.ToResponse(l))
	}

	return employee.EmployeeDetailResponse{
		Employee: employee.EmployeeResponse{
			UserID:      emp.UserID,
			Username:    emp.Username,
			DisplayName: emp.DisplayName,
			Email:       emp.Email,
		},
		Stats: employee.EmployeeStats{
			TotalDays:      len(atts) + len(leaves),
			PresentDays:    summary.PresentDays,
			HalfDays:       summary.HalfDays,
			LeaveDays:      summary.LeaveDays,
			AttendanceRate: summary.AttendanceRate,
		},
		AttendanceChart: reportservice.EmployeeAttendanceLine(atts, attendanceChartPoints),
		Attendances:     attResponses,
		Leaves:          leaveResponses,
		Warnings:        snap.Warnings,
	}, nil
}

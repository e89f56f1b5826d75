package report

import (
	"sort"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/utils"
)

// Options tune the aggregation.
type Options struct {
	HalfDayMode report.HalfDayMode
}

// Aggregate folds attendance and leave records into one summary per user id.
// A nil window takes every record. Only records inside the window create a summary,
// and records without a user id are ignored.
func Aggregate(atts []attendance.Attendance, leaves []leave.Leave, window *utils.DateRange, opts Options) map[string]report.EmployeeSummary {
	summaries := make(map[string]*report.EmployeeSummary)

	entry := func(userID, username, displayName string) *report.EmployeeSummary {
		s, ok := summaries[userID]
		if !ok {
			s = &report.EmployeeSummary{UserID: userID}
			summaries[userID] = s
		}
		if s.Username == "" {
			s.Username = username
		}
		if s.DisplayName == "" {
			s.DisplayName = displayName
		}
		return s
	}

	inWindow := func(date string) bool {
		return window == nil || window.Contains(date)
	}

	for _, a := range atts {
		if a.UserID == "" || !inWindow(a.Date) {
			continue
		}
		s := entry(a.UserID, a.Username, a.DisplayName)
		switch {
		case a.IsFullDay():
			s.PresentDays++
		case a.IsHalfDay():
			s.PresentDays += 0.5
			s.HalfDays += opts.HalfDayMode.Increment()
		}
	}

	for _, l := range leaves {
		if l.UserID == "" || !inWindow(l.Date) {
			continue
		}
		s := entry(l.UserID, l.Username, l.DisplayName)
		s.LeaveDays += l.Weight()
	}

	result := make(map[string]report.EmployeeSummary, len(summaries))
	for id, s := range summaries {
		s.AttendanceRate = Rate(s.PresentDays, s.LeaveDays)
		result[id] = *s
	}
	return result
}

// Rate is present / (present + leave) as a percentage, or 0 when both are zero.
func Rate(present, leave float64) float64 {
	total := present + leave
	if total <= 0 {
		return 0
	}
	return present / total * 100
}

// SortedSummaries orders summaries by display name, then user id.
func SortedSummaries(summaries map[string]report.EmployeeSummary) []report.EmployeeSummary {
	result := make([]report.EmployeeSummary, 0, len(summaries))
	for _, s := range summaries {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].DisplayName != result[j].DisplayName {
			return result[i].DisplayName < result[j].DisplayName
		}
		return result[i].UserID < result[j].UserID
	})
	return result
}

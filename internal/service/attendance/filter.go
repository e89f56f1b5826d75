package attendance

import (
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/utils"
)

// Filter keeps the records that satisfy every criterion, preserving input order.
func Filter(records []attendance.Attendance, criteria attendance.Criteria) []attendance.Attendance {
	result := make([]attendance.Attendance, 0, len(records))
	for _, r := range records {
		if matches(r, criteria) {
			result = append(result, r)
		}
	}
	return result
}

func matches(r attendance.Attendance, c attendance.Criteria) bool {
	if c.SearchTerm != "" && !utils.ContainsFoldAny(c.SearchTerm, r.DisplayName, r.Username) {
		return false
	}
	if c.Date != nil && !sameDay(r.Date, *c.Date) {
		return false
	}
	return c.Status.Matches(r)
}

func sameDay(recordDate, want string) bool {
	day, ok := utils.NormalizeDate(recordDate)
	if !ok {
		return false
	}
	wantDay, ok := utils.NormalizeDate(want)
	return ok && day == wantDay
}

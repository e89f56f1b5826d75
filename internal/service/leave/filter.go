package leave

import (
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/utils"
)

// Filter keeps the records that satisfy every criterion, preserving input order.
// The search term also matches the leave reason.
func Filter(records []leave.Leave, criteria leave.Criteria) []leave.Leave {
	result := make([]leave.Leave, 0, len(records))
	for _, r := range records {
		if criteria.SearchTerm != "" && !utils.ContainsFoldAny(criteria.SearchTerm, r.DisplayName, r.Username, r.Reason) {
			continue
		}
		if criteria.Date != nil && !sameDay(r.Date, *criteria.Date) {
			continue
		}
		if !criteria.Status.Matches(r) {
			continue
		}
		result = append(result, r)
	}
	return result
}

func sameDay(recordDate, want string) bool {
	day, ok := utils.NormalizeDate(recordDate)
	if !ok {
		return false
	}
	wantDay, ok := utils.NormalizeDate(want)
	return ok && day == wantDay
}

package dashboard

import (
	"context"
	"sort"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/utils"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/service/report"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/service/snapshot"
)

const (
	trendDays      = 7
	recentPerKind  = 5
	recentActivity = 8
)

// Leave activity statuses
const (
	StatusFullDayLeave = "Full Day Leave"
	StatusHalfDayLeave = "Half Day Leave"
)

type DashboardServiceImpl struct {
	loader *snapshot.Loader
	now    func() time.Time
}

func NewDashboardService(loader *snapshot.Loader) dashboard.DashboardService {
	return &DashboardServiceImpl{loader: loader, now: time.Now}
}

// Overview implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Overview(ctx context.Context) (dashboard.OverviewResponse, error) {
	snap, err := s.loader.Load(ctx, snapshot.Attendance|snapshot.Leaves, snapshot.None)
	if err != nil {
		return dashboard.OverviewResponse{}, err
	}

	today := s.now().UTC().Format(utils.DateLayout)

	employees := map[string]struct{}{}
	presentToday := 0
	for _, a := range snap.Attendance {
		if a.UserID != "" {
			employees[a.UserID] = struct{}{}
		}
		if isDay(a.Date, today) && !a.IsAbsent() {
			presentToday++
		}
	}

	onLeaveToday := 0
	for _, l := range snap.Leaves {
		if l.UserID != "" {
			employees[l.UserID] = struct{}{}
		}
		if isDay(l.Date, today) {
			onLeaveToday++
		}
	}

	var rate float64
	if len(employees) > 0 {
		rate = float64(presentToday) / float64(len(employees)) * 100
	}

	return dashboard.OverviewResponse{
		Date:           today,
		TotalEmployees: len(employees),
		PresentToday:   presentToday,
		OnLeaveToday:   onLeaveToday,
		AttendanceRate: rate,
		Trend:          report.PresenceTrend(snap.Attendance, trendDays),
		RecentActivity: RecentActivity(snap.Attendance, snap.Leaves),
		Warnings:       snap.Warnings,
	}, nil
}

func isDay(date, day string) bool {
	normalized, ok := utils.NormalizeDate(date)
	return ok && normalized == day
}

type timedActivity struct {
	dashboard.Activity
	created time.Time
}

// RecentActivity merges the newest attendance and leave records, newest first.
func RecentActivity(atts []attendance.Attendance, leaves []leave.Leave) []dashboard.Activity {
	merged := make([]timedActivity, 0, 2*recentPerKind)

	for _, a := range newest(atts, func(a attendance.Attendance) time.Time { return a.CreatedAt }) {
		merged = append(merged, timedActivity{created: a.CreatedAt, Activity: dashboard.Activity{
			Type:        dashboard.ActivityAttendance,
			UserID:      a.UserID,
			Username:    a.Username,
			DisplayName: a.DisplayName,
			Date:        a.Date,
			Status:      a.SummaryStatus(),
			CreatedAt:   formatTime(a.CreatedAt),
		}})
	}

	for _, l := range newest(leaves, func(l leave.Leave) time.Time { return l.CreatedAt }) {
		status := StatusHalfDayLeave
		if l.IsFullDay() {
			status = StatusFullDayLeave
		}
		var reason *string
		if l.Reason != "" {
			r := l.Reason
			reason = &r
		}
		merged = append(merged, timedActivity{created: l.CreatedAt, Activity: dashboard.Activity{
			Type:        dashboard.ActivityLeave,
			UserID:      l.UserID,
			Username:    l.Username,
			DisplayName: l.DisplayName,
			Date:        l.Date,
			Status:      status,
			Reason:      reason,
			CreatedAt:   formatTime(l.CreatedAt),
		}})
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].created.After(merged[j].created)
	})
	if len(merged) > recentActivity {
		merged = merged[:recentActivity]
	}

	result := make([]dashboard.Activity, 0, len(merged))
	for _, m := range merged {
		result = append(result, m.Activity)
	}
	return result
}

// newest returns up to recentPerKind records with the latest creation time, newest first.
func newest[T any](records []T, createdAt func(T) time.Time) []T {
	sorted := append([]T(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return createdAt(sorted[i]).After(createdAt(sorted[j]))
	})
	if len(sorted) > recentPerKind {
		sorted = sorted[:recentPerKind]
	}
	return sorted
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

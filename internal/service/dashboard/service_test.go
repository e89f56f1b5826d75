package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/fixtures"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/service/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(day string) (*DashboardServiceImpl, *fixtures.AttendanceStore, *fixtures.LeaveStore) {
	data := fixtures.DefaultDataset()
	atts := fixtures.NewAttendanceStore(data.Attendance)
	leaves := fixtures.NewLeaveStore(data.Leaves)
	now, _ := time.Parse("2006-01-02", day)

	svc := &DashboardServiceImpl{
		loader: snapshot.NewLoader(atts, leaves, &fixtures.Directory{}),
		now:    func() time.Time { return now.Add(10 * time.Hour) },
	}
	return svc, atts, leaves
}

func TestDashboardService_Overview(t *testing.T) {
	svc, _, _ := newTestService("2024-03-05")

	resp, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2024-03-05", resp.Date)
	assert.Equal(t, 3, resp.TotalEmployees)
	assert.Equal(t, 2, resp.PresentToday)
	assert.Equal(t, 1, resp.OnLeaveToday)
	assert.InDelta(t, 66.667, resp.AttendanceRate, 0.001)
	assert.Len(t, resp.Trend, 3)
	assert.Len(t, resp.RecentActivity, 8)
	assert.Empty(t, resp.Warnings)
}

func TestDashboardService_Overview_TodayIsUTCDate(t *testing.T) {
	svc, _, _ := newTestService("2024-03-05")
	jakarta := time.FixedZone("WIB", 7*60*60)
	svc.now = func() time.Time { return time.Date(2024, time.March, 6, 3, 0, 0, 0, jakarta) }

	resp, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2024-03-05", resp.Date)
	assert.Equal(t, 2, resp.PresentToday)
	assert.Equal(t, 1, resp.OnLeaveToday)
}

func TestDashboardService_Overview_AbsentRecordsAreNotPresent(t *testing.T) {
	svc, atts, _ := newTestService("2024-03-08")
	atts.Records = append(atts.Records, attendance.Attendance{ID: "z", UserID: "u-alice", Date: "2024-03-08"})

	resp, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, resp.PresentToday)
	assert.Equal(t, 0.0, resp.AttendanceRate)
}

func TestDashboardService_Overview_NoData(t *testing.T) {
	svc, atts, leaves := newTestService("2024-03-05")
	atts.Records = nil
	leaves.Records = nil

	resp, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, resp.TotalEmployees)
	assert.Equal(t, 0.0, resp.AttendanceRate)
	assert.Empty(t, resp.Trend)
	assert.Empty(t, resp.RecentActivity)
}

func TestDashboardService_Overview_WarnsOnFailure(t *testing.T) {
	svc, atts, _ := newTestService("2024-03-05")
	atts.Err = errors.New("timeout")

	resp, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Failed to load attendance records"}, resp.Warnings)
	assert.Equal(t, 2, resp.TotalEmployees)
	assert.Equal(t, 1, resp.OnLeaveToday)
}

func TestRecentActivity_Order(t *testing.T) {
	data := fixtures.DefaultDataset()

	got := RecentActivity(data.Attendance, data.Leaves)

	require.Len(t, got, 8)
	assert.Equal(t, dashboard.ActivityAttendance, got[0].Type)
	assert.Equal(t, "2024-03-06", got[0].Date)
	assert.Equal(t, "Full Day", got[0].Status)

	last := got[len(got)-1]
	assert.Equal(t, dashboard.ActivityLeave, last.Type)
	assert.Equal(t, StatusFullDayLeave, last.Status)
	require.NotNil(t, last.Reason)
	assert.Equal(t, "Family event", *last.Reason)
}

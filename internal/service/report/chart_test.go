package report

import (
	"testing"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceStatusPie(t *testing.T) {
	records := append(fixtures.DefaultDataset().Attendance, attendance.Attendance{UserID: "x", Date: "2024-03-04"})

	assert.Equal(t, []report.PieSlice{
		{Name: SliceFullDay, Value: 3},
		{Name: SliceHalfDay, Value: 2},
		{Name: SliceAbsent, Value: 1},
	}, AttendanceStatusPie(records))
}

func TestAttendanceStatusPie_DropsEmptySlices(t *testing.T) {
	assert.Equal(t, []report.PieSlice{{Name: SliceFullDay, Value: 2}},
		AttendanceStatusPie(fixtures.DefaultDataset().Attendance[:2]))
	assert.Empty(t, AttendanceStatusPie(nil))
}

func TestLeaveDistributionPie_TopFive(t *testing.T) {
	var leaves []leave.Leave
	for i, name := range []string{"F", "E", "D", "C", "B", "A"} {
		leaves = append(leaves, leave.Leave{UserID: name, DisplayName: name, HalfDay: leave.HalfDayFull})
		if i < 2 {
			leaves = append(leaves, leave.Leave{UserID: name, DisplayName: name, HalfDay: leave.HalfDayHalf})
		}
	}

	got := LeaveDistributionPie(leaves)

	require.Len(t, got, 5)
	assert.Equal(t, report.PieSlice{Name: "E", Value: 1.5}, got[0])
	assert.Equal(t, report.PieSlice{Name: "F", Value: 1.5}, got[1])
	assert.Equal(t, report.PieSlice{Name: "A", Value: 1}, got[2])
	assert.Equal(t, "C", got[4].Name)
}

func TestDailyPresenceLine_ZeroFilled(t *testing.T) {
	window := mustRange(t, "2024-03-04", "2024-03-07")

	got := DailyPresenceLine(fixtures.DefaultDataset().Attendance, *window)

	assert.Equal(t, []report.LinePoint{
		{Date: "2024-03-04", Label: "Mar 4", Value: 1.5},
		{Date: "2024-03-05", Label: "Mar 5", Value: 1.5},
		{Date: "2024-03-06", Label: "Mar 6", Value: 1},
		{Date: "2024-03-07", Label: "Mar 7", Value: 0},
	}, got)
}

func TestPresenceTrend_LastN(t *testing.T) {
	got := PresenceTrend(fixtures.DefaultDataset().Attendance, 2)

	require.Len(t, got, 2)
	assert.Equal(t, "2024-03-05", got[0].Date)
	assert.Equal(t, "2024-03-06", got[1].Date)
}

func TestEmployeeAttendanceLine(t *testing.T) {
	records := []attendance.Attendance{
		{Date: "2024-03-06", FirstHalfPresent: true},
		{Date: "2024-03-04", FirstHalfPresent: true, SecondHalfPresent: true},
		{Date: "2024-03-05"},
	}

	got := EmployeeAttendanceLine(records, 14)

	assert.Equal(t, []report.LinePoint{
		{Date: "2024-03-04", Label: "Mar 4", Value: 1},
		{Date: "2024-03-05", Label: "Mar 5", Value: 0},
		{Date: "2024-03-06", Label: "Mar 6", Value: 0.5},
	}, got)
}

func TestAxisLabel(t *testing.T) {
	assert.Equal(t, "Dec 31", AxisLabel("2024-12-31"))
	assert.Equal(t, "someday", AxisLabel("someday"))
}

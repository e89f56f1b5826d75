package employee

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/fixtures"
	reportservice "github.com/cmlabs-hris/hris-dashboard-go/internal/service/report"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/service/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	service   *EmployeeServiceImpl
	atts      *fixtures.AttendanceStore
	leaves    *fixtures.LeaveStore
	directory *fixtures.Directory
}

func newTestEnv(day string) testEnv {
	data := fixtures.DefaultDataset()
	env := testEnv{
		atts:      fixtures.NewAttendanceStore(data.Attendance),
		leaves:    fixtures.NewLeaveStore(data.Leaves),
		directory: &fixtures.Directory{Employees: data.Employees},
	}
	now, _ := time.Parse("2006-01-02", day)
	env.service = &EmployeeServiceImpl{
		loader: snapshot.NewLoader(env.atts, env.leaves, env.directory),
		opts:   reportservice.Options{HalfDayMode: report.HalfDayWeighted},
		now:    func() time.Time { return now },
	}
	return env
}

func TestEmployeeService_List(t *testing.T) {
	env := newTestEnv("2024-03-05")

	resp, err := env.service.List(context.Background(), employee.EmployeeFilter{})
	require.NoError(t, err)
	require.Len(t, resp.Employees, 3)

	alice := resp.Employees[0]
	assert.Equal(t, "Alice Anders", alice.DisplayName)
	assert.Equal(t, 2, alice.AttendanceCount)
	assert.Equal(t, employee.PresencePresent, alice.Status)
	require.NotNil(t, alice.Email)
	assert.Equal(t, "alice@example.com", *alice.Email)
	require.NotNil(t, alice.LastSeen)
	assert.Equal(t, "2024-03-05", *alice.LastSeen)

	bob := resp.Employees[1]
	assert.Equal(t, 3, bob.AttendanceCount)
	assert.Equal(t, 1, bob.LeaveCount)
	assert.Equal(t, employee.PresenceAbsent, bob.Status, "a half day is not counted as present")
	assert.Equal(t, "2024-03-06", *bob.LastSeen)

	carol := resp.Employees[2]
	assert.Equal(t, employee.PresenceOnLeave, carol.Status)
	assert.Equal(t, "2024-03-05", *carol.LastSeen)
}

func TestEmployeeService_List_TodayIsUTCDate(t *testing.T) {
	env := newTestEnv("2024-03-05")
	jakarta := time.FixedZone("WIB", 7*60*60)
	env.service.now = func() time.Time { return time.Date(2024, time.March, 6, 3, 0, 0, 0, jakarta) }

	resp, err := env.service.List(context.Background(), employee.EmployeeFilter{})
	require.NoError(t, err)
	require.Len(t, resp.Employees, 3)

	assert.Equal(t, employee.PresencePresent, resp.Employees[0].Status)
	assert.Equal(t, employee.PresenceOnLeave, resp.Employees[2].Status)
}

func TestEmployeeService_List_LeaveWinsOverPresence(t *testing.T) {
	env := newTestEnv("2024-03-07")
	env.atts.Records = append(env.atts.Records, fixtures.Attendance("x", fixtures.DefaultDataset().Employees[1], "2024-03-07", true, true, time.Time{}))

	resp, err := env.service.List(context.Background(), employee.EmployeeFilter{Search: "BOB"})
	require.NoError(t, err)
	require.Len(t, resp.Employees, 1)
	assert.Equal(t, employee.PresenceOnLeave, resp.Employees[0].Status)
}

func TestEmployeeService_List_DirectoryOptional(t *testing.T) {
	env := newTestEnv("2024-03-05")
	env.directory.Err = errors.New("forbidden")

	resp, err := env.service.List(context.Background(), employee.EmployeeFilter{})
	require.NoError(t, err)

	assert.Len(t, resp.Employees, 3)
	assert.Nil(t, resp.Employees[0].Email)
	assert.Equal(t, []string{"Failed to load employee records"}, resp.Warnings)
}

func TestEmployeeService_Get(t *testing.T) {
	env := newTestEnv("2024-03-08")

	resp, err := env.service.Get(context.Background(), employee.GetEmployeeRequest{UserID: "u-bob"})
	require.NoError(t, err)

	assert.Equal(t, "Bob Brown", resp.Employee.DisplayName)
	assert.Equal(t, 4, resp.Stats.TotalDays)
	assert.Equal(t, 2.0, resp.Stats.PresentDays)
	assert.Equal(t, 1.0, resp.Stats.HalfDays)
	assert.Equal(t, 1.0, resp.Stats.LeaveDays)
	assert.InDelta(t, 66.667, resp.Stats.AttendanceRate, 0.001)
	require.Len(t, resp.Attendances, 3)
	assert.Equal(t, "2024-03-06", resp.Attendances[0].Date)
	require.Len(t, resp.AttendanceChart, 3)
	assert.Equal(t, "2024-03-04", resp.AttendanceChart[0].Date)
	assert.Equal(t, 0.5, resp.AttendanceChart[0].Value)
}

func TestEmployeeService_Get_NoRecords(t *testing.T) {
	env := newTestEnv("2024-03-08")
	env.directory.Employees = append(env.directory.Employees, employee.Employee{UserID: "u-dan", Username: "dan"})

	resp, err := env.service.Get(context.Background(), employee.GetEmployeeRequest{UserID: "u-dan"})
	require.NoError(t, err)

	assert.Equal(t, employee.EmployeeStats{}, resp.Stats)
	assert.Empty(t, resp.Attendances)
	assert.Empty(t, resp.AttendanceChart)
}

func TestEmployeeService_Get_NotFound(t *testing.T) {
	env := newTestEnv("2024-03-08")

	_, err := env.service.Get(context.Background(), employee.GetEmployeeRequest{UserID: "ghost"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_Get_DirectoryRequired(t *testing.T) {
	env := newTestEnv("2024-03-08")
	env.directory.Err = errors.New("forbidden")

	_, err := env.service.Get(context.Background(), employee.GetEmployeeRequest{UserID: "u-bob"})
	assert.ErrorContains(t, err, "forbidden")
}

package attendance

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/audit"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/fixtures"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	service *AttendanceServiceImpl
	store   *fixtures.AttendanceStore
	auditor *fixtures.Auditor
}

func newTestEnv() testEnv {
	data := fixtures.DefaultDataset()
	store := fixtures.NewAttendanceStore(data.Attendance)
	auditor := &fixtures.Auditor{}
	svc := &AttendanceServiceImpl{
		AttendanceRepository: store,
		EmployeeRepository:   &fixtures.Directory{Employees: data.Employees},
		verifier:             fixtures.Verifier{Password: "s3cret"},
		auditor:              auditor,
		now:                  func() time.Time { return time.Date(2024, 3, 8, 12, 0, 0, 0, time.UTC) },
	}
	return testEnv{service: svc, store: store, auditor: auditor}
}

func ids(records []attendance.Attendance) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

// ===== FILTER TESTS =====

func TestFilter(t *testing.T) {
	records := fixtures.DefaultDataset().Attendance

	cases := []struct {
		name     string
		criteria attendance.Criteria
		want     []string
	}{
		{"no criteria", attendance.Criteria{Status: attendance.StatusFilterAll}, []string{"a1", "a2", "a3", "a4", "a5"}},
		{"search display name", attendance.Criteria{SearchTerm: "ALICE"}, []string{"a1", "a2"}},
		{"search username", attendance.Criteria{SearchTerm: "bo"}, []string{"a3", "a4", "a5"}},
		{"date", attendance.Criteria{Date: fixtures.StrPtr("2024-03-04")}, []string{"a1", "a3"}},
		{"full", attendance.Criteria{Status: attendance.StatusFilterFull}, []string{"a1", "a2", "a5"}},
		{"half", attendance.Criteria{Status: attendance.StatusFilterHalf}, []string{"a3", "a4"}},
		{"first half", attendance.Criteria{Status: attendance.StatusFilterFirstHalf}, []string{"a1", "a2", "a3", "a5"}},
		{"second half", attendance.Criteria{Status: attendance.StatusFilterSecondHalf}, []string{"a1", "a2", "a4", "a5"}},
		{"absent", attendance.Criteria{Status: attendance.StatusFilterAbsent}, []string{}},
		{"combined", attendance.Criteria{SearchTerm: "bob", Date: fixtures.StrPtr("2024-03-05"), Status: attendance.StatusFilterHalf}, []string{"a4"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, ids(Filter(records, c.criteria)))
		})
	}
}

func TestFilter_IsSubsetAndNarrowing(t *testing.T) {
	records := fixtures.DefaultDataset().Attendance

	broad := Filter(records, attendance.Criteria{SearchTerm: "b"})
	narrow := Filter(records, attendance.Criteria{SearchTerm: "b", Status: attendance.StatusFilterFull})

	assert.LessOrEqual(t, len(broad), len(records))
	assert.LessOrEqual(t, len(narrow), len(broad))
	for _, r := range narrow {
		assert.Contains(t, ids(broad), r.ID)
	}
}

func TestFilter_TimestampDates(t *testing.T) {
	records := []attendance.Attendance{
		{ID: "x", Date: "2024-03-04T00:00:00.000Z", FirstHalfPresent: true},
		{ID: "y", Date: "not a date", FirstHalfPresent: true},
	}
	got := Filter(records, attendance.Criteria{Date: fixtures.StrPtr("2024-03-04")})
	assert.Equal(t, []string{"x"}, ids(got))
}

// ===== SERVICE TESTS =====

func TestAttendanceService_List_Paginates(t *testing.T) {
	env := newTestEnv()

	resp, err := env.service.List(context.Background(), attendance.AttendanceFilter{Page: 2, Limit: 2})
	require.NoError(t, err)

	assert.Equal(t, int64(5), resp.TotalCount)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, "3-4 of 5", resp.Showing)
	require.Len(t, resp.Attendances, 2)
	assert.Equal(t, "a3", resp.Attendances[0].ID)
	assert.Equal(t, attendance.StatusFirstHalf, resp.Attendances[0].Status)
	assert.Equal(t, attendance.StatusHalfDay, resp.Attendances[0].SummaryStatus)
}

func TestAttendanceService_List_InvalidFilter(t *testing.T) {
	env := newTestEnv()

	_, err := env.service.List(context.Background(), attendance.AttendanceFilter{Criteria: attendance.Criteria{Status: "late"}})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "status")
}

func TestAttendanceService_List_UpstreamError(t *testing.T) {
	env := newTestEnv()
	env.store.Err = errors.New("boom")

	_, err := env.service.List(context.Background(), attendance.AttendanceFilter{})
	assert.ErrorContains(t, err, "boom")
}

func TestAttendanceService_Create_ResolvesEmployee(t *testing.T) {
	env := newTestEnv()

	resp, err := env.service.Create(context.Background(), attendance.CreateAttendanceRequest{
		UserID:           "u-carol",
		Date:             "2024-03-08",
		FirstHalfPresent: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "new-a1", resp.ID)
	assert.Equal(t, "carol", resp.Username)
	assert.Equal(t, "Carol Chen", resp.DisplayName)
	assert.Equal(t, attendance.StatusFirstHalf, resp.Status)
	assert.Equal(t, []fixtures.RecordedAction{{Action: audit.ActionCreate, Resource: audit.ResourceAttendance, RecordID: "new-a1"}}, env.auditor.Actions)
}

func TestAttendanceService_Create_UnknownEmployee(t *testing.T) {
	env := newTestEnv()

	_, err := env.service.Create(context.Background(), attendance.CreateAttendanceRequest{
		UserID: "u-nobody", Date: "2024-03-08", FirstHalfPresent: true,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.Empty(t, env.auditor.Actions)
}

func TestAttendanceService_Create_BothHalvesAbsent(t *testing.T) {
	env := newTestEnv()

	_, err := env.service.Create(context.Background(), attendance.CreateAttendanceRequest{UserID: "u-bob", Date: "2024-03-08"})
	assert.ErrorIs(t, err, attendance.ErrBothHalvesAbsent)
	assert.NotContains(t, env.store.Calls, "create")
}

func TestAttendanceService_Update(t *testing.T) {
	env := newTestEnv()

	resp, err := env.service.Update(context.Background(), attendance.UpdateAttendanceRequest{
		ID:                "a3",
		SecondHalfPresent: fixtures.BoolPtr(true),
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, attendance.StatusFullDay, resp.Status)
}

func TestAttendanceService_Update_NotFound(t *testing.T) {
	env := newTestEnv()

	_, err := env.service.Update(context.Background(), attendance.UpdateAttendanceRequest{
		ID: "missing", Note: fixtures.StrPtr("x"),
	})
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestAttendanceService_Delete_WrongPasswordSkipsUpstream(t *testing.T) {
	env := newTestEnv()

	err := env.service.Delete(context.Background(), attendance.DeleteAttendanceRequest{ID: "a1", Password: "guess"})

	assert.ErrorIs(t, err, auth.ErrInvalidAdminPassword)
	assert.NotContains(t, env.store.Calls, "delete")
	assert.Len(t, env.store.Records, 5)
}

func TestAttendanceService_Delete_EmptyPassword(t *testing.T) {
	env := newTestEnv()

	err := env.service.Delete(context.Background(), attendance.DeleteAttendanceRequest{ID: "a1"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Empty(t, env.store.Calls)
}

func TestAttendanceService_Delete_Success(t *testing.T) {
	env := newTestEnv()

	err := env.service.Delete(context.Background(), attendance.DeleteAttendanceRequest{ID: "a1", Password: "s3cret"})
	require.NoError(t, err)

	assert.Len(t, env.store.Records, 4)
	assert.Equal(t, audit.ActionDelete, env.auditor.Actions[0].Action)
}

func TestAttendanceService_Export_CSV(t *testing.T) {
	env := newTestEnv()

	file, err := env.service.Export(context.Background(), attendance.AttendanceFilter{
		Criteria: attendance.Criteria{SearchTerm: "alice"},
	})
	require.NoError(t, err)

	assert.Equal(t, "attendance_2024-03-08.csv", file.FileName)
	lines := strings.Split(string(file.Content), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Name,Username,Date,Time,Status,First Half,Second Half", lines[0])
	assert.Equal(t, "Alice Anders,alice,2024-03-04,08:00,Full Day,Present,Present", lines[1])
}

func TestAttendanceService_Export_DateInFileName(t *testing.T) {
	env := newTestEnv()

	file, err := env.service.Export(context.Background(), attendance.AttendanceFilter{
		Criteria: attendance.Criteria{Date: fixtures.StrPtr("2024-03-05")},
		Format:   "xlsx",
	})
	require.NoError(t, err)
	assert.Equal(t, "attendance_2024-03-05.xlsx", file.FileName)
	assert.NotEmpty(t, file.Content)
}

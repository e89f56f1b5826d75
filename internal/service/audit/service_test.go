package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/audit"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/sse"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryAuditRepo struct {
	entries   []audit.Entry
	createErr error
	filters   []audit.AuditFilter
}

func (m *memoryAuditRepo) Create(ctx context.Context, entry audit.Entry) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *memoryAuditRepo) List(ctx context.Context, filter audit.AuditFilter) ([]audit.Entry, int64, error) {
	m.filters = append(m.filters, filter)
	return m.entries, int64(len(m.entries)) + 40, nil
}

var fixedNow = time.Date(2024, 3, 8, 12, 0, 0, 0, time.UTC)

func newTestService(repo *memoryAuditRepo) *AuditServiceImpl {
	return &AuditServiceImpl{AuditRepository: repo, now: func() time.Time { return fixedNow }}
}

func sessionContext(t *testing.T, email string) context.Context {
	t.Helper()
	svc := jwt.NewJWTService("secret", "1h", "24h", false)
	token, _, err := svc.GenerateAccessToken(email, "")
	require.NoError(t, err)
	decoded, err := jwtauth.VerifyToken(svc.JWTAuth(), token)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), decoded, nil)
}

func TestRecord_UsesSessionEmail(t *testing.T) {
	repo := &memoryAuditRepo{}
	svc := newTestService(repo)

	svc.Record(sessionContext(t, "hr@example.com"), audit.ActionDelete, audit.ResourceLeave, "l1")

	require.Len(t, repo.entries, 1)
	entry := repo.entries[0]
	assert.Equal(t, "hr@example.com", entry.ActorEmail)
	assert.Equal(t, audit.ActionDelete, entry.Action)
	assert.Equal(t, audit.ResourceLeave, entry.Resource)
	assert.Equal(t, "l1", entry.RecordID)
	assert.Equal(t, fixedNow, entry.CreatedAt)
	assert.Len(t, entry.ID, 36)
}

func TestRecord_UnknownActorWithoutSession(t *testing.T) {
	repo := &memoryAuditRepo{}
	svc := newTestService(repo)

	svc.Record(context.Background(), audit.ActionCreate, audit.ResourceAttendance, "a1")

	require.Len(t, repo.entries, 1)
	assert.Equal(t, "unknown", repo.entries[0].ActorEmail)
}

func TestRecord_SurvivesCancelledContextAndStoreFailure(t *testing.T) {
	repo := &memoryAuditRepo{}
	svc := newTestService(repo)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	svc.Record(ctx, audit.ActionCreate, audit.ResourceAttendance, "a1")
	assert.Len(t, repo.entries, 1)

	repo.createErr = errors.New("db down")
	assert.NotPanics(t, func() {
		svc.Record(context.Background(), audit.ActionCreate, audit.ResourceAttendance, "a2")
	})
}

func TestList_DefaultsAndPages(t *testing.T) {
	repo := &memoryAuditRepo{}
	svc := newTestService(repo)

	resp, err := svc.List(context.Background(), audit.AuditFilter{})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 20, resp.Limit)
	assert.EqualValues(t, 40, resp.TotalCount)
	assert.Equal(t, 2, resp.TotalPages)
	assert.Empty(t, resp.Entries)
}

func TestList_RejectsUnknownResource(t *testing.T) {
	repo := &memoryAuditRepo{}
	svc := newTestService(repo)
	resource := "payroll"

	_, err := svc.List(context.Background(), audit.AuditFilter{Resource: &resource, Limit: 500})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "resource")
	assert.Contains(t, errs.ToMap(), "limit")
	assert.Empty(t, repo.filters)
}

func TestChangeFeed_RecordsThenPublishes(t *testing.T) {
	repo := &memoryAuditRepo{}
	hub := sse.NewHub()
	events, cleanup := hub.Subscribe()
	defer cleanup()

	feed := NewChangeFeed(newTestService(repo), hub)
	feed.Record(context.Background(), audit.ActionUpdate, audit.ResourceAttendance, "a3")

	require.Len(t, repo.entries, 1)
	event := <-events
	assert.Equal(t, EventRecordChanged, event.Name)
	change, ok := event.Data.(audit.ChangeEvent)
	require.True(t, ok)
	assert.Equal(t, audit.ActionUpdate, change.Action)
	assert.Equal(t, audit.ResourceAttendance, change.Resource)
	assert.Equal(t, "a3", change.RecordID)
}

func TestChangeFeed_ListDelegates(t *testing.T) {
	repo := &memoryAuditRepo{}
	feed := NewChangeFeed(newTestService(repo), sse.NewHub())

	_, err := feed.List(context.Background(), audit.AuditFilter{})

	require.NoError(t, err)
	assert.Len(t, repo.filters, 1)
}

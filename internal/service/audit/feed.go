package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/audit"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/sse"
)

// EventRecordChanged names the stream event published after every recorded mutation.
const EventRecordChanged = "record.changed"

// ChangeFeed records mutations through the wrapped service and announces them on the hub.
type ChangeFeed struct {
	audit.AuditService
	hub *sse.Hub
	now func() time.Time
}

func NewChangeFeed(inner audit.AuditService, hub *sse.Hub) audit.AuditService {
	return &ChangeFeed{AuditService: inner, hub: hub, now: time.Now}
}

// Record implements audit.AuditService.
func (f *ChangeFeed) Record(ctx context.Context, action, resource, recordID string) {
	f.AuditService.Record(ctx, action, resource, recordID)

	delivered := f.hub.Publish(sse.Event{
		Name: EventRecordChanged,
		Data: audit.ChangeEvent{
			Action:   action,
			Resource: resource,
			RecordID: recordID,
			At:       f.now().UTC().Format(time.RFC3339),
		},
	})
	slog.Debug("Change published", "resource", resource, "action", action, "subscribers", delivered)
}

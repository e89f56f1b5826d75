package audit

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/audit"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/jwt"
	"github.com/google/uuid"
)

const unknownActor = "unknown"

type AuditServiceImpl struct {
	audit.AuditRepository
	now func() time.Time
}

func NewAuditService(auditRepository audit.AuditRepository) audit.AuditService {
	return &AuditServiceImpl{AuditRepository: auditRepository, now: time.Now}
}

// Record implements audit.AuditService.
func (s *AuditServiceImpl) Record(ctx context.Context, action, resource, recordID string) {
	actor, err := jwt.EmailFromContext(ctx)
	if err != nil {
		actor = unknownActor
	}

	id, err := uuid.NewV7()
	if err != nil {
		slog.Warn("Failed to generate audit id", "error", err)
		return
	}

	entry := audit.Entry{
		ID:         id.String(),
		ActorEmail: actor,
		Action:     action,
		Resource:   resource,
		RecordID:   recordID,
		CreatedAt:  s.now().UTC(),
	}

	// A lost audit row never fails the request.
	if err := s.AuditRepository.Create(context.WithoutCancel(ctx), entry); err != nil {
		slog.Warn("Failed to record audit entry",
			"error", err,
			"action", action,
			"resource", resource,
			"record_id", recordID,
		)
	}
}

// List implements audit.AuditService.
func (s *AuditServiceImpl) List(ctx context.Context, filter audit.AuditFilter) (audit.ListAuditResponse, error) {
	if err := filter.Validate(); err != nil {
		return audit.ListAuditResponse{}, err
	}

	entries, total, err := s.AuditRepository.List(ctx, filter)
	if err != nil {
		return audit.ListAuditResponse{}, err
	}

	responses := make([]audit.EntryResponse, 0, len(entries))
	for _, e := range entries {
		responses = append(responses, audit.ToResponse(e))
	}

	return audit.ListAuditResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Entries:    responses,
	}, nil
}

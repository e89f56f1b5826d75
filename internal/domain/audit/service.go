package audit

import "context"

type AuditService interface {
	// Record stores an entry for the current session's user. Failures are logged, never returned.
	Record(ctx context.Context, action, resource, recordID string)

	List(ctx context.Context, filter AuditFilter) (ListAuditResponse, error)
}

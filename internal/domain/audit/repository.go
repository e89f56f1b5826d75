package audit

import "context"

type AuditRepository interface {
	Create(ctx context.Context, entry Entry) error

	// List returns the newest entries first along with the total count
	List(ctx context.Context, filter AuditFilter) ([]Entry, int64, error)
}

package leave

import (
	"context"
)

// ListQuery narrows an upstream list call. Empty fields are not sent.
type ListQuery struct {
	Date   string
	UserID string
}

// Patch carries the mutable fields of an update; nil means unchanged.
type Patch struct {
	Date    *string
	HalfDay *string
	Reason  *string
}

// LeaveRepository is backed by the remote HR API.
type LeaveRepository interface {
	List(ctx context.Context, query ListQuery) ([]Leave, error)
	Create(ctx context.Context, leave Leave) (*Leave, error)
	Update(ctx context.Context, id string, patch Patch) (*Leave, error)
	Delete(ctx context.Context, id string) error
}

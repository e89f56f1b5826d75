package attendance

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
	Date              *string
	FirstHalfPresent  *bool
	SecondHalfPresent *bool
	Note              *string
}

// AttendanceRepository is backed by the remote HR API, which owns persistence.
type AttendanceRepository interface {
	// List returns every record matching the query, following upstream pagination.
	List(ctx context.Context, query ListQuery) ([]Attendance, error)

	// Create returns the stored record, or nil when the upstream response carried none.
	Create(ctx context.Context, attendance Attendance) (*Attendance, error)

	// Update returns the updated record, or nil when the upstream response carried none.
	Update(ctx context.Context, id string, patch Patch) (*Attendance, error)

	Delete(ctx context.Context, id string) error
}

package audit

import "time"

// Actions
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Resources
const (
	ResourceAttendance = "attendance"
	ResourceLeave      = "leave"
)

// Entry records one mutation proxied to the HR API.
type Entry struct {
	ID         string
	ActorEmail string
	Action     string
	Resource   string
	RecordID   string
	CreatedAt  time.Time
}

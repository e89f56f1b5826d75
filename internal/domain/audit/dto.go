package audit

import (
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/validator"
)

// MaxPage bounds the page number so the SQL offset stays in range.
const MaxPage = 1_000_000

type AuditFilter struct {
	Resource *string `json:"resource,omitempty"`
	Action   *string `json:"action,omitempty"`
	Actor    *string `json:"actor,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *AuditFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{Field: "page", Message: "page must be a positive number"})
	}
	if f.Page == 0 {
		f.Page = 1
	}
	if f.Page > MaxPage {
		errs = append(errs, validator.ValidationError{Field: "page", Message: "page must not exceed 1000000"})
	}
	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{Field: "limit", Message: "limit must be a positive number"})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{Field: "limit", Message: "limit must not exceed 100"})
	}

	if f.Resource != nil && !validator.IsInSlice(*f.Resource, []string{ResourceAttendance, ResourceLeave}) {
		errs = append(errs, validator.ValidationError{Field: "resource", Message: "resource must be one of: attendance, leave"})
	}
	if f.Action != nil && !validator.IsInSlice(*f.Action, []string{ActionCreate, ActionUpdate, ActionDelete}) {
		errs = append(errs, validator.ValidationError{Field: "action", Message: "action must be one of: create, update, delete"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EntryResponse struct {
	ID         string `json:"id"`
	ActorEmail string `json:"actor_email"`
	Action     string `json:"action"`
	Resource   string `json:"resource"`
	RecordID   string `json:"record_id"`
	CreatedAt  string `json:"created_at"`
}

type ListAuditResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
	Entries    []EntryResponse `json:"entries"`
}

func ToResponse(e Entry) EntryResponse {
	return EntryResponse{
		ID:         e.ID,
		ActorEmail: e.ActorEmail,
		Action:     e.Action,
		Resource:   e.Resource,
		RecordID:   e.RecordID,
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
	}
}

// ChangeEvent is pushed to live dashboards after a mutation so they can refetch.
type ChangeEvent struct {
	Action   string `json:"action"`
	Resource string `json:"resource"`
	RecordID string `json:"record_id"`
	At       string `json:"at"`
}

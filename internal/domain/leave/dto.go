package leave

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/validator"
)

// StatusFilter selects leave records by classification.
type StatusFilter string

const (
	StatusFilterAll  StatusFilter = "all"
	StatusFilterFull StatusFilter = "full"
	StatusFilterHalf StatusFilter = "half"
)

var StatusFilters = []string{string(StatusFilterAll), string(StatusFilterFull), string(StatusFilterHalf)}

// Matches reports whether the record satisfies the variant. "half" matches every non-full record.
func (f StatusFilter) Matches(l Leave) bool {
	switch f {
	case StatusFilterFull:
		return l.IsFullDay()
	case StatusFilterHalf:
		return !l.IsFullDay()
	default:
		return true
	}
}

// Criteria are the in-memory filter predicates, combined with AND.
type Criteria struct {
	SearchTerm string
	Date       *string
	Status     StatusFilter
}

// ========================================
// LIST / EXPORT
// ========================================

type LeaveFilter struct {
	Criteria

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Export only: csv or xlsx
	Format string `json:"format"`
}

func (f *LeaveFilter) Validate() error {
	var errs validator.ValidationErrors

	f.SearchTerm = strings.TrimSpace(f.SearchTerm)

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Status == "" {
		f.Status = StatusFilterAll
	}
	if !validator.IsInSlice(string(f.Status), StatusFilters) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(StatusFilters, ", "),
		})
	}

	if f.Date != nil && *f.Date == "" {
		f.Date = nil
	}
	if f.Date != nil {
		if _, valid := validator.IsValidDate(*f.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.Format == "" {
		f.Format = "csv"
	}
	if f.Format != "csv" && f.Format != "xlsx" {
		errs = append(errs, validator.ValidationError{
			Field:   "format",
			Message: "format must be one of: csv, xlsx",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Date        string `json:"date"`
	HalfDay     string `json:"half_day"`
	LeaveType   string `json:"leave_type"`
	Reason      string `json:"reason"`
	CreatedAt   string `json:"created_at,omitempty"`
}

type ListLeaveResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
	Showing    string          `json:"showing"`
	Leaves     []LeaveResponse `json:"leaves"`
}

// ========================================
// MUTATIONS
// ========================================

type CreateLeaveRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	Date    string `json:"date" validate:"required,date"`
	HalfDay string `json:"half_day" validate:"required,oneof=full first second half"`
	Reason  string `json:"reason" validate:"max=1000"`
}

func (r *CreateLeaveRequest) Validate() error {
	r.UserID = strings.TrimSpace(r.UserID)
	r.Date = strings.TrimSpace(r.Date)
	r.HalfDay = strings.ToLower(strings.TrimSpace(r.HalfDay))
	r.Reason = strings.TrimSpace(r.Reason)

	return validator.Struct(r)
}

type UpdateLeaveRequest struct {
	ID      string  `json:"-"`
	Date    *string `json:"date,omitempty" validate:"omitempty,date"`
	HalfDay *string `json:"half_day,omitempty" validate:"omitempty,oneof=full first second half"`
	Reason  *string `json:"reason,omitempty" validate:"omitempty,max=1000"`
}

func (r *UpdateLeaveRequest) Validate() error {
	if validator.IsEmpty(r.ID) {
		return validator.ValidationErrors{{Field: "id", Message: "id is required"}}
	}
	if r.Date == nil && r.HalfDay == nil && r.Reason == nil {
		return ErrNothingToUpdate
	}
	if r.HalfDay != nil {
		normalized := strings.ToLower(strings.TrimSpace(*r.HalfDay))
		r.HalfDay = &normalized
	}
	return validator.Struct(r)
}

type DeleteLeaveRequest struct {
	ID       string `json:"-"`
	Password string `json:"password"`
}

func (r *DeleteLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.Password == "" {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func ToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:          l.ID,
		UserID:      l.UserID,
		Username:    l.Username,
		DisplayName: l.DisplayName,
		Date:        l.Date,
		HalfDay:     l.HalfDay,
		LeaveType:   l.Label(),
		Reason:      l.Reason,
	}
	if !l.CreatedAt.IsZero() {
		resp.CreatedAt = l.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

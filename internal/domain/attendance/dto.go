package attendance

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/validator"
)

// StatusFilter selects attendance records by presence.
type StatusFilter string

const (
	StatusFilterAll        StatusFilter = "all"
	StatusFilterFull       StatusFilter = "full"
	StatusFilterHalf       StatusFilter = "half"
	StatusFilterFirstHalf  StatusFilter = "first-half"
	StatusFilterSecondHalf StatusFilter = "second-half"
	StatusFilterAbsent     StatusFilter = "absent"
)

var StatusFilters = []string{
	string(StatusFilterAll),
	string(StatusFilterFull),
	string(StatusFilterHalf),
	string(StatusFilterFirstHalf),
	string(StatusFilterSecondHalf),
	string(StatusFilterAbsent),
}

// Matches reports whether the record satisfies the status variant.
// first-half and second-half ignore the other half.
func (f StatusFilter) Matches(a Attendance) bool {
	switch f {
	case StatusFilterFull:
		return a.IsFullDay()
	case StatusFilterHalf:
		return a.IsHalfDay()
	case StatusFilterFirstHalf:
		return a.FirstHalfPresent
	case StatusFilterSecondHalf:
		return a.SecondHalfPresent
	case StatusFilterAbsent:
		return a.IsAbsent()
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

type AttendanceFilter struct {
	Criteria

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Export only: csv or xlsx
	Format string `json:"format"`
}

func (f *AttendanceFilter) Validate() error {
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

type AttendanceResponse struct {
	ID                string  `json:"id"`
	UserID            string  `json:"user_id"`
	Username          string  `json:"username"`
	DisplayName       string  `json:"display_name"`
	Date              string  `json:"date"`
	FirstHalfPresent  bool    `json:"first_half_present"`
	SecondHalfPresent bool    `json:"second_half_present"`
	Status            string  `json:"status"`
	SummaryStatus     string  `json:"summary_status"`
	Note              *string `json:"note,omitempty"`
	CreatedAt         string  `json:"created_at,omitempty"`
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Showing     string               `json:"showing"`
	Attendances []AttendanceResponse `json:"attendances"`
}

// ========================================
// MUTATIONS
// ========================================

type CreateAttendanceRequest struct {
	UserID            string  `json:"user_id" validate:"required"`
	Date              string  `json:"date" validate:"required,date"`
	FirstHalfPresent  bool    `json:"first_half_present"`
	SecondHalfPresent bool    `json:"second_half_present"`
	Note              *string `json:"note,omitempty" validate:"omitempty,max=500"`
}

func (r *CreateAttendanceRequest) Validate() error {
	r.UserID = strings.TrimSpace(r.UserID)
	r.Date = strings.TrimSpace(r.Date)

	if err := validator.Struct(r); err != nil {
		return err
	}
	if !r.FirstHalfPresent && !r.SecondHalfPresent {
		return ErrBothHalvesAbsent
	}
	return nil
}

type UpdateAttendanceRequest struct {
	ID                string  `json:"-"`
	Date              *string `json:"date,omitempty" validate:"omitempty,date"`
	FirstHalfPresent  *bool   `json:"first_half_present,omitempty"`
	SecondHalfPresent *bool   `json:"second_half_present,omitempty"`
	Note              *string `json:"note,omitempty" validate:"omitempty,max=500"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	if validator.IsEmpty(r.ID) {
		return validator.ValidationErrors{{Field: "id", Message: "id is required"}}
	}
	if r.Date == nil && r.FirstHalfPresent == nil && r.SecondHalfPresent == nil && r.Note == nil {
		return ErrNothingToUpdate
	}
	return validator.Struct(r)
}

type DeleteAttendanceRequest struct {
	ID       string `json:"-"`
	Password string `json:"password"`
}

func (r *DeleteAttendanceRequest) Validate() error {
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

// ToResponse renders an entity for the API.
func ToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:                a.ID,
		UserID:            a.UserID,
		Username:          a.Username,
		DisplayName:       a.DisplayName,
		Date:              a.Date,
		FirstHalfPresent:  a.FirstHalfPresent,
		SecondHalfPresent: a.SecondHalfPresent,
		Status:            a.Status(),
		SummaryStatus:     a.SummaryStatus(),
		Note:              a.Note,
	}
	if !a.CreatedAt.IsZero() {
		resp.CreatedAt = a.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

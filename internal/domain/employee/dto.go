package employee

import (
	"strings"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/validator"
)

type EmployeeFilter struct {
	Search string `json:"search"`
}

func (f *EmployeeFilter) Validate() error {
	f.Search = strings.TrimSpace(f.Search)
	return nil
}

// EmployeeCard is one employee as seen through their attendance and leave records.
type EmployeeCard struct {
	UserID          string  `json:"user_id"`
	Username        string  `json:"username"`
	DisplayName     string  `json:"display_name"`
	Email           *string `json:"email,omitempty"`
	AttendanceCount int     `json:"attendance_count"`
	LeaveCount      int     `json:"leave_count"`
	LastSeen        *string `json:"last_seen,omitempty"`
	Status          string  `json:"status"`
}

type ListEmployeeResponse struct {
	Employees []EmployeeCard `json:"employees"`
	Warnings  []string       `json:"warnings,omitempty"`
}

type EmployeeResponse struct {
	UserID      string  `json:"user_id"`
	Username    string  `json:"username"`
	DisplayName string  `json:"display_name"`
	Email       *string `json:"email,omitempty"`
}

type EmployeeStats struct {
	TotalDays      int     `json:"total_days"`
	PresentDays    float64 `json:"present_days"`
	HalfDays       float64 `json:"half_days"`
	LeaveDays      float64 `json:"leave_days"`
	AttendanceRate float64 `json:"attendance_rate"`
}

type EmployeeDetailResponse struct {
	Employee        EmployeeResponse                `json:"employee"`
	Stats           EmployeeStats                   `json:"stats"`
	AttendanceChart []report.LinePoint              `json:"attendance_chart"`
	Attendances     []attendance.AttendanceResponse `json:"attendances"`
	Leaves          []leave.LeaveResponse           `json:"leaves"`
	Warnings        []string                        `json:"warnings,omitempty"`
}

type GetEmployeeRequest struct {
	UserID string
}

func (r *GetEmployeeRequest) Validate() error {
	if validator.IsEmpty(r.UserID) {
		return validator.ValidationErrors{{Field: "id", Message: "id is required"}}
	}
	return nil
}

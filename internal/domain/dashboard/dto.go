package dashboard

import "github.com/cmlabs-hris/hris-dashboard-go/internal/domain/report"

// Activity kinds
const (
	ActivityAttendance = "attendance"
	ActivityLeave      = "leave"
)

type Activity struct {
	Type        string  `json:"type"`
	UserID      string  `json:"user_id"`
	Username    string  `json:"username"`
	DisplayName string  `json:"display_name"`
	Date        string  `json:"date"`
	Status      string  `json:"status"`
	Reason      *string `json:"reason,omitempty"`
	CreatedAt   string  `json:"created_at,omitempty"`
}

type OverviewResponse struct {
	Date           string             `json:"date"`
	TotalEmployees int                `json:"total_employees"`
	PresentToday   int                `json:"present_today"`
	OnLeaveToday   int                `json:"on_leave_today"`
	AttendanceRate float64            `json:"attendance_rate"`
	Trend          []report.LinePoint `json:"trend"`
	RecentActivity []Activity         `json:"recent_activity"`
	Warnings       []string           `json:"warnings,omitempty"`
}

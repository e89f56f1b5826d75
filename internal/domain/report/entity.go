package report

// EmployeeSummary accumulates one employee's attendance and leave over a date window.
// Sums are never rounded; only display formatting rounds the rate.
type EmployeeSummary struct {
	UserID         string  `json:"user_id"`
	Username       string  `json:"username"`
	DisplayName    string  `json:"display_name"`
	PresentDays    float64 `json:"present_days"`
	HalfDays       float64 `json:"half_days"`
	LeaveDays      float64 `json:"leave_days"`
	AttendanceRate float64 `json:"attendance_rate"`
}

func (s EmployeeSummary) Name() string {
	if s.DisplayName != "" {
		return s.DisplayName
	}
	if s.Username != "" {
		return s.Username
	}
	return s.UserID
}

// PieSlice is one named share of a pie chart.
type PieSlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// LinePoint is one x/y point of a line chart. Date is the sortable key, Label the axis text.
type LinePoint struct {
	Date  string  `json:"date"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// HalfDayMode controls how much a half-present day adds to HalfDays.
type HalfDayMode string

const (
	HalfDayWeighted HalfDayMode = "weighted"
	HalfDayCount    HalfDayMode = "count"
)

// Increment returns the HalfDays increment for one half-present day.
func (m HalfDayMode) Increment() float64 {
	if m == HalfDayCount {
		return 1
	}
	return 0.5
}

// Report types
const (
	TypeAttendance = "attendance"
	TypeLeaves     = "leaves"
	TypeSummary    = "summary"
)

var Types = []string{TypeAttendance, TypeLeaves, TypeSummary}

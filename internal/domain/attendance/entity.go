package attendance

import (
	"time"
)

// Attendance is one employee-day as stored by the HR API.
type Attendance struct {
	ID          string
	UserID      string
	Username    string
	DisplayName string
	// Date is "yyyy-MM-dd" when the upstream value could be normalized, otherwise the raw value.
	Date              string
	FirstHalfPresent  bool
	SecondHalfPresent bool
	CreatedAt         time.Time
	Note              *string
}

// Status labels
const (
	StatusFullDay    = "Full Day"
	StatusFirstHalf  = "First Half"
	StatusSecondHalf = "Second Half"
	StatusHalfDay    = "Half Day"
	StatusAbsent     = "Absent"
)

func (a Attendance) IsFullDay() bool {
	return a.FirstHalfPresent && a.SecondHalfPresent
}

// IsHalfDay reports whether exactly one half was present.
func (a Attendance) IsHalfDay() bool {
	return a.FirstHalfPresent != a.SecondHalfPresent
}

func (a Attendance) IsAbsent() bool {
	return !a.FirstHalfPresent && !a.SecondHalfPresent
}

// Status distinguishes which half was present.
func (a Attendance) Status() string {
	switch {
	case a.IsFullDay():
		return StatusFullDay
	case a.FirstHalfPresent:
		return StatusFirstHalf
	case a.SecondHalfPresent:
		return StatusSecondHalf
	default:
		return StatusAbsent
	}
}

// SummaryStatus collapses both single-half cases into "Half Day".
func (a Attendance) SummaryStatus() string {
	switch {
	case a.IsFullDay():
		return StatusFullDay
	case a.IsHalfDay():
		return StatusHalfDay
	default:
		return StatusAbsent
	}
}

// PresenceWeight is 1 for a full day, 0.5 for a half day and 0 otherwise.
func (a Attendance) PresenceWeight() float64 {
	switch {
	case a.IsFullDay():
		return 1
	case a.IsHalfDay():
		return 0.5
	default:
		return 0
	}
}

// Name is the best available human label for the employee.
func (a Attendance) Name() string {
	if a.DisplayName != "" {
		return a.DisplayName
	}
	if a.Username != "" {
		return a.Username
	}
	return a.UserID
}

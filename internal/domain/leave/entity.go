package leave

import (
	"time"
)

// Leave is one day (or half day) of leave as stored by the HR API.
type Leave struct {
	ID          string
	UserID      string
	Username    string
	DisplayName string
	// Date is "yyyy-MM-dd" when the upstream value could be normalized, otherwise the raw value.
	Date      string
	HalfDay   string
	Reason    string
	CreatedAt time.Time
}

// HalfDay classifications. "half" is the older encoding of a half day.
const (
	HalfDayFull   = "full"
	HalfDayFirst  = "first"
	HalfDaySecond = "second"
	HalfDayHalf   = "half"
)

var HalfDayValues = []string{HalfDayFull, HalfDayFirst, HalfDaySecond, HalfDayHalf}

const (
	LabelFullDay = "Full Day"
	LabelHalfDay = "Half Day"
)

// IsFullDay is true only for "full"; every other classification is a half day.
func (l Leave) IsFullDay() bool {
	return l.HalfDay == HalfDayFull
}

// Weight is the number of leave days the record accounts for.
func (l Leave) Weight() float64 {
	if l.IsFullDay() {
		return 1
	}
	return 0.5
}

func (l Leave) Label() string {
	if l.IsFullDay() {
		return LabelFullDay
	}
	return LabelHalfDay
}

// Name is the best available human label for the employee.
func (l Leave) Name() string {
	if l.DisplayName != "" {
		return l.DisplayName
	}
	if l.Username != "" {
		return l.Username
	}
	return l.UserID
}

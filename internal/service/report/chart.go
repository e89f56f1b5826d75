package report

import (
	"sort"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/utils"
)

const (
	labelLayout = "Jan 2"
	leaveTopN   = 5
)

// Attendance status slice names
const (
	SliceFullDay = "Full Day"
	SliceHalfDay = "Half Day"
	SliceAbsent  = "Absent"
)

// AxisLabel renders a "yyyy-MM-dd" date as "Mar 4". Unparseable dates are returned unchanged.
func AxisLabel(date string) string {
	t, err := time.Parse(utils.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format(labelLayout)
}

// AttendanceStatusPie counts records per summary status. Empty slices are dropped.
func AttendanceStatusPie(records []attendance.Attendance) []report.PieSlice {
	var full, half, absent float64
	for _, a := range records {
		switch {
		case a.IsFullDay():
			full++
		case a.IsHalfDay():
			half++
		default:
			absent++
		}
	}

	slices := []report.PieSlice{}
	for _, s := range []report.PieSlice{
		{Name: SliceFullDay, Value: full},
		{Name: SliceHalfDay, Value: half},
		{Name: SliceAbsent, Value: absent},
	} {
		if s.Value > 0 {
			slices = append(slices, s)
		}
	}
	return slices
}

// LeaveDistributionPie sums weighted leave days per employee and keeps the five largest.
// Ties are ordered by name.
func LeaveDistributionPie(leaves []leave.Leave) []report.PieSlice {
	totals := map[string]*report.PieSlice{}
	order := []string{}
	for _, l := range leaves {
		key := l.UserID
		if key == "" {
			key = l.Name()
		}
		s, ok := totals[key]
		if !ok {
			s = &report.PieSlice{Name: l.Name()}
			totals[key] = s
			order = append(order, key)
		}
		s.Value += l.Weight()
	}

	slices := make([]report.PieSlice, 0, len(order))
	for _, key := range order {
		slices = append(slices, *totals[key])
	}
	sort.SliceStable(slices, func(i, j int) bool {
		if slices[i].Value != slices[j].Value {
			return slices[i].Value > slices[j].Value
		}
		return slices[i].Name < slices[j].Name
	})
	if len(slices) > leaveTopN {
		slices = slices[:leaveTopN]
	}
	return slices
}

// DailyPresenceLine has one point per window day carrying the summed presence weight.
// Days without records are zero.
func DailyPresenceLine(records []attendance.Attendance, window utils.DateRange) []report.LinePoint {
	byDay := map[string]float64{}
	for _, a := range records {
		if day, ok := utils.NormalizeDate(a.Date); ok {
			byDay[day] += a.PresenceWeight()
		}
	}

	days := window.Days()
	points := make([]report.LinePoint, 0, len(days))
	for _, day := range days {
		points = append(points, report.LinePoint{Date: day, Label: AxisLabel(day), Value: byDay[day]})
	}
	return points
}

// PresenceTrend sums presence weight per recorded date and returns the last n dates in order.
func PresenceTrend(records []attendance.Attendance, n int) []report.LinePoint {
	byDay := map[string]float64{}
	for _, a := range records {
		if day, ok := utils.NormalizeDate(a.Date); ok {
			byDay[day] += a.PresenceWeight()
		}
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)
	if n > 0 && len(days) > n {
		days = days[len(days)-n:]
	}

	points := make([]report.LinePoint, 0, len(days))
	for _, day := range days {
		points = append(points, report.LinePoint{Date: day, Label: AxisLabel(day), Value: byDay[day]})
	}
	return points
}

// EmployeeAttendanceLine plots one employee's last n records by date with their presence weight.
func EmployeeAttendanceLine(records []attendance.Attendance, n int) []report.LinePoint {
	sorted := append([]attendance.Attendance(nil), records...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })
	if n > 0 && len(sorted) > n {
		sorted = sorted[len(sorted)-n:]
	}

	points := make([]report.LinePoint, 0, len(sorted))
	for _, a := range sorted {
		day, ok := utils.NormalizeDate(a.Date)
		if !ok {
			day = a.Date
		}
		points = append(points, report.LinePoint{Date: day, Label: AxisLabel(day), Value: a.PresenceWeight()})
	}
	return points
}

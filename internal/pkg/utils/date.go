package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

// DateLayout is the calendar date format used by the HR API and every export.
const DateLayout = "2006-01-02"

var ErrUnknownPreset = errors.New("unknown date range preset")

// Date range presets offered by the reports view.
const (
	PresetToday      = "today"
	PresetYesterday  = "yesterday"
	PresetLast7Days  = "last7days"
	PresetLast30Days = "last30days"
	PresetThisMonth  = "thisMonth"
)

var Presets = []string{PresetToday, PresetYesterday, PresetLast7Days, PresetLast30Days, PresetThisMonth}

// NormalizeDate reduces a date or timestamp string to "yyyy-MM-dd".
// "2024-03-01" and "2024-03-01T00:00:00.000Z" both normalize to "2024-03-01".
func NormalizeDate(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if len(raw) < len(DateLayout) {
		return "", false
	}
	day := raw[:len(DateLayout)]
	if _, err := time.Parse(DateLayout, day); err != nil {
		return "", false
	}
	return day, true
}

// DateRange is an inclusive window of calendar days.
type DateRange struct {
	From time.Time
	To   time.Time
}

// NewDateRange parses both ends as "yyyy-MM-dd". Reversed bounds are swapped.
func NewDateRange(from, to string) (DateRange, error) {
	f, err := time.Parse(DateLayout, from)
	if err != nil {
		return DateRange{}, err
	}
	t, err := time.Parse(DateLayout, to)
	if err != nil {
		return DateRange{}, err
	}
	if t.Before(f) {
		f, t = t, f
	}
	return DateRange{From: f, To: t}, nil
}

// RangeFromPreset resolves a preset name relative to today.
func RangeFromPreset(preset string, today time.Time) (DateRange, error) {
	day := truncateDay(today)
	switch preset {
	case PresetToday:
		return DateRange{From: day, To: day}, nil
	case PresetYesterday:
		y := day.AddDate(0, 0, -1)
		return DateRange{From: y, To: y}, nil
	case PresetLast7Days:
		return DateRange{From: day.AddDate(0, 0, -6), To: day}, nil
	case PresetLast30Days:
		return DateRange{From: day.AddDate(0, 0, -29), To: day}, nil
	case PresetThisMonth:
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
		return DateRange{From: start, To: start.AddDate(0, 1, -1)}, nil
	default:
		return DateRange{}, ErrUnknownPreset
	}
}

func (r DateRange) FromString() string { return r.From.Format(DateLayout) }

func (r DateRange) ToString() string { return r.To.Format(DateLayout) }

// Contains reports whether a record date falls inside the window.
// Dates that cannot be normalized are outside every window.
func (r DateRange) Contains(date string) bool {
	day, ok := NormalizeDate(date)
	if !ok {
		return false
	}
	return day >= r.FromString() && day <= r.ToString()
}

// Span counts the days of the window, both ends included.
func (r DateRange) Span() int {
	return int(truncateDay(r.To).Sub(truncateDay(r.From)).Hours()/24) + 1
}

// Days lists every calendar day of the window in order.
func (r DateRange) Days() []string {
	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.DAILY,
		Dtstart: truncateDay(r.From),
		Until:   truncateDay(r.To),
	})
	if err != nil {
		return nil
	}

	occurrences := rule.All()
	days := make([]string, 0, len(occurrences))
	for _, occ := range occurrences {
		days = append(days, occ.Format(DateLayout))
	}
	return days
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

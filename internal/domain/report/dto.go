package report

import (
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/utils"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/validator"
)

// MaxWindowDays bounds an explicit report window, inclusive of both ends.
const MaxWindowDays = 366

// WindowRequest selects the report window: an explicit from/to pair or a preset.
type WindowRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Preset string `json:"preset"`
}

func (r *WindowRequest) validate() validator.ValidationErrors {
	var errs validator.ValidationErrors

	r.From = strings.TrimSpace(r.From)
	r.To = strings.TrimSpace(r.To)
	r.Preset = strings.TrimSpace(r.Preset)

	if r.Preset != "" {
		if !validator.IsInSlice(r.Preset, utils.Presets) {
			errs = append(errs, validator.ValidationError{
				Field:   "preset",
				Message: "preset must be one of: " + strings.Join(utils.Presets, ", "),
			})
		}
		return errs
	}

	if r.From == "" && r.To == "" {
		r.Preset = utils.PresetLast7Days
		return errs
	}

	_, fromOK := validator.IsValidDate(r.From)
	if !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "from",
			Message: "from must be in YYYY-MM-DD format",
		})
	}
	_, toOK := validator.IsValidDate(r.To)
	if !toOK {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must be in YYYY-MM-DD format",
		})
	}
	if fromOK && toOK {
		if window, err := utils.NewDateRange(r.From, r.To); err == nil && window.Span() > MaxWindowDays {
			errs = append(errs, validator.ValidationError{
				Field:   "to",
				Message: fmt.Sprintf("date range must not exceed %d days", MaxWindowDays),
			})
		}
	}
	return errs
}

type SummaryRequest struct {
	WindowRequest
}

func (r *SummaryRequest) Validate() error {
	if errs := r.validate(); len(errs) > 0 {
		return errs
	}
	return nil
}

type ExportRequest struct {
	WindowRequest
	Type   string `json:"type"`
	Format string `json:"format"`
}

func (r *ExportRequest) Validate() error {
	errs := r.validate()

	if r.Type == "" {
		r.Type = TypeAttendance
	}
	if !validator.IsInSlice(r.Type, Types) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: " + strings.Join(Types, ", "),
		})
	}

	if r.Format == "" {
		r.Format = "csv"
	}
	if r.Format != "csv" && r.Format != "xlsx" {
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

type Totals struct {
	Employees         int     `json:"employees"`
	AttendanceRecords int     `json:"attendance_records"`
	LeaveRecords      int     `json:"leave_records"`
	PresentDays       float64 `json:"present_days"`
	LeaveDays         float64 `json:"leave_days"`
	AverageRate       float64 `json:"average_rate"`
}

type SummaryResponse struct {
	From              string            `json:"from"`
	To                string            `json:"to"`
	Totals            Totals            `json:"totals"`
	Employees         []EmployeeSummary `json:"employees"`
	AttendanceStatus  []PieSlice        `json:"attendance_status"`
	LeaveDistribution []PieSlice        `json:"leave_distribution"`
	DailyPresence     []LinePoint       `json:"daily_presence"`
	Warnings          []string          `json:"warnings,omitempty"`
}

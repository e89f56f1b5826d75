package report

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/export"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/utils"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/service/snapshot"
)

type ReportServiceImpl struct {
	loader *snapshot.Loader
	opts   Options
	now    func() time.Time
}

func NewReportService(loader *snapshot.Loader, halfDayMode report.HalfDayMode) report.ReportService {
	return &ReportServiceImpl{
		loader: loader,
		opts:   Options{HalfDayMode: halfDayMode},
		now:    time.Now,
	}
}

func (s *ReportServiceImpl) window(req report.WindowRequest) (utils.DateRange, error) {
	if req.Preset != "" {
		return utils.RangeFromPreset(req.Preset, s.now().UTC())
	}
	window, err := utils.NewDateRange(req.From, req.To)
	if err != nil {
		return utils.DateRange{}, report.ErrInvalidDateRange
	}
	return window, nil
}

// Summary implements report.ReportService.
func (s *ReportServiceImpl) Summary(ctx context.Context, req report.SummaryRequest) (report.SummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return report.SummaryResponse{}, err
	}

	window, err := s.window(req.WindowRequest)
	if err != nil {
		return report.SummaryResponse{}, err
	}

	snap, err := s.loader.Load(ctx, snapshot.Attendance|snapshot.Leaves, snapshot.None)
	if err != nil {
		return report.SummaryResponse{}, err
	}

	atts := attendanceInWindow(snap.Attendance, window)
	leaves := leavesInWindow(snap.Leaves, window)
	summaries := SortedSummaries(Aggregate(atts, leaves, &window, s.opts))

	return report.SummaryResponse{
		From:              window.FromString(),
		To:                window.ToString(),
		Totals:            totals(summaries, len(atts), len(leaves)),
		Employees:         summaries,
		AttendanceStatus:  AttendanceStatusPie(atts),
		LeaveDistribution: LeaveDistributionPie(leaves),
		DailyPresence:     DailyPresenceLine(atts, window),
		Warnings:          snap.Warnings,
	}, nil
}

// Export implements report.ReportService.
func (s *ReportServiceImpl) Export(ctx context.Context, req report.ExportRequest) (export.File, error) {
	if err := req.Validate(); err != nil {
		return export.File{}, err
	}

	window, err := s.window(req.WindowRequest)
	if err != nil {
		return export.File{}, err
	}

	var sources snapshot.Source
	switch req.Type {
	case report.TypeAttendance:
		sources = snapshot.Attendance
	case report.TypeLeaves:
		sources = snapshot.Leaves
	default:
		sources = snapshot.Attendance | snapshot.Leaves
	}

	// A download built from a partial snapshot would look complete, so every source is required.
	snap, err := s.loader.Load(ctx, sources, sources)
	if err != nil {
		return export.File{}, fmt.Errorf("failed to load report data: %w", err)
	}

	atts := attendanceInWindow(snap.Attendance, window)
	leaves := leavesInWindow(snap.Leaves, window)

	var table *export.Table
	switch req.Type {
	case report.TypeAttendance:
		table = AttendanceTable(atts)
	case report.TypeLeaves:
		table = LeavesTable(leaves)
	default:
		table = SummaryTable(SortedSummaries(Aggregate(atts, leaves, &window, s.opts)))
	}

	stem := export.ReportStem(req.Type, window.FromString(), window.ToString())
	return export.Render(table, stem, req.Format)
}

func attendanceInWindow(records []attendance.Attendance, window utils.DateRange) []attendance.Attendance {
	result := make([]attendance.Attendance, 0, len(records))
	for _, a := range records {
		if window.Contains(a.Date) {
			result = append(result, a)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date < result[j].Date
		}
		return result[i].Name() < result[j].Name()
	})
	return result
}

func leavesInWindow(records []leave.Leave, window utils.DateRange) []leave.Leave {
	result := make([]leave.Leave, 0, len(records))
	for _, l := range records {
		if window.Contains(l.Date) {
			result = append(result, l)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date < result[j].Date
		}
		return result[i].Name() < result[j].Name()
	})
	return result
}

func totals(summaries []report.EmployeeSummary, attendanceRecords, leaveRecords int) report.Totals {
	t := report.Totals{
		Employees:         len(summaries),
		AttendanceRecords: attendanceRecords,
		LeaveRecords:      leaveRecords,
	}
	var rates float64
	for _, s := range summaries {
		t.PresentDays += s.PresentDays
		t.LeaveDays += s.LeaveDays
		rates += s.AttendanceRate
	}
	if len(summaries) > 0 {
		t.AverageRate = rates / float64(len(summaries))
	}
	return t
}

func AttendanceTable(records []attendance.Attendance) *export.Table {
	table := export.NewTable("Date", "Employee", "Username", "First Half", "Second Half", "Status")
	for _, a := range records {
		table.AddRow(a.Date, a.Name(), a.Username, yesNo(a.FirstHalfPresent), yesNo(a.SecondHalfPresent), a.SummaryStatus())
	}
	return table
}

func LeavesTable(records []leave.Leave) *export.Table {
	table := export.NewTable("Date", "Employee", "Username", "Leave Type", "Reason").WithFreeText("Reason")
	for _, l := range records {
		table.AddRow(l.Date, l.Name(), l.Username, l.Label(), l.Reason)
	}
	return table
}

func SummaryTable(summaries []report.EmployeeSummary) *export.Table {
	table := export.NewTable("Employee", "Username", "Present Days", "Half Days", "Leave Days", "Attendance Rate")
	for _, s := range summaries {
		table.AddRow(
			s.Name(),
			s.Username,
			formatDays(s.PresentDays),
			formatDays(s.HalfDays),
			formatDays(s.LeaveDays),
			fmt.Sprintf("%.1f%%", s.AttendanceRate),
		)
	}
	return table
}

func formatDays(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func yesNo(present bool) string {
	if present {
		return "Yes"
	}
	return "No"
}

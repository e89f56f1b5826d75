package report

import (
	"context"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/export"
)

type ReportService interface {
	// Summary aggregates the window into per-employee summaries and chart series
	Summary(ctx context.Context, req SummaryRequest) (SummaryResponse, error)

	// Export renders the attendance, leaves or summary report for the window
	Export(ctx context.Context, req ExportRequest) (export.File, error)
}

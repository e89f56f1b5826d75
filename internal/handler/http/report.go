package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/handler/http/response"
)

type ReportHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{
		reportService: reportService,
	}
}

func parseWindow(r *http.Request) report.WindowRequest {
	return report.WindowRequest{
		From:   queryString(r, "from"),
		To:     queryString(r, "to"),
		Preset: queryString(r, "preset"),
	}
}

// Summary implements ReportHandler.
func (h *ReportHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Summary(r.Context(), report.SummaryRequest{WindowRequest: parseWindow(r)})
	if err != nil {
		slog.Error("Report summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithWarnings(w, result, result.Warnings)
}

// Export implements ReportHandler.
func (h *ReportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	req := report.ExportRequest{
		WindowRequest: parseWindow(r),
		Type:          queryString(r, "type"),
		Format:        queryString(r, "format"),
	}

	file, err := h.reportService.Export(r.Context(), req)
	if err != nil {
		slog.Error("Report export service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.File(w, file)
}

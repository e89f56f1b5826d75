package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Overview(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// Overview implements DashboardHandler.
func (h *DashboardHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.Overview(r.Context())
	if err != nil {
		slog.Error("Dashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithWarnings(w, result, result.Warnings)
}

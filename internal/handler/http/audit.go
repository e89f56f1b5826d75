package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/audit"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/validator"
)

type AuditHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type AuditHandlerImpl struct {
	auditService audit.AuditService
}

func NewAuditHandler(auditService audit.AuditService) AuditHandler {
	return &AuditHandlerImpl{
		auditService: auditService,
	}
}

// List implements AuditHandler.
func (h *AuditHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var errs validator.ValidationErrors

	filter := audit.AuditFilter{
		Resource: queryStringPtr(r, "resource"),
		Action:   queryStringPtr(r, "action"),
		Actor:    queryStringPtr(r, "actor"),
		Page:     queryInt(r, "page", &errs),
		Limit:    queryInt(r, "limit", &errs),
	}
	if len(errs) > 0 {
		response.HandleError(w, errs)
		return
	}

	result, err := h.auditService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List audit service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

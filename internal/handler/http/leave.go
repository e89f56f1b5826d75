package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService: leaveService,
	}
}

func parseLeaveFilter(r *http.Request) (leave.LeaveFilter, error) {
	var errs validator.ValidationErrors

	filter := leave.LeaveFilter{
		Criteria: leave.Criteria{
			SearchTerm: queryString(r, "search"),
			Date:       queryStringPtr(r, "date"),
			Status:     leave.StatusFilter(queryString(r, "status")),
		},
		Page:   queryInt(r, "page", &errs),
		Limit:  queryInt(r, "limit", &errs),
		Format: queryString(r, "format"),
	}

	if len(errs) > 0 {
		return filter, errs
	}
	return filter, nil
}

// List implements LeaveHandler.
func (h *LeaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseLeaveFilter(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.leaveService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List leave service error", "error", err)
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

// Create implements LeaveHandler.
func (h *LeaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req leave.CreateLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave record created successfully", result)
}

// Update implements LeaveHandler.
func (h *LeaveHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req leave.UpdateLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.leaveService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Update leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave record updated successfully", result)
}

// Delete implements LeaveHandler.
func (h *LeaveHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	var req leave.DeleteLeaveRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Delete leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.leaveService.Delete(r.Context(), req); err != nil {
		slog.Error("Delete leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave record deleted successfully", nil)
}

// Export implements LeaveHandler.
func (h *LeaveHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	filter, err := parseLeaveFilter(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	file, err := h.leaveService.Export(r.Context(), filter)
	if err != nil {
		slog.Error("Export leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.File(w, file)
}

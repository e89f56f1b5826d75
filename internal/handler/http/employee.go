package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{
		employeeService: employeeService,
	}
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.List(r.Context(), employee.EmployeeFilter{Search: queryString(r, "search")})
	if err != nil {
		slog.Error("List employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithWarnings(w, result, result.Warnings)
}

// Get implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.Get(r.Context(), employee.GetEmployeeRequest{UserID: chi.URLParam(r, "id")})
	if err != nil {
		slog.Error("Get employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithWarnings(w, result, result.Warnings)
}

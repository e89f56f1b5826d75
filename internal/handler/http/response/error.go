package response

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/hrapi"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/utils"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidAdminPassword):
		Forbidden(w, "Invalid Password")
	case errors.Is(err, auth.ErrEmailNotAllowed):
		Forbidden(w, "Email is not allowed to access this dashboard")
	case errors.Is(err, auth.ErrEmailNotVerified):
		Forbidden(w, "Email not verified")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrRefreshTokenCookieNotFound):
		Unauthorized(w, "Refresh token cookie not found")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrBothHalvesAbsent):
		ValidationError(w, map[string]string{"first_half_present": "At least one half must be present"})
	case errors.Is(err, attendance.ErrNothingToUpdate):
		ValidationError(w, map[string]string{"body": "No fields to update"})
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrNothingToUpdate):
		ValidationError(w, map[string]string{"body": "No fields to update"})
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave record not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Report domain errors
	case errors.Is(err, report.ErrInvalidDateRange), errors.Is(err, utils.ErrUnknownPreset):
		BadRequest(w, "Invalid date range", nil)

	default:
		handleUpstreamError(w, err)
	}
}

func handleUpstreamError(w http.ResponseWriter, err error) {
	var apiErr *hrapi.APIError
	if errors.As(err, &apiErr) {
		if apiErr.IsNotFound() {
			NotFound(w, "Record not found")
			return
		}
		BadGateway(w, "HR API request failed")
		return
	}

	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		BadGateway(w, "HR API is unreachable")
		return
	}

	InternalServerError(w, "An unexpected error occurred")
}

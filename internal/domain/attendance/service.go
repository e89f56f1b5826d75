package attendance

import (
	"context"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/export"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// List fetches all records, applies the filter criteria and paginates the result
	List(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// Create resolves the employee from the directory and stores a new record
	Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)

	// Update changes presence flags, date or note
	Update(ctx context.Context, req UpdateAttendanceRequest) (*AttendanceResponse, error)

	// Delete checks the admin password before removing the record upstream
	Delete(ctx context.Context, req DeleteAttendanceRequest) error

	// Export renders the filtered list as CSV or XLSX
	Export(ctx context.Context, filter AttendanceFilter) (export.File, error)
}

package leave

import (
	"context"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/export"
)

type LeaveService interface {
	// List fetches all leave records, applies the filter criteria and paginates the result
	List(ctx context.Context, filter LeaveFilter) (ListLeaveResponse, error)

	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)

	Update(ctx context.Context, req UpdateLeaveRequest) (*LeaveResponse, error)

	// Delete checks the admin password before removing the record upstream
	Delete(ctx context.Context, req DeleteLeaveRequest) error

	Export(ctx context.Context, filter LeaveFilter) (export.File, error)
}

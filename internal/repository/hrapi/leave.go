package hrapi

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/hrapi"
)

type leaveRepositoryImpl struct {
	resource *hrapi.Resource[leaveRecord]
}

func NewLeaveRepository(client *hrapi.Client, path string) leave.LeaveRepository {
	return &leaveRepositoryImpl{resource: hrapi.NewResource[leaveRecord](client, path)}
}

func (r *leaveRepositoryImpl) List(ctx context.Context, query leave.ListQuery) ([]leave.Leave, error) {
	records, err := r.resource.ListAll(ctx, hrapi.ListOptions{Date: query.Date, UserID: query.UserID})
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves: %w", err)
	}

	result := make([]leave.Leave, 0, len(records))
	for _, rec := range records {
		result = append(result, rec.toEntity())
	}
	return result, nil
}

func (r *leaveRepositoryImpl) Create(ctx context.Context, l leave.Leave) (*leave.Leave, error) {
	created, err := r.resource.Create(ctx, leavePayload{
		UserID:      l.UserID,
		Username:    l.Username,
		DisplayName: l.DisplayName,
		Date:        l.Date,
		HalfDay:     l.HalfDay,
		Reason:      l.Reason,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create leave: %w", err)
	}
	if created == nil {
		return nil, nil
	}
	entity := created.toEntity()
	return &entity, nil
}

func (r *leaveRepositoryImpl) Update(ctx context.Context, id string, patch leave.Patch) (*leave.Leave, error) {
	updated, err := r.resource.Update(ctx, id, leavePatch{
		Date:    patch.Date,
		HalfDay: patch.HalfDay,
		Reason:  patch.Reason,
	})
	if err != nil {
		if isNotFound(err) {
			return nil, leave.ErrLeaveNotFound
		}
		return nil, fmt.Errorf("failed to update leave: %w", err)
	}
	if updated == nil {
		return nil, nil
	}
	entity := updated.toEntity()
	return &entity, nil
}

func (r *leaveRepositoryImpl) Delete(ctx context.Context, id string) error {
	if err := r.resource.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return leave.ErrLeaveNotFound
		}
		return fmt.Errorf("failed to delete leave: %w", err)
	}
	return nil
}

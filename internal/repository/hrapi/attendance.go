package hrapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/hrapi"
)

type attendanceRepositoryImpl struct {
	resource *hrapi.Resource[attendanceRecord]
}

func NewAttendanceRepository(client *hrapi.Client, path string) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{resource: hrapi.NewResource[attendanceRecord](client, path)}
}

func (r *attendanceRepositoryImpl) List(ctx context.Context, query attendance.ListQuery) ([]attendance.Attendance, error) {
	records, err := r.resource.ListAll(ctx, hrapi.ListOptions{Date: query.Date, UserID: query.UserID})
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	result := make([]attendance.Attendance, 0, len(records))
	for _, rec := range records {
		result = append(result, rec.toEntity())
	}
	return result, nil
}

func (r *attendanceRepositoryImpl) Create(ctx context.Context, a attendance.Attendance) (*attendance.Attendance, error) {
	created, err := r.resource.Create(ctx, attendancePayload{
		UserID:            a.UserID,
		Username:          a.Username,
		DisplayName:       a.DisplayName,
		Date:              a.Date,
		FirstHalfPresent:  a.FirstHalfPresent,
		SecondHalfPresent: a.SecondHalfPresent,
		Note:              a.Note,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create attendance: %w", err)
	}
	if created == nil {
		return nil, nil
	}
	entity := created.toEntity()
	return &entity, nil
}

func (r *attendanceRepositoryImpl) Update(ctx context.Context, id string, patch attendance.Patch) (*attendance.Attendance, error) {
	updated, err := r.resource.Update(ctx, id, attendancePatch{
		Date:              patch.Date,
		FirstHalfPresent:  patch.FirstHalfPresent,
		SecondHalfPresent: patch.SecondHalfPresent,
		Note:              patch.Note,
	})
	if err != nil {
		if isNotFound(err) {
			return nil, attendance.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("failed to update attendance: %w", err)
	}
	if updated == nil {
		return nil, nil
	}
	entity := updated.toEntity()
	return &entity, nil
}

func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	if err := r.resource.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	return nil
}

func isNotFound(err error) bool {
	var apiErr *hrapi.APIError
	return errors.As(err, &apiErr) && apiErr.IsNotFound()
}

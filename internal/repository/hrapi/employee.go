package hrapi

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/hrapi"
)

type employeeRepositoryImpl struct {
	resource *hrapi.Resource[userRecord]
}

func NewEmployeeRepository(client *hrapi.Client, path string) employee.EmployeeRepository {
	return &employeeRepositoryImpl{resource: hrapi.NewResource[userRecord](client, path)}
}

func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	records, err := r.resource.ListAll(ctx, hrapi.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	result := make([]employee.Employee, 0, len(records))
	for _, rec := range records {
		e := rec.toEntity()
		if e.UserID == "" {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}

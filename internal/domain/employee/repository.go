package employee

import "context"

// EmployeeRepository reads the HR API user directory.
type EmployeeRepository interface {
	List(ctx context.Context) ([]Employee, error)
}

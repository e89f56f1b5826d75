package employee

import "context"

type EmployeeService interface {
	// List builds one card per employee seen in attendance or leave records
	List(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)

	// Get returns a directory employee with their records, stats and attendance chart
	Get(ctx context.Context, req GetEmployeeRequest) (EmployeeDetailResponse, error)
}

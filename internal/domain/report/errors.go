package report

import "errors"

var (
	ErrInvalidDateRange = errors.New("either a preset or both from and to dates are required")
)

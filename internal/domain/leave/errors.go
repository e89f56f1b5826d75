package leave

import "errors"

var (
	ErrLeaveNotFound   = errors.New("leave record not found")
	ErrNothingToUpdate = errors.New("no leave fields to update")
)

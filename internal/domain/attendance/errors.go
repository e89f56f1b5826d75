package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrBothHalvesAbsent   = errors.New("at least one half of the day must be marked present")
	ErrNothingToUpdate    = errors.New("no attendance fields to update")
)

package attendance

import "errors"

// Attendance domain errors
var (
	ErrInvalidReportEntry = errors.New("invalid attendance report entry")
	ErrUnknownAction      = errors.New("unknown attendance action")
)

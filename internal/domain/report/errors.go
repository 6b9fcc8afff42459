package report

import "errors"

var (
	ErrInvalidDateOrder       = errors.New("date order must be chronological or first_seen")
	ErrNoDataFound            = errors.New("no data found for the specified criteria")
	ErrReportGenerationFailed = errors.New("failed to generate report")
)

package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// Status lists staff filtered by name search and last log date
	Status(ctx context.Context, filter StatusFilter) (StatusResponse, error)

	// CheckIn checks in the selected employees
	CheckIn(ctx context.Context, req BulkActionRequest) (ActionSummary, error)

	// CheckOut checks out the selected employees
	CheckOut(ctx context.Context, req BulkActionRequest) (ActionSummary, error)

	// ListRecords fetches validated records for report building
	ListRecords(ctx context.Context, filter ReportFilter) ([]Record, error)
}

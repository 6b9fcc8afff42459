package attendance

import (
	"context"
)

// AttendanceRepository reads and writes attendance through the agency backend.
type AttendanceRepository interface {
	// ListReport returns raw report entries for the optional date range
	ListReport(ctx context.Context, filter ReportFilter) ([]ReportEntry, error)

	// ListStatus returns the staff directory with current attendance status
	ListStatus(ctx context.Context) ([]StaffStatus, error)

	// Act applies a bulk check-in or check-out
	Act(ctx context.Context, action Action, employeeIDs []string) ([]ActionResult, error)
}

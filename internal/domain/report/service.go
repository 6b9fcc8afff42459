package report

import "context"

// ReportService defines the interface for report generation
type ReportService interface {
	// ExportAttendance builds the date x employee check-in/out workbook
	ExportAttendance(ctx context.Context, req AttendanceExportRequest) (ExportFile, error)

	// PreviewTasks returns the filtered task rows shown above the export button
	PreviewTasks(ctx context.Context, filter TaskReportFilter) (TaskPreview, error)

	// ExportTasks builds the "WORKS" workbook grouped by employee
	ExportTasks(ctx context.Context, filter TaskReportFilter) (ExportFile, error)
}

package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/adspro/dashboard-backend-go/internal/domain/attendance"
	"github.com/adspro/dashboard-backend-go/internal/domain/report"
	"github.com/adspro/dashboard-backend-go/internal/domain/task"
	"github.com/adspro/dashboard-backend-go/internal/pkg/spreadsheet"
	"github.com/google/uuid"
)

const (
	DefaultFilePrefix = "AdsPro_Attendance"

	attendanceDateColWidth = 18
	attendanceColWidth     = 25
	taskSidebarWidth       = 15
	taskColWidth           = 30
)

// Options carries report settings resolved from configuration
type Options struct {
	Location   *time.Location
	DateOrder  report.DateOrder
	FilePrefix string
}

type ReportServiceImpl struct {
	attendanceService attendance.AttendanceService
	reportRepo        report.ReportRepository
	location          *time.Location
	dateOrder         report.DateOrder
	filePrefix        string
	now               func() time.Time
}

func NewReportService(attendanceService attendance.AttendanceService, reportRepo report.ReportRepository, opts Options) report.ReportService {
	s := &ReportServiceImpl{
		attendanceService: attendanceService,
		reportRepo:        reportRepo,
		location:          opts.Location,
		dateOrder:         opts.DateOrder,
		filePrefix:        opts.FilePrefix,
		now:               time.Now,
	}
	if s.location == nil {
		s.location = time.Local
	}
	if s.dateOrder == "" {
		s.dateOrder = report.DateOrderChronological
	}
	if s.filePrefix == "" {
		s.filePrefix = DefaultFilePrefix
	}
	return s
}

// ExportAttendance implements report.ReportService.
func (s *ReportServiceImpl) ExportAttendance(ctx context.Context, req report.AttendanceExportRequest) (report.ExportFile, error) {
	if err := req.Validate(); err != nil {
		return report.ExportFile{}, err
	}

	loc := s.location
	if req.Timezone != "" {
		// Validate already proved the zone loads.
		loc, _ = time.LoadLocation(req.Timezone)
	}

	records, err := s.attendanceService.ListRecords(ctx, attendance.ReportFilter{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		return report.ExportFile{}, err
	}
	if len(records) == 0 {
		return report.ExportFile{}, report.ErrNoDataFound
	}

	matrix := BuildAttendanceMatrix(records, MatrixOptions{DateOrder: s.dateOrder, Location: loc})
	data, err := spreadsheet.Render(attendancePalette, toSheet(attendanceSheet, matrix, attendanceDateColWidth, attendanceColWidth))
	if err != nil {
		slog.Error("Failed to render attendance workbook", "error", err, "rows", len(matrix.Grid))
		return report.ExportFile{}, fmt.Errorf("%w: %w", report.ErrReportGenerationFailed, err)
	}

	label := req.StartDate
	if label == "" {
		label = "Report"
	}
	return report.ExportFile{
		ID:          uuid.NewString(),
		Name:        fmt.Sprintf("%s_%s.xlsx", s.filePrefix, label),
		ContentType: report.ContentTypeXLSX,
		Data:        data,
	}, nil
}

// PreviewTasks implements report.ReportService.
func (s *ReportServiceImpl) PreviewTasks(ctx context.Context, filter report.TaskReportFilter) (report.TaskPreview, error) {
	if err := filter.Validate(); err != nil {
		return report.TaskPreview{}, err
	}

	tasks, err := s.reportRepo.ListTaskReport(ctx)
	if err != nil {
		return report.TaskPreview{}, err
	}

	filtered := s.filterTasks(tasks, filter)
	return report.TaskPreview{
		Rows:      task.ToResponses(filtered),
		Employees: employeeOptions(tasks),
		Total:     len(filtered),
	}, nil
}

// ExportTasks implements report.ReportService.
func (s *ReportServiceImpl) ExportTasks(ctx context.Context, filter report.TaskReportFilter) (report.ExportFile, error) {
	if err := filter.Validate(); err != nil {
		return report.ExportFile{}, err
	}

	tasks, err := s.reportRepo.ListTaskReport(ctx)
	if err != nil {
		return report.ExportFile{}, err
	}

	filtered := s.filterTasks(tasks, filter)
	if len(filtered) == 0 {
		return report.ExportFile{}, report.ErrNoDataFound
	}

	matrix := BuildTaskMatrix(filtered)
	data, err := spreadsheet.Render(taskPalette, toSheet(taskSheet, matrix, taskSidebarWidth, taskColWidth))
	if err != nil {
		slog.Error("Failed to render task workbook", "error", err, "tasks", len(filtered))
		return report.ExportFile{}, fmt.Errorf("%w: %w", report.ErrReportGenerationFailed, err)
	}

	return report.ExportFile{
		ID:          uuid.NewString(),
		Name:        fmt.Sprintf("Work_Report_%s.xlsx", s.now().In(s.location).Format("2006-01-02")),
		ContentType: report.ContentTypeXLSX,
		Data:        data,
	}, nil
}

func (s *ReportServiceImpl) filterTasks(tasks []task.Task, filter report.TaskReportFilter) []task.Task {
	filtered := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if filter.Matches(t, s.location) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// employeeOptions lists the employee filter choices: the catch-all first,
// then every assigned employee name in first-seen order.
func employeeOptions(tasks []task.Task) []string {
	options := []string{report.AllEmployees}
	seen := make(map[string]bool)
	for _, t := range tasks {
		name := t.EmployeeName()
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		options = append(options, name)
	}
	return options
}

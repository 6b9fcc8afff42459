package http

import (
	"log/slog"
	"net/http"

	"github.com/adspro/dashboard-backend-go/internal/domain/report"
	"github.com/adspro/dashboard-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	// ExportAttendance downloads the attendance matrix workbook
	ExportAttendance(w http.ResponseWriter, r *http.Request)

	// PreviewTasks returns the filtered task report rows
	PreviewTasks(w http.ResponseWriter, r *http.Request)

	// ExportTasks downloads the task report workbook
	ExportTasks(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// ExportAttendance handles GET /attendance/export?startDate=&endDate=&tz=
func (h *reportHandlerImpl) ExportAttendance(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := report.AttendanceExportRequest{
		StartDate: q.Get("startDate"),
		EndDate:   q.Get("endDate"),
		Timezone:  q.Get("tz"),
	}

	file, err := h.reportService.ExportAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance report exported", "export_id", file.ID, "file", file.Name, "bytes", len(file.Data))
	response.File(w, file.Name, file.ContentType, file.ID, file.Data)
}

// PreviewTasks handles GET /reports/tasks?employee=&startDate=&endDate=
func (h *reportHandlerImpl) PreviewTasks(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.PreviewTasks(r.Context(), taskFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ExportTasks handles GET /reports/tasks/export?employee=&startDate=&endDate=
func (h *reportHandlerImpl) ExportTasks(w http.ResponseWriter, r *http.Request) {
	file, err := h.reportService.ExportTasks(r.Context(), taskFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Task report exported", "export_id", file.ID, "file", file.Name, "bytes", len(file.Data))
	response.File(w, file.Name, file.ContentType, file.ID, file.Data)
}

func taskFilter(r *http.Request) report.TaskReportFilter {
	q := r.URL.Query()
	return report.TaskReportFilter{
		Employee:  q.Get("employee"),
		StartDate: q.Get("startDate"),
		EndDate:   q.Get("endDate"),
	}
}

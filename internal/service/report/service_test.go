package report

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/adspro/dashboard-backend-go/internal/domain/attendance"
	"github.com/adspro/dashboard-backend-go/internal/domain/report"
	"github.com/adspro/dashboard-backend-go/internal/domain/task"
	"github.com/adspro/dashboard-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type fakeAttendanceService struct {
	records []attendance.Record
	err     error
	filter  attendance.ReportFilter
}

func (f *fakeAttendanceService) Status(ctx context.Context, filter attendance.StatusFilter) (attendance.StatusResponse, error) {
	return attendance.StatusResponse{}, nil
}

func (f *fakeAttendanceService) CheckIn(ctx context.Context, req attendance.BulkActionRequest) (attendance.ActionSummary, error) {
	return attendance.ActionSummary{}, nil
}

func (f *fakeAttendanceService) CheckOut(ctx context.Context, req attendance.BulkActionRequest) (attendance.ActionSummary, error) {
	return attendance.ActionSummary{}, nil
}

func (f *fakeAttendanceService) ListRecords(ctx context.Context, filter attendance.ReportFilter) ([]attendance.Record, error) {
	f.filter = filter
	return f.records, f.err
}

type fakeReportRepository struct {
	tasks []task.Task
	err   error
}

func (f *fakeReportRepository) ListTaskReport(ctx context.Context) ([]task.Task, error) {
	return f.tasks, f.err
}

func newTestService(att *fakeAttendanceService, repo *fakeReportRepository) *ReportServiceImpl {
	svc := NewReportService(att, repo, Options{Location: time.UTC}).(*ReportServiceImpl)
	svc.now = func() time.Time { return time.Date(2024, 3, 9, 22, 0, 0, 0, time.UTC) }
	return svc
}

func openWorkbook(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

// ===== ATTENDANCE EXPORT TESTS =====

func TestExportAttendance_Success(t *testing.T) {
	// Arrange
	att := &fakeAttendanceService{records: []attendance.Record{
		{EmployeeID: "e1", EmployeeName: "Alice", Date: "2024-01-01", CheckIn: at(t, "2024-01-01T09:00:00Z")},
		{EmployeeID: "e2", EmployeeName: "Bob", Date: "2024-01-01", CheckOut: at(t, "2024-01-01T17:00:00Z")},
	}}
	svc := newTestService(att, &fakeReportRepository{})

	// Act
	file, err := svc.ExportAttendance(context.Background(), report.AttendanceExportRequest{StartDate: "2024-01-01", EndDate: "2024-01-31"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "AdsPro_Attendance_2024-01-01.xlsx", file.Name)
	assert.Equal(t, report.ContentTypeXLSX, file.ContentType)
	assert.NotEmpty(t, file.ID)
	assert.Equal(t, attendance.ReportFilter{StartDate: "2024-01-01", EndDate: "2024-01-31"}, att.filter)

	f := openWorkbook(t, file.Data)
	rows, err := f.GetRows("Attendance Report")
	require.NoError(t, err)
	assert.Equal(t, []string{"Date", "Alice", "Bob"}, rows[0])
	assert.Equal(t, []string{"2024-01-01", "IN: 09:00 AM", "OUT: 05:00 PM"}, rows[1])

	inStyle, err := f.GetCellStyle("Attendance Report", "B2")
	require.NoError(t, err)
	outStyle, err := f.GetCellStyle("Attendance Report", "C2")
	require.NoError(t, err)
	assert.NotZero(t, inStyle)
	assert.NotZero(t, outStyle)
	assert.NotEqual(t, inStyle, outStyle)
}

func TestExportAttendance_DefaultLabelAndTimezone(t *testing.T) {
	att := &fakeAttendanceService{records: []attendance.Record{
		{EmployeeID: "e1", EmployeeName: "Alice", Date: "2024-01-01", CheckIn: at(t, "2024-01-01T09:00:00Z")},
	}}
	svc := newTestService(att, &fakeReportRepository{})

	file, err := svc.ExportAttendance(context.Background(), report.AttendanceExportRequest{Timezone: "UTC"})

	require.NoError(t, err)
	assert.Equal(t, "AdsPro_Attendance_Report.xlsx", file.Name)
}

func TestExportAttendance_NoRecords(t *testing.T) {
	svc := newTestService(&fakeAttendanceService{}, &fakeReportRepository{})

	_, err := svc.ExportAttendance(context.Background(), report.AttendanceExportRequest{StartDate: "2024-01-01"})

	assert.ErrorIs(t, err, report.ErrNoDataFound)
}

func TestExportAttendance_InvalidRange(t *testing.T) {
	att := &fakeAttendanceService{}
	svc := newTestService(att, &fakeReportRepository{})

	_, err := svc.ExportAttendance(context.Background(), report.AttendanceExportRequest{StartDate: "2024-02-01", EndDate: "2024-01-01"})

	var validationErrs validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	assert.Contains(t, validationErrs.ToMap(), "endDate")
}

func TestExportAttendance_FetchError(t *testing.T) {
	fetchErr := errors.New("backend down")
	svc := newTestService(&fakeAttendanceService{err: fetchErr}, &fakeReportRepository{})

	_, err := svc.ExportAttendance(context.Background(), report.AttendanceExportRequest{})

	assert.ErrorIs(t, err, fetchErr)
}

// ===== TASK REPORT TESTS =====

func taskOn(t *testing.T, employeeName, client, assigned string) task.Task {
	tk := newTask(employeeName, client, task.PageFull, "")
	tk.AssignedDate = at(t, assigned)
	return tk
}

func TestPreviewTasks_Filters(t *testing.T) {
	repo := &fakeReportRepository{tasks: []task.Task{
		taskOn(t, "Alice", "Acme", "2024-01-05T10:00:00Z"),
		taskOn(t, "Bob", "Globex", "2024-01-10T23:59:00Z"),
		taskOn(t, "", "Initech", "2024-01-10T08:00:00Z"),
		taskOn(t, "Alice", "Umbrella", "2024-01-11T00:00:00Z"),
	}}
	svc := newTestService(&fakeAttendanceService{}, repo)

	tests := []struct {
		name    string
		filter  report.TaskReportFilter
		clients []string
	}{
		{name: "all", filter: report.TaskReportFilter{}, clients: []string{"Acme", "Globex", "Initech", "Umbrella"}},
		{name: "all employees label", filter: report.TaskReportFilter{Employee: report.AllEmployees}, clients: []string{"Acme", "Globex", "Initech", "Umbrella"}},
		{name: "by employee", filter: report.TaskReportFilter{Employee: "Alice"}, clients: []string{"Acme", "Umbrella"}},
		{name: "unassigned", filter: report.TaskReportFilter{Employee: report.Unassigned}, clients: []string{"Initech"}},
		{name: "end date is inclusive", filter: report.TaskReportFilter{StartDate: "2024-01-06", EndDate: "2024-01-10"}, clients: []string{"Globex", "Initech"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preview, err := svc.PreviewTasks(context.Background(), tt.filter)
			require.NoError(t, err)

			var clients []string
			for _, row := range preview.Rows {
				clients = append(clients, row.ClientName)
			}
			assert.Equal(t, tt.clients, clients)
			assert.Equal(t, len(tt.clients), preview.Total)
			assert.Equal(t, []string{report.AllEmployees, "Alice", "Bob"}, preview.Employees)
		})
	}
}

func TestExportTasks_Success(t *testing.T) {
	repo := &fakeReportRepository{tasks: []task.Task{
		taskOn(t, "Alice", "Acme", "2024-01-05T10:00:00Z"),
		taskOn(t, "Alice", "Globex", "2024-01-06T10:00:00Z"),
		taskOn(t, "Bob", "Initech", "2024-01-07T10:00:00Z"),
	}}
	svc := newTestService(&fakeAttendanceService{}, repo)

	file, err := svc.ExportTasks(context.Background(), report.TaskReportFilter{})

	require.NoError(t, err)
	assert.Equal(t, "Work_Report_2024-03-09.xlsx", file.Name)

	f := openWorkbook(t, file.Data)
	rows, err := f.GetRows("Task Analysis")
	require.NoError(t, err)
	assert.Equal(t, []string{"", "ALICE", "BOB"}, rows[0])
	assert.Equal(t, []string{"WORKS", "ACME FULL PAGE", "INITECH FULL PAGE"}, rows[1])
	assert.Equal(t, []string{"", "GLOBEX FULL PAGE"}, rows[2])

	merges, err := f.GetMergeCells("Task Analysis")
	require.NoError(t, err)
	require.Len(t, merges, 1)
	assert.Equal(t, "A2", merges[0].GetStartAxis())
	assert.Equal(t, "A3", merges[0].GetEndAxis())
}

func TestExportTasks_NoMatches(t *testing.T) {
	repo := &fakeReportRepository{tasks: []task.Task{taskOn(t, "Alice", "Acme", "2024-01-05T10:00:00Z")}}
	svc := newTestService(&fakeAttendanceService{}, repo)

	_, err := svc.ExportTasks(context.Background(), report.TaskReportFilter{Employee: "Bob"})

	assert.ErrorIs(t, err, report.ErrNoDataFound)
}

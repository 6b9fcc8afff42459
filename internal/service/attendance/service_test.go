package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/adspro/dashboard-backend-go/internal/domain/attendance"
	"github.com/adspro/dashboard-backend-go/internal/domain/employee"
	"github.com/adspro/dashboard-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepository struct {
	entries []attendance.ReportEntry
	staff   []attendance.StaffStatus
	results []attendance.ActionResult

	action attendance.Action
	ids    []string
}

func (f *fakeAttendanceRepository) ListReport(ctx context.Context, filter attendance.ReportFilter) ([]attendance.ReportEntry, error) {
	return f.entries, nil
}

func (f *fakeAttendanceRepository) ListStatus(ctx context.Context) ([]attendance.StaffStatus, error) {
	return f.staff, nil
}

func (f *fakeAttendanceRepository) Act(ctx context.Context, action attendance.Action, employeeIDs []string) ([]attendance.ActionResult, error) {
	f.action = action
	f.ids = employeeIDs
	return f.results, nil
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

// ===== STATUS TESTS =====

func TestStatus_FiltersBySearchAndDate(t *testing.T) {
	// Arrange
	repo := &fakeAttendanceRepository{staff: []attendance.StaffStatus{
		{ID: "1", Name: "Alice Smith", AttendanceStatus: attendance.StatusCheckedIn, LastTime: timePtr(time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC))},
		{ID: "2", Name: "Bob Stone", LastTime: timePtr(time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC))},
		{ID: "3", Name: "Alicia Keys"},
	}}
	svc := NewAttendanceService(repo)

	// Act
	bySearch, err := svc.Status(context.Background(), attendance.StatusFilter{Search: "ALI"})
	require.NoError(t, err)
	byDate, err := svc.Status(context.Background(), attendance.StatusFilter{StartDate: "2024-01-01", EndDate: "2024-01-10"})
	require.NoError(t, err)

	// Assert
	assert.Equal(t, 2, bySearch.Total)
	assert.Equal(t, "Alice Smith", bySearch.Staff[0].Name)
	assert.Equal(t, "Alicia Keys", bySearch.Staff[1].Name)
	assert.Equal(t, attendance.StatusCheckedOut, bySearch.Staff[1].AttendanceStatus)
	assert.Nil(t, bySearch.Staff[1].LastTime)

	require.Equal(t, 1, byDate.Total)
	assert.Equal(t, "1", byDate.Staff[0].ID)
	require.NotNil(t, byDate.Staff[0].LastTime)
	assert.Equal(t, "2024-01-05T09:00:00Z", *byDate.Staff[0].LastTime)
}

func TestStatus_NeverLoggedEntries(t *testing.T) {
	repo := &fakeAttendanceRepository{staff: []attendance.StaffStatus{
		{ID: "1", Name: "Alice Smith", LastTime: timePtr(time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC))},
		{ID: "3", Name: "Alicia Keys"},
	}}
	svc := NewAttendanceService(repo)

	endOnly, err := svc.Status(context.Background(), attendance.StatusFilter{EndDate: "2024-01-10"})
	require.NoError(t, err)
	startOnly, err := svc.Status(context.Background(), attendance.StatusFilter{StartDate: "2024-01-01"})
	require.NoError(t, err)

	assert.Equal(t, 2, endOnly.Total)
	require.Equal(t, 1, startOnly.Total)
	assert.Equal(t, "1", startOnly.Staff[0].ID)
}

func TestStatus_InvalidRange(t *testing.T) {
	svc := NewAttendanceService(&fakeAttendanceRepository{})

	_, err := svc.Status(context.Background(), attendance.StatusFilter{StartDate: "2024-01-10", EndDate: "2024-01-01"})

	var validationErrs validator.ValidationErrors
	assert.True(t, errors.As(err, &validationErrs))
}

// ===== BULK ACTION TESTS =====

func TestCheckIn_Summarizes(t *testing.T) {
	repo := &fakeAttendanceRepository{results: []attendance.ActionResult{
		{EmployeeID: "1", Status: attendance.ResultSuccess},
		{EmployeeID: "2", Status: attendance.ResultUpdated},
		{EmployeeID: "3", Status: attendance.ResultSkipped},
		{EmployeeID: "4", Status: "error"},
	}}
	svc := NewAttendanceService(repo)

	summary, err := svc.CheckIn(context.Background(), attendance.BulkActionRequest{EmployeeIDs: []string{"1", "2", "3", "4"}})

	require.NoError(t, err)
	assert.Equal(t, attendance.ActionCheckIn, repo.action)
	assert.Equal(t, []string{"1", "2", "3", "4"}, repo.ids)
	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, "Successfully check-in 2 staff. 1 status conflicts skipped.", summary.Message())
}

func TestCheckOut_EmptySelection(t *testing.T) {
	repo := &fakeAttendanceRepository{}
	svc := NewAttendanceService(repo)

	_, err := svc.CheckOut(context.Background(), attendance.BulkActionRequest{})

	var validationErrs validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	assert.Contains(t, validationErrs.ToMap(), "employeeIds")
	assert.Empty(t, repo.action)
}

// ===== REPORT RECORD TESTS =====

func TestListRecords_ConvertsEntries(t *testing.T) {
	repo := &fakeAttendanceRepository{entries: []attendance.ReportEntry{
		{Employee: &employee.Ref{ID: "e1", Name: "Alice"}, Date: "2024-01-01", CheckIn: strPtr("2024-01-01T09:00:00.000Z")},
	}}
	svc := NewAttendanceService(repo)

	records, err := svc.ListRecords(context.Background(), attendance.ReportFilter{})

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Alice", records[0].EmployeeName)
	require.NotNil(t, records[0].CheckIn)
	assert.Nil(t, records[0].CheckOut)
}

func TestListRecords_RejectsMissingEmployee(t *testing.T) {
	repo := &fakeAttendanceRepository{entries: []attendance.ReportEntry{
		{Employee: &employee.Ref{ID: "e1", Name: "Alice"}, Date: "2024-01-01"},
		{Date: "2024-01-01", CheckIn: strPtr("2024-01-01T09:00:00Z")},
	}}
	svc := NewAttendanceService(repo)

	_, err := svc.ListRecords(context.Background(), attendance.ReportFilter{})

	assert.ErrorIs(t, err, attendance.ErrInvalidReportEntry)
	assert.Contains(t, err.Error(), "entry 1")
}

func TestListRecords_RejectsBadTimestamp(t *testing.T) {
	repo := &fakeAttendanceRepository{entries: []attendance.ReportEntry{
		{Employee: &employee.Ref{ID: "e1", Name: "Alice"}, Date: "2024-01-01", CheckOut: strPtr("yesterday")},
	}}
	svc := NewAttendanceService(repo)

	_, err := svc.ListRecords(context.Background(), attendance.ReportFilter{})

	assert.ErrorIs(t, err, attendance.ErrInvalidReportEntry)
}

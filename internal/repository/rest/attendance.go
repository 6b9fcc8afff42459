package rest

import (
	"context"
	"fmt"

	"github.com/adspro/dashboard-backend-go/internal/domain/attendance"
	"github.com/adspro/dashboard-backend-go/internal/pkg/backend"
)

type attendanceRepositoryImpl struct {
	client *backend.Client
}

func NewAttendanceRepository(client *backend.Client) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{client: client}
}

// ListReport implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListReport(ctx context.Context, filter attendance.ReportFilter) ([]attendance.ReportEntry, error) {
	sess, err := GetSession(ctx)
	if err != nil {
		return nil, err
	}

	var entries []attendance.ReportEntry
	if err := r.client.Get(ctx, sess, "/attendance/report", filter.Query(), &entries); err != nil {
		return nil, fmt.Errorf("failed to fetch attendance report: %w", err)
	}
	return entries, nil
}

// ListStatus implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListStatus(ctx context.Context) ([]attendance.StaffStatus, error) {
	sess, err := GetSession(ctx)
	if err != nil {
		return nil, err
	}

	var staff []attendance.StaffStatus
	if err := r.client.Get(ctx, sess, "/attendance/status", nil, &staff); err != nil {
		return nil, fmt.Errorf("failed to fetch attendance status: %w", err)
	}
	return staff, nil
}

// Act implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Act(ctx context.Context, action attendance.Action, employeeIDs []string) ([]attendance.ActionResult, error) {
	if !action.Valid() {
		return nil, fmt.Errorf("%w: %q", attendance.ErrUnknownAction, action)
	}

	sess, err := GetSession(ctx)
	if err != nil {
		return nil, err
	}

	body := attendance.BulkActionRequest{EmployeeIDs: employeeIDs}
	var resp struct {
		Results []attendance.ActionResult `json:"results"`
	}
	if err := r.client.Post(ctx, sess, "/attendance/"+string(action), body, &resp); err != nil {
		return nil, fmt.Errorf("failed to %s: %w", action, err)
	}
	return resp.Results, nil
}

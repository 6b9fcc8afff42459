package attendance

import (
	"context"
	"log/slog"
	"time"

	"github.com/adspro/dashboard-backend-go/internal/domain/attendance"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{attendanceRepo: attendanceRepo}
}

// Status implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Status(ctx context.Context, filter attendance.StatusFilter) (attendance.StatusResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.StatusResponse{}, err
	}

	staff, err := s.attendanceRepo.ListStatus(ctx)
	if err != nil {
		return attendance.StatusResponse{}, err
	}

	resp := attendance.StatusResponse{Staff: make([]attendance.StaffStatusResponse, 0, len(staff))}
	for _, st := range staff {
		if !filter.Matches(st) {
			continue
		}
		row := attendance.StaffStatusResponse{
			ID:               st.ID,
			Name:             st.Name,
			AttendanceStatus: st.CurrentStatus(),
		}
		if st.LastTime != nil {
			last := st.LastTime.Format(time.RFC3339)
			row.LastTime = &last
		}
		resp.Staff = append(resp.Staff, row)
	}
	resp.Total = len(resp.Staff)
	return resp, nil
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.BulkActionRequest) (attendance.ActionSummary, error) {
	return s.act(ctx, attendance.ActionCheckIn, req)
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.BulkActionRequest) (attendance.ActionSummary, error) {
	return s.act(ctx, attendance.ActionCheckOut, req)
}

func (s *AttendanceServiceImpl) act(ctx context.Context, action attendance.Action, req attendance.BulkActionRequest) (attendance.ActionSummary, error) {
	if err := req.Validate(); err != nil {
		return attendance.ActionSummary{}, err
	}

	results, err := s.attendanceRepo.Act(ctx, action, req.EmployeeIDs)
	if err != nil {
		return attendance.ActionSummary{}, err
	}

	summary := attendance.Summarize(action, results)
	slog.Info("Bulk attendance processed", "action", action, "requested", len(req.EmployeeIDs), "succeeded", summary.Succeeded, "skipped", summary.Skipped)
	return summary, nil
}

// ListRecords implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListRecords(ctx context.Context, filter attendance.ReportFilter) ([]attendance.Record, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	entries, err := s.attendanceRepo.ListReport(ctx, filter)
	if err != nil {
		return nil, err
	}

	records, err := attendance.ToRecords(entries)
	if err != nil {
		slog.Error("Backend sent a malformed attendance entry", "error", err)
		return nil, err
	}
	return records, nil
}

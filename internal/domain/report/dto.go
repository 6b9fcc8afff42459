package report

import (
	"time"

	"github.com/adspro/dashboard-backend-go/internal/domain/task"
	"github.com/adspro/dashboard-backend-go/internal/pkg/validator"
)

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	AllEmployees = "All Employees"
	Unassigned   = "Unassigned"
)

// ========================================
// ATTENDANCE EXPORT
// ========================================

type AttendanceExportRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	// Timezone is the viewer's IANA zone; empty uses the configured report zone.
	Timezone string `json:"timezone"`
}

func (r *AttendanceExportRequest) Validate() error {
	errs := validator.ValidateDateRange("startDate", r.StartDate, "endDate", r.EndDate)

	if r.Timezone != "" {
		if _, err := time.LoadLocation(r.Timezone); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "timezone",
				Message: "timezone must be a valid IANA time zone",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// TASK REPORT
// ========================================

type TaskReportFilter struct {
	Employee  string `json:"employee"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

func (f *TaskReportFilter) Validate() error {
	if errs := validator.ValidateDateRange("startDate", f.StartDate, "endDate", f.EndDate); len(errs) > 0 {
		return errs
	}
	return nil
}

// Matches applies the employee and assigned-date filters. Both date bounds are
// whole days in loc; tasks without an assigned date fail any bound.
func (f TaskReportFilter) Matches(t task.Task, loc *time.Location) bool {
	name := t.EmployeeName()
	if name == "" {
		name = Unassigned
	}
	if f.Employee != "" && f.Employee != AllEmployees && f.Employee != name {
		return false
	}

	if f.StartDate == "" && f.EndDate == "" {
		return true
	}
	if t.AssignedDate == nil {
		return false
	}

	if f.StartDate != "" {
		start, err := time.ParseInLocation("2006-01-02", f.StartDate, loc)
		if err != nil || t.AssignedDate.Before(start) {
			return false
		}
	}
	if f.EndDate != "" {
		end, err := time.ParseInLocation("2006-01-02", f.EndDate, loc)
		if err != nil || !t.AssignedDate.Before(end.AddDate(0, 0, 1)) {
			return false
		}
	}
	return true
}

type TaskPreview struct {
	Rows      []task.TaskResponse `json:"rows"`
	Employees []string            `json:"employees"`
	Total     int                 `json:"total"`
}

// ========================================
// EXPORT OUTPUT
// ========================================

// ExportFile is a generated workbook ready to be downloaded or stored.
type ExportFile struct {
	ID          string
	Name        string
	ContentType string
	Data        []byte
}

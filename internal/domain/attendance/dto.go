package attendance

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/adspro/dashboard-backend-go/internal/domain/employee"
	"github.com/adspro/dashboard-backend-go/internal/pkg/validator"
)

// ========================================
// REPORT ENTRIES
// ========================================

// ReportEntry is the backend's JSON shape for one attendance record
type ReportEntry struct {
	Employee *employee.Ref `json:"employeeId"`
	Date     string        `json:"date"`
	CheckIn  *string       `json:"checkIn"`
	CheckOut *string       `json:"checkOut"`
}

// ToRecord validates the entry and converts it to a Record.
func (e ReportEntry) ToRecord() (Record, error) {
	if e.Employee == nil || validator.IsEmpty(e.Employee.ID) {
		return Record{}, fmt.Errorf("%w: employeeId is missing", ErrInvalidReportEntry)
	}
	if _, ok := validator.IsValidDate(e.Date); !ok {
		return Record{}, fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrInvalidReportEntry, e.Date)
	}

	checkIn, err := parseTimestamp("checkIn", e.CheckIn)
	if err != nil {
		return Record{}, err
	}
	checkOut, err := parseTimestamp("checkOut", e.CheckOut)
	if err != nil {
		return Record{}, err
	}

	return Record{
		EmployeeID:   e.Employee.ID,
		EmployeeName: e.Employee.Name,
		Date:         e.Date,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
	}, nil
}

// ToRecords converts entries in order and stops at the first malformed one.
func ToRecords(entries []ReportEntry) ([]Record, error) {
	records := make([]Record, 0, len(entries))
	for i, entry := range entries {
		record, err := entry.ToRecord()
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		records = append(records, record)
	}
	return records, nil
}

func parseTimestamp(field string, value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, ok := validator.IsValidDateTime(*value)
	if !ok {
		return nil, fmt.Errorf("%w: %s %q is not an ISO-8601 timestamp", ErrInvalidReportEntry, field, *value)
	}
	return &t, nil
}

// ReportFilter narrows the attendance report by date
type ReportFilter struct {
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

func (f ReportFilter) Validate() error {
	if errs := validator.ValidateDateRange("startDate", f.StartDate, "endDate", f.EndDate); len(errs) > 0 {
		return errs
	}
	return nil
}

// Query encodes the filter the way the backend expects it
func (f ReportFilter) Query() url.Values {
	q := url.Values{}
	if f.StartDate != "" {
		q.Set("startDate", f.StartDate)
	}
	if f.EndDate != "" {
		q.Set("endDate", f.EndDate)
	}
	return q
}

// ========================================
// STAFF STATUS
// ========================================

type StatusFilter struct {
	Search    string `json:"search,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

func (f StatusFilter) Validate() error {
	if errs := validator.ValidateDateRange("startDate", f.StartDate, "endDate", f.EndDate); len(errs) > 0 {
		return errs
	}
	return nil
}

// Matches applies the case-insensitive name search and the last-log date range.
// Entries that never logged fail a start bound but pass an end-only bound.
func (f StatusFilter) Matches(s StaffStatus) bool {
	if !strings.Contains(strings.ToLower(s.Name), strings.ToLower(f.Search)) {
		return false
	}
	if f.StartDate == "" && f.EndDate == "" {
		return true
	}
	logDate := ""
	if s.LastTime != nil {
		logDate = s.LastTime.UTC().Format("2006-01-02")
	}
	if f.StartDate != "" && logDate < f.StartDate {
		return false
	}
	if f.EndDate != "" && logDate > f.EndDate {
		return false
	}
	return true
}

type StaffStatusResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	AttendanceStatus string  `json:"attendance_status"`
	LastTime         *string `json:"last_time"`
}

type StatusResponse struct {
	Staff []StaffStatusResponse `json:"staff"`
	Total int                   `json:"total"`
}

// ========================================
// BULK CHECK-IN / CHECK-OUT
// ========================================

type Action string

const (
	ActionCheckIn  Action = "check-in"
	ActionCheckOut Action = "check-out"
)

func (a Action) Valid() bool {
	return a == ActionCheckIn || a == ActionCheckOut
}

type BulkActionRequest struct {
	EmployeeIDs []string `json:"employeeIds"`
}

func (r *BulkActionRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.EmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeIds",
			Message: "select at least one employee",
		})
	}

	for i, id := range r.EmployeeIDs {
		if validator.IsEmpty(id) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("employeeIds[%d]", i),
				Message: "employee id must not be empty",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ActionSummary struct {
	Action    Action         `json:"action"`
	Succeeded int            `json:"succeeded"`
	Skipped   int            `json:"skipped"`
	Failed    int            `json:"failed"`
	Results   []ActionResult `json:"results"`
}

// Summarize counts per-employee outcomes. success and updated both count as done.
func Summarize(action Action, results []ActionResult) ActionSummary {
	summary := ActionSummary{Action: action, Results: results}
	for _, r := range results {
		switch r.Status {
		case ResultSuccess, ResultUpdated:
			summary.Succeeded++
		case ResultSkipped:
			summary.Skipped++
		default:
			summary.Failed++
		}
	}
	if summary.Results == nil {
		summary.Results = []ActionResult{}
	}
	return summary
}

// Message is the one-line notification shown after a bulk action
func (s ActionSummary) Message() string {
	msg := fmt.Sprintf("Successfully %s %d staff.", s.Action, s.Succeeded)
	if s.Skipped > 0 {
		msg += fmt.Sprintf(" %d status conflicts skipped.", s.Skipped)
	}
	return msg
}

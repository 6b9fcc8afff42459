package attendance

import (
	"time"
)

// Record is one check-in/check-out cycle of an employee on a calendar date.
// Several records may share the same employee and date.
type Record struct {
	EmployeeID   string
	EmployeeName string
	Date         string // YYYY-MM-DD
	CheckIn      *time.Time
	CheckOut     *time.Time
}

// StaffStatus is one row of the daily attendance directory
type StaffStatus struct {
	ID               string     `json:"_id"`
	Name             string     `json:"name"`
	AttendanceStatus string     `json:"attendanceStatus"`
	LastTime         *time.Time `json:"lastTime"`
}

const (
	StatusCheckedIn  = "Checked-In"
	StatusCheckedOut = "Checked-Out"
)

// CurrentStatus falls back to Checked-Out when the backend sends no status.
func (s StaffStatus) CurrentStatus() string {
	if s.AttendanceStatus == "" {
		return StatusCheckedOut
	}
	return s.AttendanceStatus
}

// ActionResult is the backend's per-employee outcome of a bulk check-in/out
type ActionResult struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name,omitempty"`
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
}

const (
	ResultSuccess = "success"
	ResultUpdated = "updated"
	ResultSkipped = "skipped"
)

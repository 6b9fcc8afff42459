package task

import (
	"time"

	"github.com/adspro/dashboard-backend-go/internal/domain/employee"
)

type Task struct {
	ID                string        `json:"_id"`
	Employee          *employee.Ref `json:"employeeId"`
	ClientName        string        `json:"clientName"`
	Category          string        `json:"category"`
	TaskType          string        `json:"taskType"`
	CustomPageDetails string        `json:"customPageDetails,omitempty"`
	Status            string        `json:"status"`
	AssignedDate      *time.Time    `json:"assignedDate"`
}

const (
	CategoryFlyer = "Flyer Design"

	PageFull   = "Full Page"
	PageHalf   = "Half Page"
	PageCustom = "Custom Page"

	// TypeStandard is stored for every category that has no page options.
	TypeStandard = "Standard"

	StatusAssigned   = "Assigned"
	StatusProgress   = "Progress"
	StatusCorrection = "Correction"
	StatusApproved   = "Approved"
)

var (
	Categories = []string{CategoryFlyer, "Poster Design", "Video Creation", "Web Development", "Branding"}
	PageTypes  = []string{PageFull, PageHalf, PageCustom}
	Statuses   = []string{StatusAssigned, StatusProgress, StatusCorrection, StatusApproved}
)

// EmployeeName is empty for unassigned tasks.
func (t Task) EmployeeName() string {
	if t.Employee == nil {
		return ""
	}
	return t.Employee.Name
}

// WorkDetail is the short "<client> <work>" label used in reports.
func (t Task) WorkDetail() string {
	work := t.TaskType
	if t.TaskType == PageCustom {
		work = t.CustomPageDetails
	}
	return t.ClientName + " " + work
}

// Deletable reports whether work on the task has not started yet.
func (t Task) Deletable() bool {
	return t.Status == StatusAssigned
}

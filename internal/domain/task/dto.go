package task

import (
	"strings"
	"time"

	"github.com/adspro/dashboard-backend-go/internal/pkg/validator"
)

// ========================================
// ASSIGN
// ========================================

type AssignTaskRequest struct {
	EmployeeID        string `json:"employeeId"`
	Category          string `json:"category"`
	ClientName        string `json:"clientName"`
	TaskType          string `json:"taskType"`
	CustomPageDetails string `json:"customPageDetails"`
	Status            string `json:"status"`
}

// Validate checks the required fields, which depend on the category, and
// normalises the request into what the backend stores.
func (r *AssignTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category is required",
		})
	} else if !validator.IsInSlice(r.Category, Categories) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be one of: " + strings.Join(Categories, ", "),
		})
	}

	if validator.IsEmpty(r.ClientName) {
		errs = append(errs, validator.ValidationError{
			Field:   "clientName",
			Message: "clientName is required",
		})
	}

	isFlyer := r.Category == CategoryFlyer
	if isFlyer {
		if validator.IsEmpty(r.TaskType) {
			errs = append(errs, validator.ValidationError{
				Field:   "taskType",
				Message: "taskType is required for Flyer Design",
			})
		} else if !validator.IsInSlice(r.TaskType, PageTypes) {
			errs = append(errs, validator.ValidationError{
				Field:   "taskType",
				Message: "taskType must be one of: " + strings.Join(PageTypes, ", "),
			})
		} else if r.TaskType == PageCustom && validator.IsEmpty(r.CustomPageDetails) {
			errs = append(errs, validator.ValidationError{
				Field:   "customPageDetails",
				Message: "customPageDetails is required for Custom Page",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	if !isFlyer {
		r.TaskType = TypeStandard
	}
	if r.TaskType != PageCustom {
		r.CustomPageDetails = ""
	}
	r.Status = StatusAssigned
	return nil
}

// ========================================
// UPDATE
// ========================================

// Patch is the partial body sent to the backend on update
type Patch struct {
	TaskType          *string `json:"taskType,omitempty"`
	CustomPageDetails *string `json:"customPageDetails,omitempty"`
	Status            *string `json:"status,omitempty"`
}

type UpdateTaskRequest struct {
	ID                string `json:"-"`
	TaskType          string `json:"taskType"`
	CustomPageDetails string `json:"customPageDetails"`
}

func (r *UpdateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidObjectID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid identifier",
		})
	}

	if !validator.IsInSlice(r.TaskType, PageTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "taskType",
			Message: "taskType must be one of: " + strings.Join(PageTypes, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Patch clears custom page details unless the task is a custom page.
func (r UpdateTaskRequest) Patch() Patch {
	details := ""
	if r.TaskType == PageCustom {
		details = r.CustomPageDetails
	}
	taskType := r.TaskType
	return Patch{TaskType: &taskType, CustomPageDetails: &details}
}

type UpdateStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidObjectID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid identifier",
		})
	}

	if !validator.IsInSlice(r.Status, Statuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(Statuses, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// RESPONSE
// ========================================

type TaskResponse struct {
	ID                string  `json:"id"`
	EmployeeID        *string `json:"employee_id"`
	EmployeeName      string  `json:"employee_name"`
	ClientName        string  `json:"client_name"`
	Category          string  `json:"category"`
	TaskType          string  `json:"task_type"`
	CustomPageDetails string  `json:"custom_page_details,omitempty"`
	WorkDetail        string  `json:"work_detail"`
	Status            string  `json:"status"`
	AssignedDate      *string `json:"assigned_date"`
}

func ToResponse(t Task) TaskResponse {
	resp := TaskResponse{
		ID:                t.ID,
		EmployeeName:      "Unassigned",
		ClientName:        t.ClientName,
		Category:          t.Category,
		TaskType:          t.TaskType,
		CustomPageDetails: t.CustomPageDetails,
		WorkDetail:        t.WorkDetail(),
		Status:            t.Status,
	}
	if t.Employee != nil {
		id := t.Employee.ID
		resp.EmployeeID = &id
		if t.Employee.Name != "" {
			resp.EmployeeName = t.Employee.Name
		}
	}
	if t.AssignedDate != nil {
		assigned := t.AssignedDate.Format(time.RFC3339)
		resp.AssignedDate = &assigned
	}
	return resp
}

func ToResponses(list []Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(list))
	for _, t := range list {
		out = append(out, ToResponse(t))
	}
	return out
}

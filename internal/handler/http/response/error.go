package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/adspro/dashboard-backend-go/internal/domain/attendance"
	"github.com/adspro/dashboard-backend-go/internal/domain/auth"
	"github.com/adspro/dashboard-backend-go/internal/domain/client"
	"github.com/adspro/dashboard-backend-go/internal/domain/employee"
	"github.com/adspro/dashboard-backend-go/internal/domain/report"
	"github.com/adspro/dashboard-backend-go/internal/domain/task"
	"github.com/adspro/dashboard-backend-go/internal/pkg/backend"
	"github.com/adspro/dashboard-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token revoked")
	case errors.Is(err, auth.ErrMissingToken), errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, backend.ErrUnauthorized), errors.Is(err, backend.ErrNoSession):
		Unauthorized(w, "Session expired, please log in again")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrInvalidEmployeeID):
		BadRequest(w, "Invalid employee ID", nil)

	// Client domain errors
	case errors.Is(err, client.ErrClientNotFound):
		NotFound(w, "Client not found")
	case errors.Is(err, client.ErrInvalidClientID):
		BadRequest(w, "Invalid client ID", nil)

	// Task domain errors
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, task.ErrTaskNotDeletable):
		Conflict(w, "Only tasks that are still Assigned can be deleted")
	case errors.Is(err, task.ErrInvalidTaskID):
		BadRequest(w, "Invalid task ID", nil)

	// Report domain errors
	case errors.Is(err, report.ErrNoDataFound):
		NotFound(w, "No records found for the selected range.")
	case errors.Is(err, report.ErrReportGenerationFailed):
		slog.Error("Report generation failed", "error", err)
		InternalServerError(w, "Failed to generate report")
	case errors.Is(err, attendance.ErrInvalidReportEntry):
		slog.Error("Malformed attendance data from backend", "error", err)
		BadGateway(w, "Backend returned malformed attendance data")

	default:
		handleBackendError(w, err)
	}
}

// handleBackendError passes client-side backend rejections through and
// reports everything else from the backend as a gateway failure.
func handleBackendError(w http.ResponseWriter, err error) {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusBadRequest, http.StatusUnprocessableEntity:
			BadRequest(w, apiErr.Message, nil)
		case http.StatusNotFound:
			NotFound(w, apiErr.Message)
		case http.StatusConflict:
			Conflict(w, apiErr.Message)
		default:
			BadGateway(w, apiErr.Message)
		}
		return
	}

	switch {
	case errors.Is(err, backend.ErrNetwork):
		slog.Error("Backend unreachable", "error", err)
		BadGateway(w, "Backend is unreachable")
	case errors.Is(err, backend.ErrInvalidResponse):
		slog.Error("Backend returned an invalid response", "error", err)
		BadGateway(w, "Backend returned an invalid response")
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}

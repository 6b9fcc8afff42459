package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adspro/dashboard-backend-go/internal/domain/attendance"
	"github.com/adspro/dashboard-backend-go/internal/domain/auth"
	"github.com/adspro/dashboard-backend-go/internal/domain/report"
	"github.com/adspro/dashboard-backend-go/internal/domain/task"
	"github.com/adspro/dashboard-backend-go/internal/pkg/backend"
	"github.com/adspro/dashboard-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var body Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestCreated(t *testing.T) {
	rec := httptest.NewRecorder()

	Created(rec, "Client created", map[string]string{"id": "1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decode(t, rec)
	assert.True(t, body.Success)
	assert.Equal(t, "Client created", body.Message)
	assert.Nil(t, body.Error)
}

func TestFile(t *testing.T) {
	rec := httptest.NewRecorder()

	File(rec, "AdsPro_Attendance_2024-01-01.xlsx", report.ContentTypeXLSX, "exp-1", []byte("xlsx"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, report.ContentTypeXLSX, rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="AdsPro_Attendance_2024-01-01.xlsx"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "4", rec.Header().Get("Content-Length"))
	assert.Equal(t, "exp-1", rec.Header().Get("X-Export-ID"))
	assert.Equal(t, "xlsx", rec.Body.String())
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "validation", err: validator.ValidationErrors{{Field: "email", Message: "email is required"}}, status: http.StatusUnprocessableEntity, code: "VALIDATION_ERROR"},
		{name: "credentials wrap api error", err: fmt.Errorf("%w: %w", auth.ErrInvalidCredentials, &backend.APIError{StatusCode: http.StatusBadRequest}), status: http.StatusUnauthorized, code: "UNAUTHORIZED"},
		{name: "backend 401", err: &backend.APIError{StatusCode: http.StatusUnauthorized}, status: http.StatusUnauthorized, code: "UNAUTHORIZED"},
		{name: "no session", err: backend.ErrNoSession, status: http.StatusUnauthorized, code: "UNAUTHORIZED"},
		{name: "task not deletable", err: task.ErrTaskNotDeletable, status: http.StatusConflict, code: "CONFLICT"},
		{name: "no data", err: report.ErrNoDataFound, status: http.StatusNotFound, code: "NOT_FOUND"},
		{name: "generation failed", err: fmt.Errorf("%w: disk", report.ErrReportGenerationFailed), status: http.StatusInternalServerError, code: "INTERNAL_SERVER_ERROR"},
		{name: "malformed entry", err: attendance.ErrInvalidReportEntry, status: http.StatusBadGateway, code: "BAD_GATEWAY"},
		{name: "backend 422", err: &backend.APIError{StatusCode: http.StatusUnprocessableEntity, Message: "bad"}, status: http.StatusBadRequest, code: "BAD_REQUEST"},
		{name: "backend 503", err: &backend.APIError{StatusCode: http.StatusServiceUnavailable, Message: "down"}, status: http.StatusBadGateway, code: "BAD_GATEWAY"},
		{name: "network", err: fmt.Errorf("%w: dial", backend.ErrNetwork), status: http.StatusBadGateway, code: "BAD_GATEWAY"},
		{name: "unknown", err: errors.New("boom"), status: http.StatusInternalServerError, code: "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			HandleError(rec, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			body := decode(t, rec)
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.code, body.Error.Code)
		})
	}
}

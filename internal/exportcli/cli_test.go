package exportcli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/adspro/dashboard-backend-go/internal/config"
	"github.com/adspro/dashboard-backend-go/internal/domain/auth"
	"github.com/adspro/dashboard-backend-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, backendURL string) *config.Config {
	t.Helper()
	return &config.Config{
		Backend: config.BackendConfig{BaseURL: backendURL, Timeout: time.Second},
		Report: config.ReportConfig{
			Timezone:   "UTC",
			DateOrder:  "chronological",
			FilePrefix: "AdsPro_Attendance",
		},
		Storage: config.StorageConfig{
			BasePath: t.TempDir(),
			BaseURL:  "http://localhost:8080/exports",
		},
	}
}

func fakeBackend(t *testing.T, reportBody string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			var body map[string]string
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Error(err)
			}
			if body["password"] != "secret" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
				return
			}
			_, _ = w.Write([]byte(`{"token":"opaque-token"}`))
		case "/attendance/report":
			if r.Header.Get("Authorization") != "Bearer opaque-token" {
				t.Errorf("unexpected authorization %q", r.Header.Get("Authorization"))
			}
			_, _ = w.Write([]byte(reportBody))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestExecute_Attendance(t *testing.T) {
	srv := fakeBackend(t, `[{"employeeId":{"_id":"e1","name":"Alice"},"date":"2024-01-01","checkIn":"2024-01-01T09:00:00Z"}]`)
	cfg := testConfig(t, srv.URL)

	var out bytes.Buffer
	err := Execute(context.Background(), cfg, []string{"attendance", "-email", "admin@adspro.com", "-password", "secret", "-start", "2024-01-01"}, &out)

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "attendance/AdsPro_Attendance_2024-01-01.xlsx", lines[0])
	assert.Equal(t, "http://localhost:8080/exports/attendance/AdsPro_Attendance_2024-01-01.xlsx", lines[1])
	assert.FileExists(t, filepath.Join(cfg.Storage.BasePath, "attendance", "AdsPro_Attendance_2024-01-01.xlsx"))
}

func TestExecute_NoRecords(t *testing.T) {
	srv := fakeBackend(t, `[]`)
	cfg := testConfig(t, srv.URL)

	err := Execute(context.Background(), cfg, []string{"attendance", "-email", "admin@adspro.com", "-password", "secret"}, &bytes.Buffer{})

	assert.ErrorIs(t, err, report.ErrNoDataFound)
}

func TestExecute_BadCredentials(t *testing.T) {
	srv := fakeBackend(t, `[]`)
	cfg := testConfig(t, srv.URL)

	err := Execute(context.Background(), cfg, []string{"tasks", "-email", "admin@adspro.com", "-password", "wrong"}, &bytes.Buffer{})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestExecute_Usage(t *testing.T) {
	cfg := testConfig(t, "http://127.0.0.1:1")

	assert.ErrorIs(t, Execute(context.Background(), cfg, nil, &bytes.Buffer{}), ErrUsage)
	assert.ErrorIs(t, Execute(context.Background(), cfg, []string{"payroll"}, &bytes.Buffer{}), ErrUsage)
}

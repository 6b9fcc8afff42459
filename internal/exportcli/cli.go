package exportcli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/adspro/dashboard-backend-go/internal/config"
	"github.com/adspro/dashboard-backend-go/internal/domain/auth"
	"github.com/adspro/dashboard-backend-go/internal/domain/report"
	"github.com/adspro/dashboard-backend-go/internal/pkg/backend"
	"github.com/adspro/dashboard-backend-go/internal/pkg/session"
	"github.com/adspro/dashboard-backend-go/internal/pkg/storage"
	"github.com/adspro/dashboard-backend-go/internal/repository/rest"
	attendanceService "github.com/adspro/dashboard-backend-go/internal/service/attendance"
	authService "github.com/adspro/dashboard-backend-go/internal/service/auth"
	"github.com/adspro/dashboard-backend-go/internal/service/file"
	reportService "github.com/adspro/dashboard-backend-go/internal/service/report"
)

var ErrUsage = errors.New("usage")

func usageError() error {
	return fmt.Errorf("%w: export <attendance|tasks> [-email ...] [-password ...] [-start YYYY-MM-DD] [-end YYYY-MM-DD]", ErrUsage)
}

// app holds the collaborators one CLI run needs
type app struct {
	auth    auth.AuthService
	reports report.ReportService
	files   file.FileService
}

func newApp(cfg *config.Config) (*app, error) {
	location, err := cfg.Report.Location()
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_TIMEZONE: %w", err)
	}
	dateOrder, err := report.ParseDateOrder(cfg.Report.DateOrder)
	if err != nil {
		return nil, err
	}

	local, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		return nil, err
	}

	registry := session.NewRegistry()
	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, backend.WithRevoker(registry))
	attendanceSvc := attendanceService.NewAttendanceService(rest.NewAttendanceRepository(client))

	return &app{
		auth: authService.NewAuthService(rest.NewAuthRepository(client), registry),
		reports: reportService.NewReportService(attendanceSvc, rest.NewReportRepository(client), reportService.Options{
			Location:   location,
			DateOrder:  dateOrder,
			FilePrefix: cfg.Report.FilePrefix,
		}),
		files: file.NewFileService(local),
	}, nil
}

// Execute signs in, writes the requested export to storage and signs out again.
func Execute(ctx context.Context, cfg *config.Config, args []string, stdout io.Writer) error {
	if len(args) < 1 {
		return usageError()
	}
	kind := args[0]
	if kind != file.KindAttendance && kind != file.KindTasks {
		return usageError()
	}

	fs := flag.NewFlagSet(kind, flag.ContinueOnError)
	fs.SetOutput(stdout)
	email := fs.String("email", os.Getenv("ADSPRO_EMAIL"), "admin email (default $ADSPRO_EMAIL)")
	password := fs.String("password", os.Getenv("ADSPRO_PASSWORD"), "admin password (default $ADSPRO_PASSWORD)")
	start := fs.String("start", "", "first day to include, YYYY-MM-DD")
	end := fs.String("end", "", "last day to include, YYYY-MM-DD")
	tz := fs.String("tz", "", "IANA time zone for attendance clock times")
	employee := fs.String("employee", report.AllEmployees, "employee name for the task report")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	a, err := newApp(cfg)
	if err != nil {
		return err
	}

	sess, err := a.auth.Login(ctx, auth.LoginRequest{Email: *email, Password: *password})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	defer func() {
		if err := a.auth.Logout(ctx, sess); err != nil {
			slog.Warn("Logout failed", "error", err)
		}
	}()
	ctx = session.NewContext(ctx, sess)

	var export report.ExportFile
	switch kind {
	case file.KindAttendance:
		export, err = a.reports.ExportAttendance(ctx, report.AttendanceExportRequest{
			StartDate: *start,
			EndDate:   *end,
			Timezone:  *tz,
		})
	case file.KindTasks:
		export, err = a.reports.ExportTasks(ctx, report.TaskReportFilter{
			Employee:  *employee,
			StartDate: *start,
			EndDate:   *end,
		})
	}
	if err != nil {
		return fmt.Errorf("export %s: %w", kind, err)
	}

	stored, err := a.files.SaveExport(ctx, kind, export)
	if err != nil {
		return err
	}

	slog.Info("Export saved", "kind", kind, "export_id", export.ID, "key", stored.Key)
	fmt.Fprintf(stdout, "%s\n%s\n", stored.Key, stored.URL)
	return nil
}

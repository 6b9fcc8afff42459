package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adspro/dashboard-backend-go/internal/config"
	"github.com/adspro/dashboard-backend-go/internal/domain/report"
	appHTTP "github.com/adspro/dashboard-backend-go/internal/handler/http"
	"github.com/adspro/dashboard-backend-go/internal/pkg/backend"
	"github.com/adspro/dashboard-backend-go/internal/pkg/cron"
	"github.com/adspro/dashboard-backend-go/internal/pkg/session"
	"github.com/adspro/dashboard-backend-go/internal/repository/rest"
	attendanceService "github.com/adspro/dashboard-backend-go/internal/service/attendance"
	serviceAuth "github.com/adspro/dashboard-backend-go/internal/service/auth"
	clientService "github.com/adspro/dashboard-backend-go/internal/service/client"
	dashboardService "github.com/adspro/dashboard-backend-go/internal/service/dashboard"
	employeeService "github.com/adspro/dashboard-backend-go/internal/service/employee"
	reportService "github.com/adspro/dashboard-backend-go/internal/service/report"
	taskService "github.com/adspro/dashboard-backend-go/internal/service/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: appHTTP.LogLevel(cfg.App.LogLevel),
	})))

	location, err := cfg.Report.Location()
	if err != nil {
		slog.Error("Invalid report timezone", "error", err)
		os.Exit(1)
	}
	dateOrder, err := report.ParseDateOrder(cfg.Report.DateOrder)
	if err != nil {
		slog.Error("Invalid report date order", "error", err)
		os.Exit(1)
	}

	registry := session.NewRegistry()
	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, backend.WithRevoker(registry))

	authRepo := rest.NewAuthRepository(client)
	employeeRepo := rest.NewEmployeeRepository(client)
	clientRepo := rest.NewClientRepository(client)
	taskRepo := rest.NewTaskRepository(client)
	attendanceRepo := rest.NewAttendanceRepository(client)
	reportRepo := rest.NewReportRepository(client)
	dashboardRepo := rest.NewDashboardRepository(client)

	authService := serviceAuth.NewAuthService(authRepo, registry)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	clientSvc := clientService.NewClientService(clientRepo)
	taskSvc := taskService.NewTaskService(taskRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, taskRepo)
	reportSvc := reportService.NewReportService(attendanceSvc, reportRepo, reportService.Options{
		Location:   location,
		DateOrder:  dateOrder,
		FilePrefix: cfg.Report.FilePrefix,
	})

	router := appHTTP.NewRouter(cfg, authService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authService),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Client:     appHTTP.NewClientHandler(clientSvc),
		Task:       appHTTP.NewTaskHandler(taskSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scheduler := cron.NewScheduler()
	cron.NewSessionJobs(registry).RegisterJobs(scheduler)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", fmt.Sprintf("http://localhost%s", server.Addr), "backend", cfg.Backend.BaseURL)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
		}
	}
}

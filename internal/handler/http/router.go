package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/adspro/dashboard-backend-go/internal/config"
	"github.com/adspro/dashboard-backend-go/internal/domain/auth"
	"github.com/adspro/dashboard-backend-go/internal/handler/http/middleware"
	"github.com/adspro/dashboard-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

// Handlers groups the HTTP handlers mounted by NewRouter
type Handlers struct {
	Auth       AuthHandler
	Dashboard  DashboardHandler
	Employee   EmployeeHandler
	Client     ClientHandler
	Task       TaskHandler
	Attendance AttendanceHandler
	Report     ReportHandler
}

func NewRouter(cfg *config.Config, authService auth.AuthService, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "development")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "adspro-dashboard"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Export-ID"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  LogLevel(cfg.App.LogLevel),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", h.Auth.Login)

		// Requires a signed-in session
		r.Group(func(r chi.Router) {
			r.Use(middleware.SessionRequired(authService))

			r.Post("/auth/logout", h.Auth.Logout)

			r.Get("/dashboard/overview", h.Dashboard.GetOverview)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Post("/", h.Employee.Create)
				r.Get("/active", h.Employee.ListActive)
				r.Patch("/{id}", h.Employee.Update)
				r.Delete("/{id}", h.Employee.Delete)
			})

			r.Route("/clients", func(r chi.Router) {
				r.Get("/", h.Client.List)
				r.Post("/", h.Client.Create)
				r.Patch("/{id}", h.Client.Update)
				r.Delete("/{id}", h.Client.Delete)
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", h.Task.List)
				r.Post("/", h.Task.Assign)
				r.Patch("/{id}", h.Task.UpdateDetails)
				r.Patch("/{id}/status", h.Task.UpdateStatus)
				r.Delete("/{id}", h.Task.Delete)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/status", h.Attendance.Status)
				r.Post("/check-in", h.Attendance.CheckIn)
				r.Post("/check-out", h.Attendance.CheckOut)
				r.Get("/export", h.Report.ExportAttendance)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/tasks", h.Report.PreviewTasks)
				r.Get("/tasks/export", h.Report.ExportTasks)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})
	return r
}

// LogLevel parses LOG_LEVEL, falling back to info.
func LogLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}

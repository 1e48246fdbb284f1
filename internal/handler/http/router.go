package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/prostaff/attendance-backend-go/internal/handler/http/middleware"
	"github.com/prostaff/attendance-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	Env         string
	UploadsDir  string
	UploadsPath string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	employeeHandler EmployeeHandler,
	leaveHandler LeaveHandler,
	settingsHandler SettingsHandler,
	ledgerHandler LedgerHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// Stored check-in photos.
	if cfg.UploadsDir != "" {
		fs := http.StripPrefix(cfg.UploadsPath, http.FileServer(http.Dir(cfg.UploadsDir)))
		r.Get(cfg.UploadsPath+"/*", fs.ServeHTTP)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
		})

		// Terminal submissions need no session; the photo is the identity check.
		r.Post("/attendance", attendanceHandler.Submit)
		r.Get("/employees", employeeHandler.List)

		// Requires admin authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
			r.Use(middleware.AdminOnly)

			r.Get("/attendance/today", attendanceHandler.ListToday)

			r.Post("/employees", employeeHandler.Create)
			r.Delete("/employees/{id}", employeeHandler.Delete)

			r.Get("/leaves", leaveHandler.List)
			r.Post("/leaves", leaveHandler.Create)
			r.Delete("/leaves/{id}", leaveHandler.Delete)

			r.Get("/settings", settingsHandler.Get)
			r.Put("/settings", settingsHandler.Update)

			r.Get("/ledger", ledgerHandler.List)
			r.Get("/ledger/export", ledgerHandler.Export)

			r.Get("/dashboard/summary", dashboardHandler.Summary)
		})
	})
	return r
}

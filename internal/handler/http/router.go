package http

import (
	"log/slog"
	"os"

	"github.com/chronotrack/chronotrack-backend-go/internal/config"
	"github.com/chronotrack/chronotrack-backend-go/internal/handler/http/middleware"
	"github.com/chronotrack/chronotrack-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	userHandler UserHandler,
	attendanceHandler AttendanceHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "chronotrack"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)

			// Requires authentication
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Get("/me", authHandler.Me)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock", attendanceHandler.Clock)

				r.Route("/me", func(r chi.Router) {
					r.Get("/daily", attendanceHandler.GetDaily)
					r.Get("/weekly", attendanceHandler.GetWeekly)
					r.Get("/monthly", attendanceHandler.GetMonthly)
					r.Get("/stats", attendanceHandler.GetMyStats)
				})

				// Manager or admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOrAdmin)
					r.Get("/", attendanceHandler.List)
					r.Get("/{id}", attendanceHandler.Get)
					r.Get("/users/{id}/stats", attendanceHandler.GetUserStats)
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/manual", attendanceHandler.AddManual)
					r.Delete("/{id}", attendanceHandler.Delete)
				})
			})

			r.Route("/users", func(r chi.Router) {
				r.Post("/change-password", userHandler.ChangePassword)
				r.Post("/avatar", userHandler.UploadAvatar)
				r.Get("/{id}/avatar", userHandler.Avatar)

				// Manager or admin
				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOrAdmin)
					r.Get("/", userHandler.List)
					r.Get("/{id}", userHandler.Get)
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", userHandler.Create)
					r.Put("/{id}", userHandler.Update)
					r.Delete("/{id}", userHandler.Delete)
				})
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", userHandler.ListDepartments)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", userHandler.CreateDepartment)
				})
			})
		})
	})

	return r
}

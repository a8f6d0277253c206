package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/taskora/taskora-api/internal/api/handlers"
	"github.com/taskora/taskora-api/internal/api/middleware"
	"github.com/taskora/taskora-api/internal/service"
	"go.uber.org/zap"
)

func NewRouter(services *service.Services, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth, logger)
	projectHandler := handlers.NewProjectHandler(services.Project, logger)
	taskHandler := handlers.NewTaskHandler(services.Task, logger)
	pomodoroHandler := handlers.NewPomodoroHandler(services.Pomodoro, logger)
	analyticsHandler := handlers.NewAnalyticsHandler(services.Analytics, logger)
	userHandler := handlers.NewUserHandler(services.User, logger)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public auth routes
		r.Post("/auth/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth, logger))

			// Project routes, with nested tasks
			r.Route("/projects", func(r chi.Router) {
				r.Get("/", projectHandler.List)
				r.Post("/", projectHandler.Create)
				r.Put("/{projectId}", projectHandler.Update)
				r.Delete("/{projectId}", projectHandler.Delete)

				r.Route("/{projectId}/tasks", func(r chi.Router) {
					r.Get("/", taskHandler.List)
					r.Post("/", taskHandler.Create)
					r.Put("/{taskId}", taskHandler.Update)
					r.Delete("/{taskId}", taskHandler.Delete)
				})
			})

			// Pomodoro log
			r.Post("/pomodoro/sessions", pomodoroHandler.Create)

			// Analytics
			r.Route("/analytics", func(r chi.Router) {
				r.Get("/summary", analyticsHandler.Summary)
				r.Get("/dashboard", analyticsHandler.Dashboard)
			})

			// Own profile
			r.Put("/user/profile", userHandler.UpdateProfile)

			// User management (admin-only, enforced in the service)
			r.Route("/users", func(r chi.Router) {
				r.Get("/", userHandler.List)
				r.Post("/", userHandler.Create)
				r.Put("/{id}", userHandler.Update)
			})
		})
	})

	return r
}

package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Marcosdev03/projeto-checklistv02/internal/api"
	apiMiddleware "github.com/Marcosdev03/projeto-checklistv02/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordVerifier,
		app.accessTokenLifetime(),
	)
	userHandler := api.NewUserHandler(
		app.userService,
		app.jwtService,
		app.accessTokenLifetime(),
		app.logger,
	)
	taskHandler := api.NewTaskHandler(app.taskService, app.logger)
	resetHandler := api.NewPasswordResetHandler(app.resetService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/accounts", userHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)
		r.Post("/password-reset", resetHandler.Request)
		r.Post("/password-reset/confirm", resetHandler.Confirm)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Account endpoints
			r.Get("/accounts/me", userHandler.GetMe)
			r.Get("/accounts/{id}", userHandler.Get)
			r.Put("/accounts/{id}", userHandler.Update)
			r.Patch("/accounts/{id}", userHandler.Update)
			r.Delete("/accounts/{id}", userHandler.Delete)

			// Task endpoints
			r.Post("/tasks", taskHandler.Create)
			r.Get("/tasks", taskHandler.List)
			r.Get("/tasks/{id}", taskHandler.Get)
			r.Put("/tasks/{id}", taskHandler.Update)
			r.Patch("/tasks/{id}", taskHandler.Update)
			r.Delete("/tasks/{id}", taskHandler.Delete)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}

package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/myworld/myworld-api/internal/api"
	apiMiddleware "github.com/myworld/myworld-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.userService, app.jwtService)
	catalogHandler := api.NewCatalogHandler(app.catalogService)
	sessionHandler := api.NewSessionHandler(app.sessionService)
	appointmentHandler := api.NewAppointmentHandler(app.appointmentService)
	reminderHandler := api.NewReminderHandler(app.reminderService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Catalog endpoints
			r.Get("/dimensions", catalogHandler.ListDimensions)
			r.Post("/dimensions", catalogHandler.CreateDimension)
			r.Put("/dimensions/{id}", catalogHandler.UpdateDimension)
			r.Delete("/dimensions/{id}", catalogHandler.DeleteDimension)
			r.Get("/questions", catalogHandler.ListQuestions)
			r.Post("/questions", catalogHandler.CreateQuestion)
			r.Put("/questions/{id}", catalogHandler.UpdateQuestion)
			r.Delete("/questions/{id}", catalogHandler.DeleteQuestion)
			r.Get("/questions/{id}/options", catalogHandler.ListAnswerOptions)
			r.Post("/questions/{id}/options", catalogHandler.CreateAnswerOption)

			// Assessment session endpoints
			r.Post("/sessions/start", sessionHandler.Start)
			r.Post("/sessions/{id}/answers", sessionHandler.SubmitAnswer)
			r.Post("/sessions/{id}/complete", sessionHandler.Complete)
			r.Get("/sessions/{id}/result", sessionHandler.GetResult)

			// Appointment endpoints
			r.Get("/appointments", appointmentHandler.List)
			r.Post("/appointments", appointmentHandler.Create)
			r.Get("/appointments/{id}", appointmentHandler.Get)
			r.Put("/appointments/{id}", appointmentHandler.Update)
			r.Delete("/appointments/{id}", appointmentHandler.Delete)

			// Reminder endpoints
			r.Get("/reminders", reminderHandler.List)
			r.Post("/reminders", reminderHandler.Create)
			r.Get("/reminders/{id}", reminderHandler.Get)
			r.Put("/reminders/{id}", reminderHandler.Update)
			r.Delete("/reminders/{id}", reminderHandler.Delete)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}

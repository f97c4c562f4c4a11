package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/flashdeck/internal/api"
	apiMiddleware "github.com/phrazzld/flashdeck/internal/api/middleware"
	"github.com/rs/cors"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	authHandler := api.NewAuthHandler(app.authService, app.jwtService, app.session, app.logger)
	userHandler := api.NewUserHandler(app.authService, app.logger)
	flashcardHandler := api.NewFlashcardHandler(app.provider, app.logger)
	sessionHandler := api.NewSessionHandler(app.session, app.provider, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		r.Get("/categories", flashcardHandler.Categories)
		r.Get("/flashcards", flashcardHandler.List)
		r.Get("/flashcards/stats", flashcardHandler.Stats)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/auth/logout", authHandler.Logout)
			r.Get("/auth/me", authHandler.Me)
			r.Get("/users/{id}", userHandler.GetUser)

			r.Get("/session", sessionHandler.Get)
			r.Post("/session/flashcards/reload", sessionHandler.ReloadFlashcards)
			r.Delete("/session/flashcards", sessionHandler.ClearFlashcards)
			r.Put("/session/category", sessionHandler.SetCategory)
			r.Get("/session/progress", sessionHandler.Progress)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return cors.New(cors.Options{
		AllowedOrigins: app.config.Server.CORSAllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "Authorization", "Accept", "Accept-Language"},
		MaxAge:         86400,
	}).Handler(r)
}

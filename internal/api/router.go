package api

import (
	"navigation-service/internal/api/handlers"
	"navigation-service/internal/platform/metrics"
	"navigation-service/internal/ports"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// Handlers only see ports; concrete adapters are chosen in cmd/server.
func NewRouter(store ports.SessionStore, geocoder ports.Geocoder) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(loggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	sessions := &handlers.SessionHandler{Store: store, Geocoder: geocoder}
	navigation := &handlers.NavigationHandler{Store: store}

	r.Get("/health", handlers.Health)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Get("/templates", handlers.Templates)

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", sessions.Create)
		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/", sessions.Get)
			r.Delete("/", sessions.Delete)
			r.Post("/reset", sessions.Reset)
			r.Put("/locations/{slot}", sessions.SetLocation)
			r.Get("/navigation", navigation.Navigation)
			r.Post("/messages", navigation.Message)
		})
	})

	return r
}

/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the chi router, middleware stack, and route definitions. This
  is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for the frontend

ROUTE GROUPS:
  /api/users/{uid}/settings       Settings document
  /api/users/{uid}/entries        Entry CRUD + batch operations
  /api/users/{uid}/reports/*      Computed balances, weeks, vacation,
                                  milestones
  /healthz                        Liveness probe

REFERENCE DATE:
  Every report accepts ?today=YYYY-MM-DD. The handlers resolve it once at
  the boundary (defaulting to the server's current date) and pass it down;
  the accounting package itself never reads the clock.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/users/{uid}", func(r chi.Router) {
		r.Get("/settings", h.GetSettings)
		r.Put("/settings", h.SaveSettings)

		r.Route("/entries", func(r chi.Router) {
			r.Get("/", h.GetEntries)
			r.Post("/batch", h.BatchSaveEntries)
			r.Post("/batch-delete", h.BatchDeleteEntries)
			r.Put("/{date}", h.SaveEntry)
			r.Delete("/{date}", h.DeleteEntry)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/year/{year}", h.GetYearReport)
			r.Get("/weeks", h.GetWeeksReport)
			r.Get("/vacation", h.GetVacationReport)
			r.Get("/milestones", h.GetMilestonesReport)
		})
	})

	return r
}

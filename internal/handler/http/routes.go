package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api", func(r chi.Router) {
		r.Post("/steam-sync", h.steamSync)
		// GET exists only to hand the wrong method a friendlier answer than 404
		r.Get("/steam-sync", h.steamSyncMissingProfile)
		r.Get("/version", h.getServerVersion)
	})

	return router
}

package server

import (
	"github.com/go-chi/chi/v5"

	"github.com/andon-systems/andon/internal/server/handlers"
)

func (s *Server) registerRoutes(r chi.Router) {
	h := handlers.New(s.engine, s.store)
	h.SetLogger(s.logger)

	r.Route("/api", func(r chi.Router) {
		// Health
		r.Get("/health", h.Health)

		// Plant metadata
		r.Get("/workcenters", h.Workcenters)
		r.Get("/shifts", h.Shifts)

		// Dashboard
		r.Get("/dashboard", h.Dashboard)
		r.Get("/timeline", h.Timeline)
		r.Get("/kpis", h.KPIs)

		// Snapshot
		r.Post("/refresh", h.Refresh)
	})
}

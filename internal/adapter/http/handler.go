package httpadapter

import (
	"net/http"

	"slotmarket/internal/core/port"

	"github.com/go-chi/chi/v5"
	"log/slog"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the booking use case to execute business logic and a
// logger for structured logging. Routes are registered on a chi.Router.
//
// Identity is a collaborator: the fronting auth layer verifies the user
// and forwards the id and role in X-User-ID / X-User-Role headers, which
// this adapter trusts as given.
type Handler struct {
	svc    port.BookingUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.BookingUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/slots", h.handleListSlots)
		r.Get("/slots/available", h.handleAvailableSlots)
		r.Get("/slots/{id}/booked-dates", h.handleBookedDates)

		r.Post("/ads", h.handleCreateBooking)
		r.Get("/ads", h.handleMyBookings)
		r.Get("/ads/pending", h.handlePendingBookings)
		r.Get("/ads/active", h.handleActiveBookings)
		r.Patch("/ads/{id}/status", h.handleUpdateStatus)

		r.Post("/ads/{id}/view", h.handleTrackView)
		r.Get("/ads/{id}/analytics", h.handleAnalytics)

		r.Get("/stats/overview", h.handleStatsOverview)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleListSlots returns the whole slot catalog.
func (h *Handler) handleListSlots(w http.ResponseWriter, r *http.Request) {
	slots, err := h.svc.ListSlots(r.Context(), false)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, slots)
}

// handleAvailableSlots returns only the slots open for booking.
func (h *Handler) handleAvailableSlots(w http.ResponseWriter, r *http.Request) {
	slots, err := h.svc.ListSlots(r.Context(), true)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, slots)
}

// handleBookedDates returns the occupied date ranges of one slot so
// clients can grey out taken dates in their pickers.
func (h *Handler) handleBookedDates(w http.ResponseWriter, r *http.Request) {
	periods, err := h.svc.BookedDates(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, periods)
}

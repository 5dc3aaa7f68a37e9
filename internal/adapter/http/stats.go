package httpadapter

import "net/http"

// handleStatsOverview returns the admin dashboard summary: pending and
// active booking counts plus this month's revenue from estimated costs.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.OverviewStats(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}

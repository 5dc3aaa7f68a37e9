package httpadapter

import (
	"encoding/json"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"

	"slotmarket/internal/core/port"
)

type trackViewRequest struct {
	IPAddress *string `json:"ipAddress"`
	UserAgent *string `json:"userAgent"`
	Referrer  *string `json:"referrer"`
}

// handleTrackView records one impression. The body is optional; absent
// metadata falls back to what the request itself carries. Tracking is
// open to the public site, so no identity headers are required here.
func (h *Handler) handleTrackView(w http.ResponseWriter, r *http.Request) {
	var req trackViewRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid JSON"})
			return
		}
	}

	if req.IPAddress == nil {
		addr := clientIP(r)
		req.IPAddress = &addr
	}
	if req.UserAgent == nil {
		if ua := r.UserAgent(); ua != "" {
			req.UserAgent = &ua
		}
	}
	if req.Referrer == nil {
		if ref := r.Referer(); ref != "" {
			req.Referrer = &ref
		}
	}

	err := h.svc.TrackView(r.Context(), port.TrackViewInput{
		AdID:      chi.URLParam(r, "id"),
		IPAddress: req.IPAddress,
		UserAgent: req.UserAgent,
		Referrer:  req.Referrer,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"message": "view tracked"})
}

// clientIP strips the port from the request's remote address. RemoteAddr
// is host:port; only the host belongs in the view log.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// handleAnalytics returns a booking with its aggregated view counts.
func (h *Handler) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.svc.GetAnalytics(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, analytics)
}

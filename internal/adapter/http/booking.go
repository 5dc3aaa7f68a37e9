package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"slotmarket/internal/core/domain"
	"slotmarket/internal/core/port"
)

// createBookingRequest is the wire shape of an advertiser's booking
// submission. Dates are day-granular; budget accepts a JSON number or
// string. slotIds is the canonical plural form, a single-slot request is
// a one-element list.
type createBookingRequest struct {
	Title       string          `json:"title"`
	ImageURL    *string         `json:"imageUrl"`
	AdType      string          `json:"adType"`
	PaymentType string          `json:"paymentType"`
	StartDate   string          `json:"startDate"`
	EndDate     string          `json:"endDate"`
	Budget      decimal.Decimal `json:"budget"`
	TargetViews *int64          `json:"targetViews"`
	SlotIDs     []string        `json:"slotIds"`
}

// parseDate accepts a plain date or a full RFC3339 timestamp; only the
// date part is significant.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// handleCreateBooking processes a booking submission. Validation,
// conflict detection and cost estimation all happen in the use case; the
// handler only translates the wire shape and the error taxonomy. A
// successful booking is returned with HTTP 201 and status pending.
func (h *Handler) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	advertiserID, _, ok := h.identity(w, r)
	if !ok {
		return
	}

	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid JSON"})
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid startDate"})
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid endDate"})
		return
	}

	booking, err := h.svc.CreateBooking(r.Context(), port.CreateBookingInput{
		AdvertiserID: advertiserID,
		Title:        req.Title,
		ImageURL:     req.ImageURL,
		AdType:       domain.AdType(req.AdType),
		PaymentType:  domain.PaymentType(req.PaymentType),
		StartDate:    start,
		EndDate:      end,
		Budget:       req.Budget,
		TargetViews:  req.TargetViews,
		SlotIDs:      req.SlotIDs,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, booking)
}

// handleMyBookings lists the calling advertiser's bookings.
func (h *Handler) handleMyBookings(w http.ResponseWriter, r *http.Request) {
	advertiserID, _, ok := h.identity(w, r)
	if !ok {
		return
	}
	bookings, err := h.svc.ListMyBookings(r.Context(), advertiserID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, bookings)
}

func (h *Handler) handlePendingBookings(w http.ResponseWriter, r *http.Request) {
	h.listByStatus(w, r, domain.StatusPending)
}

func (h *Handler) handleActiveBookings(w http.ResponseWriter, r *http.Request) {
	h.listByStatus(w, r, domain.StatusActive)
}

func (h *Handler) listByStatus(w http.ResponseWriter, r *http.Request, status domain.Status) {
	bookings, err := h.svc.ListByStatus(r.Context(), status)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, bookings)
}

type updateStatusRequest struct {
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejectionReason"`
}

// handleUpdateStatus drives the booking status machine. The role header
// decides authority; illegal transitions come back as 400, non-admin
// callers as 403.
func (h *Handler) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	_, role, ok := h.identity(w, r)
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid JSON"})
		return
	}

	booking, err := h.svc.UpdateStatus(r.Context(), port.UpdateStatusInput{
		AdID:            chi.URLParam(r, "id"),
		Role:            role,
		Status:          domain.Status(req.Status),
		RejectionReason: req.RejectionReason,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, booking)
}

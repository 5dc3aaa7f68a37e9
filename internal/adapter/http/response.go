package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"slotmarket/internal/core/domain"
)

type errorResponse struct {
	Message string `json:"message"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; log and move on
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps the domain error taxonomy onto HTTP status codes:
// validation and slot mismatch are client errors, conflicts are 409 so
// callers can offer a pick-another-date retry, unknown ids are 404 and
// authorization failures 403. Anything else is an internal error that is
// logged but not leaked.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var (
		validationErr *domain.ValidationError
		mismatchErr   *domain.SlotMismatchError
		conflictErr   *domain.ConflictError
	)
	switch {
	case errors.As(err, &validationErr), errors.As(err, &mismatchErr), errors.Is(err, domain.ErrSlotNotFound):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
	case errors.As(err, &conflictErr):
		h.writeJSON(w, http.StatusConflict, errorResponse{Message: err.Error()})
	case errors.Is(err, domain.ErrBookingNotFound):
		h.writeJSON(w, http.StatusNotFound, errorResponse{Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		h.writeJSON(w, http.StatusForbidden, errorResponse{Message: err.Error()})
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal error"})
	}
}

// identity reads the verified user id and role forwarded by the auth
// collaborator. An empty id means the request never passed
// authentication and is rejected with 401.
func (h *Handler) identity(w http.ResponseWriter, r *http.Request) (userID, role string, ok bool) {
	userID = r.Header.Get("X-User-ID")
	role = r.Header.Get("X-User-Role")
	if userID == "" {
		h.writeJSON(w, http.StatusUnauthorized, errorResponse{Message: "missing user identity"})
		return "", "", false
	}
	return userID, role, true
}

package usecase

import (
	"context"

	"slotmarket/internal/core/domain"
	"slotmarket/internal/core/port"
)

// Cache is the optional read-side cache used by the use case. It is
// satisfied by *cache.Cache; a nil cache disables caching entirely.
type Cache interface {
	GetSlots(ctx context.Context, onlyAvailable bool) ([]domain.Slot, error)
	SetSlots(ctx context.Context, onlyAvailable bool, slots []domain.Slot) error
	IncrDailyViews(ctx context.Context, adID string) error
}

// BookingUseCase implements port.BookingUseCase. It orchestrates the
// slot catalog, the booking index and the cost estimator; all state
// lives behind the repository ports.
type BookingUseCase struct {
	slots    port.SlotRepository
	bookings port.BookingRepository
	cache    Cache
}

// NewBookingUseCase creates the use case. cache may be nil.
func NewBookingUseCase(slots port.SlotRepository, bookings port.BookingRepository, cache Cache) *BookingUseCase {
	return &BookingUseCase{slots: slots, bookings: bookings, cache: cache}
}

// CreateBooking is the only mutating entry point that creates a booking
// and its slot bookings. Ordering is load-bearing: input validation
// before any database touch, existence and type checks next, conflict
// check before cost computation, persist only after everything passed.
// The repository repeats the conflict check inside its transaction, so
// a race lost after our pre-check still surfaces as ConflictError.
func (u *BookingUseCase) CreateBooking(ctx context.Context, in port.CreateBookingInput) (*domain.BookingWithSlots, error) {
	if in.Title == "" {
		return nil, domain.Validationf("title is required")
	}
	if !in.AdType.Valid() {
		return nil, domain.Validationf("unknown ad type %q", in.AdType)
	}
	if !in.PaymentType.Valid() {
		return nil, domain.Validationf("unknown payment type %q", in.PaymentType)
	}
	if in.Budget.IsNegative() {
		return nil, domain.Validationf("budget must not be negative")
	}
	if in.TargetViews != nil && *in.TargetViews < 0 {
		return nil, domain.Validationf("target views must not be negative")
	}
	if len(in.SlotIDs) == 0 {
		return nil, domain.Validationf("at least one slot must be selected")
	}

	period := domain.NewPeriod(in.StartDate, in.EndDate)
	if !period.Valid() {
		return nil, domain.Validationf("start date must be before or equal to end date")
	}

	seen := make(map[string]struct{}, len(in.SlotIDs))
	for _, id := range in.SlotIDs {
		if _, dup := seen[id]; dup {
			return nil, domain.Validationf("duplicate slots detected, select each slot only once")
		}
		seen[id] = struct{}{}
	}

	slotsByID, err := u.slots.GetSlotsByIDs(ctx, in.SlotIDs)
	if err != nil {
		return nil, err
	}

	// Keep slots in request order so mismatch and conflict messages are
	// deterministic.
	slots := make([]domain.Slot, 0, len(in.SlotIDs))
	var mismatched []string
	for _, id := range in.SlotIDs {
		s := slotsByID[id]
		if s.AdType != in.AdType {
			mismatched = append(mismatched, s.Name)
		}
		slots = append(slots, s)
	}
	if len(mismatched) > 0 {
		return nil, &domain.SlotMismatchError{AdType: in.AdType, SlotNames: mismatched}
	}

	conflicts, err := u.bookings.FindConflictingSlots(ctx, in.SlotIDs, period)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, &domain.ConflictError{SlotName: conflicts[0]}
	}

	cost := domain.EstimateCost(slots, in.PaymentType, period, in.TargetViews)

	booking := &domain.Booking{
		AdvertiserID:  in.AdvertiserID,
		Title:         in.Title,
		ImageURL:      in.ImageURL,
		AdType:        in.AdType,
		PaymentType:   in.PaymentType,
		Period:        period,
		Budget:        in.Budget,
		TargetViews:   in.TargetViews,
		EstimatedCost: cost.Total,
	}
	if err = u.bookings.CreateBooking(ctx, booking, in.SlotIDs); err != nil {
		return nil, err
	}
	return &domain.BookingWithSlots{Booking: *booking, Slots: slots}, nil
}

// UpdateStatus drives a booking through the status machine. Transition
// authority is admin-only; the transition table in the domain package
// decides legality. Rejecting stores the reason verbatim, every other
// transition clears it.
func (u *BookingUseCase) UpdateStatus(ctx context.Context, in port.UpdateStatusInput) (*domain.Booking, error) {
	if in.Role != "admin" {
		return nil, domain.ErrForbidden
	}
	if !in.Status.Valid() {
		return nil, domain.Validationf("unknown status %q", in.Status)
	}

	current, err := u.bookings.GetBookingWithSlots(ctx, in.AdID)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransitionTo(in.Status) {
		return nil, domain.Validationf("cannot transition booking from %q to %q", current.Status, in.Status)
	}

	var reason *string
	if in.Status == domain.StatusRejected {
		if in.RejectionReason == nil || *in.RejectionReason == "" {
			return nil, domain.Validationf("rejecting a booking requires a rejection reason")
		}
		reason = in.RejectionReason
	}
	return u.bookings.UpdateStatus(ctx, in.AdID, in.Status, reason)
}

// TrackView records one impression. The durable write goes to Postgres;
// the redis day counter is best-effort and its failure never fails the
// request.
func (u *BookingUseCase) TrackView(ctx context.Context, in port.TrackViewInput) error {
	view := &domain.AdView{
		AdID:      in.AdID,
		IPAddress: in.IPAddress,
		UserAgent: in.UserAgent,
		Referrer:  in.Referrer,
	}
	if err := u.bookings.TrackView(ctx, view); err != nil {
		return err
	}
	if u.cache != nil {
		_ = u.cache.IncrDailyViews(ctx, in.AdID)
	}
	return nil
}

// GetAnalytics returns the booking together with its aggregated view
// counts.
func (u *BookingUseCase) GetAnalytics(ctx context.Context, adID string) (*port.BookingAnalytics, error) {
	b, err := u.bookings.GetBookingWithSlots(ctx, adID)
	if err != nil {
		return nil, err
	}
	a, err := u.bookings.GetAdAnalytics(ctx, adID)
	if err != nil {
		return nil, err
	}
	return &port.BookingAnalytics{BookingWithSlots: *b, AdAnalytics: *a}, nil
}

// ListSlots serves the slot catalog, through the cache when one is
// configured. Cache failures fall through to the database.
func (u *BookingUseCase) ListSlots(ctx context.Context, onlyAvailable bool) ([]domain.Slot, error) {
	if u.cache != nil {
		if cached, err := u.cache.GetSlots(ctx, onlyAvailable); err == nil && cached != nil {
			return cached, nil
		}
	}
	slots, err := u.slots.ListSlots(ctx, onlyAvailable)
	if err != nil {
		return nil, err
	}
	if u.cache != nil {
		_ = u.cache.SetSlots(ctx, onlyAvailable, slots)
	}
	return slots, nil
}

// BookedDates returns the occupied periods of one slot.
func (u *BookingUseCase) BookedDates(ctx context.Context, slotID string) ([]domain.Period, error) {
	return u.slots.BookedPeriods(ctx, slotID)
}

// ListMyBookings returns the advertiser's bookings, newest first.
func (u *BookingUseCase) ListMyBookings(ctx context.Context, advertiserID string) ([]domain.BookingWithSlots, error) {
	return u.bookings.ListByAdvertiser(ctx, advertiserID)
}

// ListByStatus returns bookings in the given state for admin review.
func (u *BookingUseCase) ListByStatus(ctx context.Context, status domain.Status) ([]domain.BookingWithSlots, error) {
	if !status.Valid() {
		return nil, domain.Validationf("unknown status %q", status)
	}
	return u.bookings.ListByStatus(ctx, status)
}

// OverviewStats returns the admin dashboard summary.
func (u *BookingUseCase) OverviewStats(ctx context.Context) (*port.OverviewStats, error) {
	return u.bookings.GetOverviewStats(ctx)
}

var _ port.BookingUseCase = (*BookingUseCase)(nil)

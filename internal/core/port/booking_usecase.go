package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"slotmarket/internal/core/domain"
)

// BookingUseCase defines the business operations of the marketplace.
// This is the primary port into the application; mock implementations
// can be generated from it for testing.
type BookingUseCase interface {
	// CreateBooking validates the request, checks every requested slot
	// for conflicts, computes the estimated cost and persists the
	// booking atomically with status pending. It fails with
	// *domain.ValidationError, *domain.SlotMismatchError or
	// *domain.ConflictError; the request is all-or-nothing across slots.
	CreateBooking(ctx context.Context, in CreateBookingInput) (*domain.BookingWithSlots, error)

	// UpdateStatus drives a booking through the status machine. Only
	// admins may call it; illegal transitions fail with
	// *domain.ValidationError. Rejecting requires a reason, any other
	// transition clears it.
	UpdateStatus(ctx context.Context, in UpdateStatusInput) (*domain.Booking, error)

	// TrackView records one impression: appends to the view log and
	// atomically increments the booking's view counter. It is
	// independent of booking status.
	TrackView(ctx context.Context, in TrackViewInput) error

	// GetAnalytics returns a booking with its aggregated view counts.
	GetAnalytics(ctx context.Context, adID string) (*BookingAnalytics, error)

	// ListSlots returns the slot catalog; onlyAvailable restricts it to
	// slots open for booking.
	ListSlots(ctx context.Context, onlyAvailable bool) ([]domain.Slot, error)
	// BookedDates returns the occupied periods of one slot.
	BookedDates(ctx context.Context, slotID string) ([]domain.Period, error)

	// ListMyBookings returns the advertiser's bookings, newest first.
	ListMyBookings(ctx context.Context, advertiserID string) ([]domain.BookingWithSlots, error)
	// ListByStatus returns bookings in a given state for admin review.
	ListByStatus(ctx context.Context, status domain.Status) ([]domain.BookingWithSlots, error)
	// OverviewStats returns the admin dashboard summary.
	OverviewStats(ctx context.Context) (*OverviewStats, error)
}

// CreateBookingInput carries an advertiser's booking request. The
// advertiser id arrives already verified by the identity provider; the
// image URL is an opaque string resolved by the upload collaborator.
type CreateBookingInput struct {
	AdvertiserID string
	Title        string
	ImageURL     *string
	AdType       domain.AdType
	PaymentType  domain.PaymentType
	StartDate    time.Time
	EndDate      time.Time
	Budget       decimal.Decimal
	TargetViews  *int64
	SlotIDs      []string
}

// UpdateStatusInput carries an admin's transition request. Role comes
// from the identity provider and is trusted as given.
type UpdateStatusInput struct {
	AdID            string
	Role            string
	Status          domain.Status
	RejectionReason *string
}

// TrackViewInput carries the optional metadata of one impression.
type TrackViewInput struct {
	AdID      string
	IPAddress *string
	UserAgent *string
	Referrer  *string
}

// BookingAnalytics pairs a booking with its aggregated view counts.
type BookingAnalytics struct {
	domain.BookingWithSlots
	AdAnalytics
}

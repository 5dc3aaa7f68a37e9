package port

import (
	"context"

	"github.com/shopspring/decimal"

	"slotmarket/internal/core/domain"
)

// SlotRepository provides read-only access to the slot catalog. It is an
// outbound port; reads have no side effects and calling the same method
// twice with the same arguments returns identical data.
type SlotRepository interface {
	// GetSlotsByIDs returns exactly one slot per requested id. If any id
	// is absent it fails with domain.ErrSlotNotFound instead of returning
	// a partial result.
	GetSlotsByIDs(ctx context.Context, ids []string) (map[string]domain.Slot, error)
	// ListSlots returns the slot catalog, optionally restricted to slots
	// currently open for booking.
	ListSlots(ctx context.Context, onlyAvailable bool) ([]domain.Slot, error)
	// BookedPeriods returns the date ranges of occupying bookings for a
	// slot, for client-side date pickers.
	BookedPeriods(ctx context.Context, slotID string) ([]domain.Period, error)
}

// BookingRepository is the persistence layer for bookings: the booking
// index used for conflict queries plus the atomic commit path.
// Implementations must be concurrency-safe; CreateBooking must guarantee
// that the conflict check and the inserts are atomic with respect to
// other bookers, surfacing a lost race as *domain.ConflictError.
type BookingRepository interface {
	// FindConflictingSlots returns the names of the requested slots that
	// already have an occupying booking (status pending/approved/active)
	// overlapping the period. An empty result means the period is free.
	FindConflictingSlots(ctx context.Context, slotIDs []string, period domain.Period) ([]string, error)

	// CreateBooking persists the booking and one slot-booking row per
	// slot id inside a single transaction. Conflicts are re-checked
	// inside the transaction; on any failure nothing is persisted.
	CreateBooking(ctx context.Context, b *domain.Booking, slotIDs []string) error

	// GetBookingWithSlots returns a booking with its slots fully loaded,
	// or domain.ErrBookingNotFound.
	GetBookingWithSlots(ctx context.Context, id string) (*domain.BookingWithSlots, error)
	// ListByAdvertiser returns an advertiser's bookings, newest first.
	ListByAdvertiser(ctx context.Context, advertiserID string) ([]domain.BookingWithSlots, error)
	// ListByStatus returns bookings in the given state, newest first.
	ListByStatus(ctx context.Context, status domain.Status) ([]domain.BookingWithSlots, error)

	// UpdateStatus sets the booking's status and rejection reason and
	// returns the updated row. It does not validate the transition; that
	// is the use case's job.
	UpdateStatus(ctx context.Context, id string, status domain.Status, rejectionReason *string) (*domain.Booking, error)

	// TrackView appends an AdView row and atomically increments the
	// booking's view counter in the same transaction.
	TrackView(ctx context.Context, view *domain.AdView) error
	// GetAdAnalytics aggregates the view log for one booking.
	GetAdAnalytics(ctx context.Context, adID string) (*AdAnalytics, error)
	// GetOverviewStats aggregates booking counts and revenue for the
	// admin dashboard.
	GetOverviewStats(ctx context.Context) (*OverviewStats, error)
}

// AdAnalytics is the aggregated view-log shape consumed by dashboards.
type AdAnalytics struct {
	TotalViews     int64 `json:"totalViews"`
	ViewsToday     int64 `json:"viewsToday"`
	ViewsThisWeek  int64 `json:"viewsThisWeek"`
	ViewsThisMonth int64 `json:"viewsThisMonth"`
}

// OverviewStats summarises the marketplace for the admin dashboard.
// MonthlyRevenue sums the estimated cost of approved, active and
// completed bookings created in the current month.
type OverviewStats struct {
	PendingCount   int64           `json:"pendingAdsCount"`
	ActiveCount    int64           `json:"activeAdsCount"`
	MonthlyRevenue decimal.Decimal `json:"monthlyRevenue"`
}

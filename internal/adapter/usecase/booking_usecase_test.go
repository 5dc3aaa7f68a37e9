package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"slotmarket/internal/core/domain"
	"slotmarket/internal/core/port"
	"slotmarket/internal/core/port/mocks"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func bannerSlot(id, name, pricePerDay string) domain.Slot {
	return domain.Slot{
		ID:           id,
		Name:         name,
		AdType:       domain.AdTypeBanner,
		IsAvailable:  true,
		PricePerDay:  decimal.RequireFromString(pricePerDay),
		PricePerView: decimal.RequireFromString("50.0000"),
	}
}

func validInput() port.CreateBookingInput {
	return port.CreateBookingInput{
		AdvertiserID: "adv-1",
		Title:        "Spring campaign",
		AdType:       domain.AdTypeBanner,
		PaymentType:  domain.PaymentPeriod,
		StartDate:    day("2025-02-01"),
		EndDate:      day("2025-02-05"),
		Budget:       decimal.RequireFromString("500000.00"),
		SlotIDs:      []string{"s1", "s2"},
	}
}

func twoBannerSlots() map[string]domain.Slot {
	return map[string]domain.Slot{
		"s1": bannerSlot("s1", "Homepage Top Banner", "50000.00"),
		"s2": bannerSlot("s2", "Homepage Bottom Banner", "35000.00"),
	}
}

func TestCreateBookingSuccess(t *testing.T) {
	slots := mocks.NewMockSlotRepository(t)
	bookings := mocks.NewMockBookingRepository(t)
	in := validInput()

	slots.EXPECT().
		GetSlotsByIDs(mock.Anything, []string{"s1", "s2"}).
		Return(twoBannerSlots(), nil)
	bookings.EXPECT().
		FindConflictingSlots(mock.Anything, []string{"s1", "s2"}, mock.Anything).
		Return(nil, nil)
	bookings.EXPECT().
		CreateBooking(mock.Anything, mock.AnythingOfType("*domain.Booking"), []string{"s1", "s2"}).
		RunAndReturn(func(_ context.Context, b *domain.Booking, _ []string) error {
			b.ID = "ad-1"
			b.Status = domain.StatusPending
			return nil
		})

	svc := NewBookingUseCase(slots, bookings, nil)
	got, err := svc.CreateBooking(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, "ad-1", got.ID)
	require.Equal(t, domain.StatusPending, got.Status)

	// (50000 + 35000) * 5 days = 425000, plus 11% tax
	require.True(t, got.EstimatedCost.Equal(decimal.RequireFromString("471750.00")),
		"estimated cost = %s", got.EstimatedCost)

	// slots come back in request order
	require.Len(t, got.Slots, 2)
	require.Equal(t, "s1", got.Slots[0].ID)
	require.Equal(t, "s2", got.Slots[1].ID)
}

func TestCreateBookingValidation(t *testing.T) {
	negative := int64(-1)
	tests := []struct {
		name   string
		mutate func(*port.CreateBookingInput)
	}{
		{"empty title", func(in *port.CreateBookingInput) { in.Title = "" }},
		{"unknown ad type", func(in *port.CreateBookingInput) { in.AdType = "video" }},
		{"unknown payment type", func(in *port.CreateBookingInput) { in.PaymentType = "crypto" }},
		{"negative budget", func(in *port.CreateBookingInput) { in.Budget = decimal.RequireFromString("-1") }},
		{"negative target views", func(in *port.CreateBookingInput) { in.TargetViews = &negative }},
		{"no slots", func(in *port.CreateBookingInput) { in.SlotIDs = nil }},
		{"start after end", func(in *port.CreateBookingInput) {
			in.StartDate = day("2025-02-10")
			in.EndDate = day("2025-02-05")
		}},
		{"duplicate slots", func(in *port.CreateBookingInput) { in.SlotIDs = []string{"s1", "s1"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no expectations: validation must fail before any repository touch
			slots := mocks.NewMockSlotRepository(t)
			bookings := mocks.NewMockBookingRepository(t)
			svc := NewBookingUseCase(slots, bookings, nil)

			in := validInput()
			tt.mutate(&in)

			_, err := svc.CreateBooking(context.Background(), in)
			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
		})
	}
}

func TestCreateBookingSlotNotFound(t *testing.T) {
	slots := mocks.NewMockSlotRepository(t)
	bookings := mocks.NewMockBookingRepository(t)

	slots.EXPECT().
		GetSlotsByIDs(mock.Anything, []string{"s1", "s2"}).
		Return(nil, domain.ErrSlotNotFound)

	svc := NewBookingUseCase(slots, bookings, nil)
	_, err := svc.CreateBooking(context.Background(), validInput())
	require.ErrorIs(t, err, domain.ErrSlotNotFound)
}

func TestCreateBookingTypeMismatch(t *testing.T) {
	slots := mocks.NewMockSlotRepository(t)
	bookings := mocks.NewMockBookingRepository(t)

	catalog := twoBannerSlots()
	sidebar := catalog["s2"]
	sidebar.Name = "Homepage Right Sidebar"
	sidebar.AdType = domain.AdTypeSidebar
	catalog["s2"] = sidebar

	slots.EXPECT().
		GetSlotsByIDs(mock.Anything, []string{"s1", "s2"}).
		Return(catalog, nil)

	svc := NewBookingUseCase(slots, bookings, nil)
	_, err := svc.CreateBooking(context.Background(), validInput())

	var mErr *domain.SlotMismatchError
	require.ErrorAs(t, err, &mErr)
	require.Equal(t, []string{"Homepage Right Sidebar"}, mErr.SlotNames)
	require.Contains(t, err.Error(), "Homepage Right Sidebar")
}

func TestCreateBookingConflict(t *testing.T) {
	slots := mocks.NewMockSlotRepository(t)
	bookings := mocks.NewMockBookingRepository(t)

	slots.EXPECT().
		GetSlotsByIDs(mock.Anything, []string{"s1", "s2"}).
		Return(twoBannerSlots(), nil)
	// CreateBooking is never expected: a conflicting request must not
	// persist anything for any of the slots
	bookings.EXPECT().
		FindConflictingSlots(mock.Anything, []string{"s1", "s2"}, mock.Anything).
		Return([]string{"Homepage Bottom Banner"}, nil)

	svc := NewBookingUseCase(slots, bookings, nil)
	_, err := svc.CreateBooking(context.Background(), validInput())

	var cErr *domain.ConflictError
	require.ErrorAs(t, err, &cErr)
	require.Equal(t, "Homepage Bottom Banner", cErr.SlotName)
}

func TestCreateBookingCommitRaceLost(t *testing.T) {
	slots := mocks.NewMockSlotRepository(t)
	bookings := mocks.NewMockBookingRepository(t)

	slots.EXPECT().
		GetSlotsByIDs(mock.Anything, []string{"s1", "s2"}).
		Return(twoBannerSlots(), nil)
	bookings.EXPECT().
		FindConflictingSlots(mock.Anything, []string{"s1", "s2"}, mock.Anything).
		Return(nil, nil)
	// the pre-check passed but another booker committed first
	bookings.EXPECT().
		CreateBooking(mock.Anything, mock.AnythingOfType("*domain.Booking"), []string{"s1", "s2"}).
		Return(&domain.ConflictError{})

	svc := NewBookingUseCase(slots, bookings, nil)
	got, err := svc.CreateBooking(context.Background(), validInput())

	var cErr *domain.ConflictError
	require.ErrorAs(t, err, &cErr)
	require.Nil(t, got)
}

// TestConcurrentBookingRace simulates concurrent createBooking calls for
// the same slot and overlapping dates against a shared in-memory booking
// index that mimics the serializable transaction: exactly one request
// wins, every other one gets ConflictError, and exactly one reservation
// exists afterwards.
func TestConcurrentBookingRace(t *testing.T) {
	slots := mocks.NewMockSlotRepository(t)
	bookings := mocks.NewMockBookingRepository(t)

	catalog := map[string]domain.Slot{"s1": bannerSlot("s1", "Homepage Top Banner", "50000.00")}
	slots.EXPECT().
		GetSlotsByIDs(mock.Anything, []string{"s1"}).
		Return(catalog, nil)

	var (
		mu     sync.Mutex
		booked []domain.Period
	)
	overlapsAny := func(p domain.Period) bool {
		for _, b := range booked {
			if b.Overlaps(p) {
				return true
			}
		}
		return false
	}

	bookings.EXPECT().
		FindConflictingSlots(mock.Anything, []string{"s1"}, mock.Anything).
		RunAndReturn(func(_ context.Context, _ []string, p domain.Period) ([]string, error) {
			mu.Lock()
			defer mu.Unlock()
			if overlapsAny(p) {
				return []string{"Homepage Top Banner"}, nil
			}
			return nil, nil
		})
	bookings.EXPECT().
		CreateBooking(mock.Anything, mock.AnythingOfType("*domain.Booking"), []string{"s1"}).
		RunAndReturn(func(_ context.Context, b *domain.Booking, _ []string) error {
			mu.Lock()
			defer mu.Unlock()
			// the check and the insert are atomic here, like the
			// serializable transaction in the real repository
			if overlapsAny(b.Period) {
				return &domain.ConflictError{}
			}
			booked = append(booked, b.Period)
			b.Status = domain.StatusPending
			return nil
		})

	svc := NewBookingUseCase(slots, bookings, nil)

	in := validInput()
	in.SlotIDs = []string{"s1"}

	const callers = 10
	var (
		wg        sync.WaitGroup
		resultsMu sync.Mutex
		successes int
		conflicts int
	)
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.CreateBooking(context.Background(), in)
			resultsMu.Lock()
			defer resultsMu.Unlock()
			var cErr *domain.ConflictError
			switch {
			case err == nil:
				successes++
			case errors.As(err, &cErr):
				conflicts++
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1, successes, "exactly one booking must win")
	require.Equal(t, callers-1, conflicts, "every loser must see ConflictError")
	require.Len(t, booked, 1, "exactly one reservation may exist")
}

func pendingBooking(id string) *domain.BookingWithSlots {
	return &domain.BookingWithSlots{
		Booking: domain.Booking{
			ID:     id,
			Status: domain.StatusPending,
		},
	}
}

func TestUpdateStatusRequiresAdmin(t *testing.T) {
	slots := mocks.NewMockSlotRepository(t)
	bookings := mocks.NewMockBookingRepository(t)
	svc := NewBookingUseCase(slots, bookings, nil)

	_, err := svc.UpdateStatus(context.Background(), port.UpdateStatusInput{
		AdID:   "ad-1",
		Role:   "advertiser",
		Status: domain.StatusApproved,
	})
	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUpdateStatusIllegalTransition(t *testing.T) {
	slots := mocks.NewMockSlotRepository(t)
	bookings := mocks.NewMockBookingRepository(t)

	bookings.EXPECT().
		GetBookingWithSlots(mock.Anything, "ad-1").
		Return(pendingBooking("ad-1"), nil)

	svc := NewBookingUseCase(slots, bookings, nil)

	// pending -> active skips approval
	_, err := svc.UpdateStatus(context.Background(), port.UpdateStatusInput{
		AdID:   "ad-1",
		Role:   "admin",
		Status: domain.StatusActive,
	})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestUpdateStatusApproveClearsReason(t *testing.T) {
	slots := mocks.NewMockSlotRepository(t)
	bookings := mocks.NewMockBookingRepository(t)

	bookings.EXPECT().
		GetBookingWithSlots(mock.Anything, "ad-1").
		Return(pendingBooking("ad-1"), nil)
	bookings.EXPECT().
		UpdateStatus(mock.Anything, "ad-1", domain.StatusApproved, (*string)(nil)).
		Return(&domain.Booking{ID: "ad-1", Status: domain.StatusApproved}, nil)

	svc := NewBookingUseCase(slots, bookings, nil)

	stale := "previously rejected"
	got, err := svc.UpdateStatus(context.Background(), port.UpdateStatusInput{
		AdID:            "ad-1",
		Role:            "admin",
		Status:          domain.StatusApproved,
		RejectionReason: &stale,
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusApproved, got.Status)
}

func TestUpdateStatusRejectRequiresReason(t *testing.T) {
	empty := ""
	for _, reason := range []*string{nil, &empty} {
		slots := mocks.NewMockSlotRepository(t)
		bookings := mocks.NewMockBookingRepository(t)

		bookings.EXPECT().
			GetBookingWithSlots(mock.Anything, "ad-1").
			Return(pendingBooking("ad-1"), nil)

		svc := NewBookingUseCase(slots, bookings, nil)
		_, err := svc.UpdateStatus(context.Background(), port.UpdateStatusInput{
			AdID:            "ad-1",
			Role:            "admin",
			Status:          domain.StatusRejected,
			RejectionReason: reason,
		})
		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
	}
}

func TestUpdateStatusRejectStoresReason(t *testing.T) {
	slots := mocks.NewMockSlotRepository(t)
	bookings := mocks.NewMockBookingRepository(t)

	bookings.EXPECT().
		GetBookingWithSlots(mock.Anything, "ad-1").
		Return(pendingBooking("ad-1"), nil)
	bookings.EXPECT().
		UpdateStatus(mock.Anything, "ad-1", domain.StatusRejected,
			mock.MatchedBy(func(r *string) bool { return r != nil && *r == "image violates policy" })).
		Return(&domain.Booking{ID: "ad-1", Status: domain.StatusRejected}, nil)

	svc := NewBookingUseCase(slots, bookings, nil)

	reason := "image violates policy"
	got, err := svc.UpdateStatus(context.Background(), port.UpdateStatusInput{
		AdID:            "ad-1",
		Role:            "admin",
		Status:          domain.StatusRejected,
		RejectionReason: &reason,
	})
	require.NoError(t, err)
	require.Equal(t, domain.StatusRejected, got.Status)
}

func TestUpdateStatusTerminal(t *testing.T) {
	slots := mocks.NewMockSlotRepository(t)
	bookings := mocks.NewMockBookingRepository(t)

	rejected := pendingBooking("ad-1")
	rejected.Status = domain.StatusRejected
	bookings.EXPECT().
		GetBookingWithSlots(mock.Anything, "ad-1").
		Return(rejected, nil)

	svc := NewBookingUseCase(slots, bookings, nil)
	_, err := svc.UpdateStatus(context.Background(), port.UpdateStatusInput{
		AdID:   "ad-1",
		Role:   "admin",
		Status: domain.StatusApproved,
	})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
}

// fakeCache is a minimal in-memory Cache used to verify the read-through
// and view-counter behaviour.
type fakeCache struct {
	mu    sync.Mutex
	slots map[bool][]domain.Slot
	views map[string]int64
	fail  bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{slots: make(map[bool][]domain.Slot), views: make(map[string]int64)}
}

func (c *fakeCache) GetSlots(_ context.Context, onlyAvailable bool) ([]domain.Slot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return nil, errors.New("cache down")
	}
	return c.slots[onlyAvailable], nil
}

func (c *fakeCache) SetSlots(_ context.Context, onlyAvailable bool, slots []domain.Slot) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return errors.New("cache down")
	}
	c.slots[onlyAvailable] = slots
	return nil
}

func (c *fakeCache) IncrDailyViews(_ context.Context, adID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return errors.New("cache down")
	}
	c.views[adID]++
	return nil
}

func TestListSlotsReadsThroughCache(t *testing.T) {
	slots := mocks.NewMockSlotRepository(t)
	bookings := mocks.NewMockBookingRepository(t)
	catalog := []domain.Slot{bannerSlot("s1", "Homepage Top Banner", "50000.00")}

	// only one database hit despite two calls
	slots.EXPECT().ListSlots(mock.Anything, true).Return(catalog, nil).Once()

	svc := NewBookingUseCase(slots, bookings, newFakeCache())

	first, err := svc.ListSlots(context.Background(), true)
	require.NoError(t, err)
	second, err := svc.ListSlots(context.Background(), true)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestListSlotsSurvivesCacheFailure(t *testing.T) {
	slots := mocks.NewMockSlotRepository(t)
	bookings := mocks.NewMockBookingRepository(t)
	catalog := []domain.Slot{bannerSlot("s1", "Homepage Top Banner", "50000.00")}

	slots.EXPECT().ListSlots(mock.Anything, false).Return(catalog, nil)

	c := newFakeCache()
	c.fail = true
	svc := NewBookingUseCase(slots, bookings, c)

	got, err := svc.ListSlots(context.Background(), false)
	require.NoError(t, err)
	require.Equal(t, catalog, got)
}

func TestTrackViewIncrementsCacheCounter(t *testing.T) {
	slots := mocks.NewMockSlotRepository(t)
	bookings := mocks.NewMockBookingRepository(t)

	bookings.EXPECT().
		TrackView(mock.Anything, mock.AnythingOfType("*domain.AdView")).
		Return(nil)

	c := newFakeCache()
	svc := NewBookingUseCase(slots, bookings, c)

	err := svc.TrackView(context.Background(), port.TrackViewInput{AdID: "ad-1"})
	require.NoError(t, err)
	require.Equal(t, int64(1), c.views["ad-1"])
}

func TestTrackViewUnknownBooking(t *testing.T) {
	slots := mocks.NewMockSlotRepository(t)
	bookings := mocks.NewMockBookingRepository(t)

	bookings.EXPECT().
		TrackView(mock.Anything, mock.AnythingOfType("*domain.AdView")).
		Return(domain.ErrBookingNotFound)

	c := newFakeCache()
	svc := NewBookingUseCase(slots, bookings, c)

	err := svc.TrackView(context.Background(), port.TrackViewInput{AdID: "nope"})
	require.ErrorIs(t, err, domain.ErrBookingNotFound)
	// the durable write failed, so the side-channel counter stays untouched
	require.Zero(t, c.views["nope"])
}

func TestGetAnalytics(t *testing.T) {
	slots := mocks.NewMockSlotRepository(t)
	bookings := mocks.NewMockBookingRepository(t)

	bookings.EXPECT().
		GetBookingWithSlots(mock.Anything, "ad-1").
		Return(pendingBooking("ad-1"), nil)
	bookings.EXPECT().
		GetAdAnalytics(mock.Anything, "ad-1").
		Return(&port.AdAnalytics{TotalViews: 42, ViewsToday: 7, ViewsThisWeek: 21, ViewsThisMonth: 40}, nil)

	svc := NewBookingUseCase(slots, bookings, nil)
	got, err := svc.GetAnalytics(context.Background(), "ad-1")
	require.NoError(t, err)
	require.Equal(t, "ad-1", got.ID)
	require.Equal(t, int64(42), got.TotalViews)
	require.Equal(t, int64(7), got.ViewsToday)
}

func TestListByStatusRejectsUnknownStatus(t *testing.T) {
	slots := mocks.NewMockSlotRepository(t)
	bookings := mocks.NewMockBookingRepository(t)
	svc := NewBookingUseCase(slots, bookings, nil)

	_, err := svc.ListByStatus(context.Background(), "archived")
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
}

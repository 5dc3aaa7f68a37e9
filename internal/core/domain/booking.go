package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentType selects how a booking is billed: per calendar day over
// the booked period, or per target view.
type PaymentType string

const (
	PaymentPeriod PaymentType = "period"
	PaymentView   PaymentType = "view"
)

// Valid reports whether t is a known payment type.
func (t PaymentType) Valid() bool {
	return t == PaymentPeriod || t == PaymentView
}

// Booking is an advertiser's request to occupy one or more slots over a
// date range. Created with StatusPending; mutated only by status
// transitions and the view counter. Never hard-deleted: rejection is a
// status, not a deletion.
type Booking struct {
	ID              string          `json:"id"`
	AdvertiserID    string          `json:"advertiserId"`
	Title           string          `json:"title"`
	ImageURL        *string         `json:"imageUrl,omitempty"`
	AdType          AdType          `json:"adType"`
	PaymentType     PaymentType     `json:"paymentType"`
	Period          Period          `json:"period"`
	Budget          decimal.Decimal `json:"budget"`
	TargetViews     *int64          `json:"targetViews,omitempty"`
	CurrentViews    int64           `json:"currentViews"`
	Status          Status          `json:"status"`
	EstimatedCost   decimal.Decimal `json:"estimatedCost"`
	ActualCost      decimal.Decimal `json:"actualCost"`
	RejectionReason *string         `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// SlotBooking links a booking to one of its slots. The (AdID, SlotID)
// pair is unique: a slot cannot be attached twice to the same booking.
type SlotBooking struct {
	ID        string    `json:"id"`
	AdID      string    `json:"adId"`
	SlotID    string    `json:"slotId"`
	CreatedAt time.Time `json:"createdAt"`
}

// BookingWithSlots is a booking together with its fully loaded slots.
// Queries return this value object explicitly instead of relying on
// relation lazy-loading.
type BookingWithSlots struct {
	Booking
	Slots []Slot `json:"slots"`
}

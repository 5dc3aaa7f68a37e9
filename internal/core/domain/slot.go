package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdType classifies both slots and bookings. A booking may only occupy
// slots of its own type.
type AdType string

const (
	AdTypeBanner  AdType = "banner"
	AdTypeSidebar AdType = "sidebar"
	AdTypeInline  AdType = "inline"
	AdTypePopup   AdType = "popup"
)

// Valid reports whether t is one of the known ad types.
func (t AdType) Valid() bool {
	switch t {
	case AdTypeBanner, AdTypeSidebar, AdTypeInline, AdTypePopup:
		return true
	}
	return false
}

// Position is where a slot renders on the page.
type Position string

const (
	PositionTop    Position = "top"
	PositionBottom Position = "bottom"
	PositionRight  Position = "right"
	PositionMiddle Position = "middle"
)

// Slot is a sellable ad placement. Slots are created by the platform and
// immutable afterwards except for the availability flag. Prices are
// stored as decimals: per-day with 2 fractional digits, per-view with 4.
type Slot struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	AdType       AdType          `json:"adType"`
	Position     Position        `json:"position"`
	Location     string          `json:"location"`
	IsAvailable  bool            `json:"isAvailable"`
	PricePerDay  decimal.Decimal `json:"pricePerDay"`
	PricePerView decimal.Decimal `json:"pricePerView"`
	CreatedAt    time.Time       `json:"createdAt"`
}

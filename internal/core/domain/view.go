package domain

import "time"

// AdView is one recorded impression of a booking's creative. The table
// is append-only and aggregated for analytics; individual rows are
// never updated.
type AdView struct {
	ID        string    `json:"id"`
	AdID      string    `json:"adId"`
	ViewedAt  time.Time `json:"viewedAt"`
	IPAddress *string   `json:"ipAddress,omitempty"`
	UserAgent *string   `json:"userAgent,omitempty"`
	Referrer  *string   `json:"referrer,omitempty"`
}

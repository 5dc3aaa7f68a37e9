package db

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts the demo slot catalog. Slot ids are deterministic so the
// seeder is idempotent across restarts.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	slots := []struct {
		name         string
		adType       string
		position     string
		location     string
		pricePerDay  string
		pricePerView string
	}{
		{"Homepage Top Banner", "banner", "top", "homepage", "50000.00", "50.0000"},
		{"Homepage Bottom Banner", "banner", "bottom", "homepage", "40000.00", "40.0000"},
		{"Homepage Right Sidebar", "sidebar", "right", "homepage", "35000.00", "35.0000"},
		{"Article Inline Top", "inline", "top", "article", "60000.00", "60.0000"},
		{"Article Inline Middle", "inline", "middle", "article", "75000.00", "75.0000"},
		{"Article Inline Bottom", "inline", "bottom", "article", "55000.00", "55.0000"},
		{"Homepage Popup", "popup", "middle", "homepage", "100000.00", "100.0000"},
		{"Article Popup", "popup", "middle", "article", "120000.00", "120.0000"},
	}

	for _, s := range slots {
		// stable ids derived from the slot name keep reruns idempotent
		id := uuid.NewSHA1(uuid.NameSpaceOID, []byte("ad_slot:"+s.name)).String()
		_, err := db.Exec(ctx, `INSERT INTO ad_slots
			(id, name, ad_type, position, location, is_available, price_per_day, price_per_view)
			VALUES ($1,$2,$3,$4,$5,TRUE,$6,$7) ON CONFLICT DO NOTHING`,
			id, s.name, s.adType, s.position, s.location, s.pricePerDay, s.pricePerView)
		if err != nil {
			return err
		}
	}
	return nil
}

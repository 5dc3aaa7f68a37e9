package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"slotmarket/internal/core/domain"
	"slotmarket/internal/core/port"
)

// SlotRepository implements port.SlotRepository using pgxpool. The slot
// catalog is platform-owned and read-only from this service's point of
// view; rows are inserted by migrations or the seeder.
type SlotRepository struct {
	pool *pgxpool.Pool
}

// NewSlotRepository returns a new repository instance.
func NewSlotRepository(pool *pgxpool.Pool) *SlotRepository {
	return &SlotRepository{pool: pool}
}

const slotColumns = `id, name, ad_type, position, location, is_available, price_per_day, price_per_view, created_at`

func scanSlot(row pgx.CollectableRow) (domain.Slot, error) {
	var s domain.Slot
	err := row.Scan(&s.ID, &s.Name, &s.AdType, &s.Position, &s.Location,
		&s.IsAvailable, &s.PricePerDay, &s.PricePerView, &s.CreatedAt)
	return s, err
}

// GetSlotsByIDs returns exactly one slot per requested id. A result with
// fewer rows than ids means at least one id does not exist and the whole
// lookup fails with domain.ErrSlotNotFound.
func (r *SlotRepository) GetSlotsByIDs(ctx context.Context, ids []string) (map[string]domain.Slot, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+slotColumns+` FROM ad_slots WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	slots, err := pgx.CollectRows(rows, scanSlot)
	if err != nil {
		return nil, err
	}
	if len(slots) != len(ids) {
		return nil, domain.ErrSlotNotFound
	}
	byID := make(map[string]domain.Slot, len(slots))
	for _, s := range slots {
		byID[s.ID] = s
	}
	return byID, nil
}

// ListSlots returns the slot catalog ordered by name. With onlyAvailable
// set, slots closed for booking are filtered out.
func (r *SlotRepository) ListSlots(ctx context.Context, onlyAvailable bool) ([]domain.Slot, error) {
	query := `SELECT ` + slotColumns + ` FROM ad_slots`
	if onlyAvailable {
		query += ` WHERE is_available`
	}
	query += ` ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanSlot)
}

// BookedPeriods returns the date ranges of occupying bookings for the
// slot, for client-side date pickers.
func (r *SlotRepository) BookedPeriods(ctx context.Context, slotID string) ([]domain.Period, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.start_date, a.end_date
		FROM ad_slot_bookings sb
		JOIN ads a ON sb.ad_id = a.id
		WHERE sb.slot_id = $1
		  AND a.status = ANY($2)
		ORDER BY a.start_date`, slotID, occupyingStatuses())
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Period, error) {
		var p domain.Period
		err := row.Scan(&p.Start, &p.End)
		return p, err
	})
}

func occupyingStatuses() []string {
	ss := make([]string, len(domain.OccupyingStatuses))
	for i, s := range domain.OccupyingStatuses {
		ss[i] = string(s)
	}
	return ss
}

var _ port.SlotRepository = (*SlotRepository)(nil)

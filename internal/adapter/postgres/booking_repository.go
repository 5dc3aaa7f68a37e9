package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"slotmarket/internal/core/domain"
	"slotmarket/internal/core/port"
)

// Postgres error codes that mean another booker won the commit race:
// serialization_failure under the serializable isolation level, and a
// violation of the unique (ad_id, slot_id) constraint.
const (
	pgSerializationFailure = "40001"
	pgUniqueViolation      = "23505"
)

// BookingRepository implements port.BookingRepository using pgxpool.
// CreateBooking runs the conflict check and the inserts inside one
// serializable transaction, so two concurrent requests for the same slot
// and overlapping dates cannot both commit.
type BookingRepository struct {
	pool *pgxpool.Pool
}

// NewBookingRepository returns a new repository instance.
func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

const bookingColumns = `id, advertiser_id, title, image_url, ad_type, payment_type,
	start_date, end_date, budget, target_views, current_views, status,
	estimated_cost, actual_cost, rejection_reason, created_at, updated_at`

func scanBooking(row pgx.CollectableRow) (domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(&b.ID, &b.AdvertiserID, &b.Title, &b.ImageURL, &b.AdType, &b.PaymentType,
		&b.Period.Start, &b.Period.End, &b.Budget, &b.TargetViews, &b.CurrentViews, &b.Status,
		&b.EstimatedCost, &b.ActualCost, &b.RejectionReason, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

// conflictQuery returns the names of the given slots that already carry
// an occupying booking overlapping [start, end]. Inclusive overlap:
// existing.start <= new.end AND existing.end >= new.start. Results come
// back in the order the slots were requested so the first conflict named
// in an error message is deterministic.
const conflictQuery = `
	SELECT DISTINCT s.name, array_position($1, sb.slot_id)
	FROM ad_slot_bookings sb
	JOIN ads a ON sb.ad_id = a.id
	JOIN ad_slots s ON sb.slot_id = s.id
	WHERE sb.slot_id = ANY($1)
	  AND a.status = ANY($2)
	  AND a.start_date <= $4
	  AND a.end_date >= $3
	ORDER BY array_position($1, sb.slot_id)`

func findConflictingSlots(ctx context.Context, q querier, slotIDs []string, period domain.Period) ([]string, error) {
	rows, err := q.Query(ctx, conflictQuery, slotIDs, occupyingStatuses(), period.Start, period.End)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (string, error) {
		var name string
		var pos int
		err := row.Scan(&name, &pos)
		return name, err
	})
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so the conflict
// query can run standalone or inside the booking transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// FindConflictingSlots answers the pre-commit conflict check against the
// live booking index.
func (r *BookingRepository) FindConflictingSlots(ctx context.Context, slotIDs []string, period domain.Period) ([]string, error) {
	return findConflictingSlots(ctx, r.pool, slotIDs, period)
}

// CreateBooking persists the booking and its slot bookings atomically.
// The conflict check is repeated inside a serializable transaction so a
// concurrent booker that passed its own pre-check cannot commit an
// overlapping reservation; the loser gets *domain.ConflictError. Partial
// writes are never observable.
func (r *BookingRepository) CreateBooking(ctx context.Context, b *domain.Booking, slotIDs []string) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	return createBookingTx(ctx, tx, b, slotIDs)
}

// createBookingTx runs the conflict re-check and the inserts on the open
// transaction. The named return lets the deferred commit propagate its
// error; a commit-time serialization failure reaches the caller as
// ConflictError.
func createBookingTx(ctx context.Context, tx pgx.Tx, b *domain.Booking, slotIDs []string) (err error) {
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = classifyCommitErr(tx.Commit(ctx))
		}
	}()

	conflicts, err := findConflictingSlots(ctx, tx, slotIDs, b.Period)
	if err != nil {
		return err
	}
	if len(conflicts) > 0 {
		err = &domain.ConflictError{SlotName: conflicts[0]}
		return err
	}

	b.ID = uuid.NewString()
	b.Status = domain.StatusPending
	b.CurrentViews = 0
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now

	_, err = tx.Exec(ctx, `INSERT INTO ads
		(id, advertiser_id, title, image_url, ad_type, payment_type, start_date, end_date,
		 budget, target_views, current_views, status, estimated_cost, actual_cost,
		 rejection_reason, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)`,
		b.ID, b.AdvertiserID, b.Title, b.ImageURL, b.AdType, b.PaymentType,
		b.Period.Start, b.Period.End, b.Budget, b.TargetViews, b.CurrentViews, b.Status,
		b.EstimatedCost, b.ActualCost, b.RejectionReason, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return classifyCommitErr(err)
	}

	for _, slotID := range slotIDs {
		_, err = tx.Exec(ctx, `INSERT INTO ad_slot_bookings (id, ad_id, slot_id, created_at)
			VALUES ($1,$2,$3,$4)`, uuid.NewString(), b.ID, slotID, now)
		if err != nil {
			return classifyCommitErr(err)
		}
	}
	return nil
}

// classifyCommitErr re-classifies a lost commit race as ConflictError so
// callers see the same error kind as a pre-check conflict. Any other
// persistence failure passes through untouched.
func classifyCommitErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgSerializationFailure, pgUniqueViolation:
			return &domain.ConflictError{}
		}
	}
	return err
}

// GetBookingWithSlots returns a fully populated booking value object.
func (r *BookingRepository) GetBookingWithSlots(ctx context.Context, id string) (*domain.BookingWithSlots, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+bookingColumns+` FROM ads WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	b, err := pgx.CollectOneRow(rows, scanBooking)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}

	slots, err := r.slotsByAd(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	return &domain.BookingWithSlots{Booking: b, Slots: slots[id]}, nil
}

// ListByAdvertiser returns the advertiser's bookings, newest first.
func (r *BookingRepository) ListByAdvertiser(ctx context.Context, advertiserID string) ([]domain.BookingWithSlots, error) {
	return r.listBookings(ctx, `SELECT `+bookingColumns+` FROM ads
		WHERE advertiser_id = $1 ORDER BY created_at DESC`, advertiserID)
}

// ListByStatus returns bookings in the given state, newest first.
func (r *BookingRepository) ListByStatus(ctx context.Context, status domain.Status) ([]domain.BookingWithSlots, error) {
	return r.listBookings(ctx, `SELECT `+bookingColumns+` FROM ads
		WHERE status = $1 ORDER BY created_at DESC`, status)
}

func (r *BookingRepository) listBookings(ctx context.Context, query string, args ...any) ([]domain.BookingWithSlots, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	bookings, err := pgx.CollectRows(rows, scanBooking)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, nil
	}

	ids := make([]string, len(bookings))
	for i, b := range bookings {
		ids[i] = b.ID
	}
	slots, err := r.slotsByAd(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]domain.BookingWithSlots, len(bookings))
	for i, b := range bookings {
		out[i] = domain.BookingWithSlots{Booking: b, Slots: slots[b.ID]}
	}
	return out, nil
}

// slotsByAd loads the slots of the given bookings in one query and
// groups them by ad id.
func (r *BookingRepository) slotsByAd(ctx context.Context, adIDs []string) (map[string][]domain.Slot, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT sb.ad_id, s.id, s.name, s.ad_type, s.position, s.location,
		       s.is_available, s.price_per_day, s.price_per_view, s.created_at
		FROM ad_slot_bookings sb
		JOIN ad_slots s ON sb.slot_id = s.id
		WHERE sb.ad_id = ANY($1)
		ORDER BY s.name`, adIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byAd := make(map[string][]domain.Slot)
	for rows.Next() {
		var adID string
		var s domain.Slot
		if err = rows.Scan(&adID, &s.ID, &s.Name, &s.AdType, &s.Position, &s.Location,
			&s.IsAvailable, &s.PricePerDay, &s.PricePerView, &s.CreatedAt); err != nil {
			return nil, err
		}
		byAd[adID] = append(byAd[adID], s)
	}
	return byAd, rows.Err()
}

// UpdateStatus sets the status and rejection reason and returns the
// updated booking, or domain.ErrBookingNotFound.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status domain.Status, rejectionReason *string) (*domain.Booking, error) {
	rows, err := r.pool.Query(ctx, `UPDATE ads
		SET status = $1, rejection_reason = $2, updated_at = now()
		WHERE id = $3
		RETURNING `+bookingColumns, status, rejectionReason, id)
	if err != nil {
		return nil, err
	}
	b, err := pgx.CollectOneRow(rows, scanBooking)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// TrackView appends one view-log row and bumps the counter with an
// atomic in-database increment, never a read-modify-write in
// application memory. Both writes share one transaction.
func (r *BookingRepository) TrackView(ctx context.Context, view *domain.AdView) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	return trackViewTx(ctx, tx, view)
}

func trackViewTx(ctx context.Context, tx pgx.Tx, view *domain.AdView) (err error) {
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	cmd, err := tx.Exec(ctx, `UPDATE ads SET current_views = current_views + 1, updated_at = now()
		WHERE id = $1`, view.AdID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		err = domain.ErrBookingNotFound
		return err
	}

	view.ID = uuid.NewString()
	view.ViewedAt = time.Now().UTC()
	_, err = tx.Exec(ctx, `INSERT INTO ad_views (id, ad_id, viewed_at, ip_address, user_agent, referrer)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		view.ID, view.AdID, view.ViewedAt, view.IPAddress, view.UserAgent, view.Referrer)
	return err
}

// GetAdAnalytics aggregates the view log for one booking into total,
// today, this-week and this-month counts.
func (r *BookingRepository) GetAdAnalytics(ctx context.Context, adID string) (*port.AdAnalytics, error) {
	now := time.Now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	startOfWeek := startOfDay.AddDate(0, 0, -int(now.Weekday()))
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	var a port.AdAnalytics
	err := r.pool.QueryRow(ctx, `SELECT
			count(*),
			count(*) FILTER (WHERE viewed_at >= $2),
			count(*) FILTER (WHERE viewed_at >= $3),
			count(*) FILTER (WHERE viewed_at >= $4)
		FROM ad_views WHERE ad_id = $1`,
		adID, startOfDay, startOfWeek, startOfMonth).
		Scan(&a.TotalViews, &a.ViewsToday, &a.ViewsThisWeek, &a.ViewsThisMonth)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetOverviewStats aggregates the admin dashboard summary. Monthly
// revenue sums the estimated cost of approved, active and completed
// bookings created in the current month.
func (r *BookingRepository) GetOverviewStats(ctx context.Context) (*port.OverviewStats, error) {
	var s port.OverviewStats
	err := r.pool.QueryRow(ctx, `SELECT
			count(*) FILTER (WHERE status = 'pending'),
			count(*) FILTER (WHERE status = 'active'),
			COALESCE(sum(estimated_cost) FILTER (
				WHERE status IN ('approved','active','completed')
				  AND created_at >= date_trunc('month', now())), 0)
		FROM ads`).
		Scan(&s.PendingCount, &s.ActiveCount, &s.MonthlyRevenue)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

var _ port.BookingRepository = (*BookingRepository)(nil)

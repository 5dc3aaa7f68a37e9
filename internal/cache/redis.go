package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"slotmarket/internal/config/configs"
	"slotmarket/internal/core/domain"
)

// Cache fronts the slot catalog with a TTL'd JSON payload and keeps
// cheap per-day view counters. The service works without it; callers
// treat every cache failure and every miss as "go to Postgres".
type Cache struct {
	client   *redis.Client
	slotsTTL time.Duration
}

// New builds a Cache from configuration.
func New(cfg configs.Redis) *Cache {
	return &Cache{
		client:   redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		slotsTTL: cfg.SlotsTTL,
	}
}

// Ping verifies connectivity.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (c *Cache) Close() error {
	return c.client.Close()
}

// GetSlots returns the cached slot catalog, or nil on a miss.
func (c *Cache) GetSlots(ctx context.Context, onlyAvailable bool) ([]domain.Slot, error) {
	data, err := c.client.Get(ctx, slotsKey(onlyAvailable)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var slots []domain.Slot
	if err := json.Unmarshal(data, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// SetSlots stores the slot catalog with the configured TTL.
func (c *Cache) SetSlots(ctx context.Context, onlyAvailable bool, slots []domain.Slot) error {
	payload, err := json.Marshal(slots)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, slotsKey(onlyAvailable), payload, c.slotsTTL).Err()
}

// IncrDailyViews bumps the per-day view counter for an ad. The counter
// is a relaxed side-channel for dashboards; the durable count lives in
// Postgres. Keys expire after two days.
func (c *Cache) IncrDailyViews(ctx context.Context, adID string) error {
	key := dailyViewsKey(adID, time.Now().UTC())
	pipe := c.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, 48*time.Hour)
	_, err := pipe.Exec(ctx)
	return err
}

// DailyViews reads today's counter for an ad. A missing key counts as
// zero.
func (c *Cache) DailyViews(ctx context.Context, adID string) (int64, error) {
	n, err := c.client.Get(ctx, dailyViewsKey(adID, time.Now().UTC())).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return n, err
}

func slotsKey(onlyAvailable bool) string {
	if onlyAvailable {
		return "cache:slots:available"
	}
	return "cache:slots:all"
}

func dailyViewsKey(adID string, day time.Time) string {
	return fmt.Sprintf("views:%s:%s", adID, day.Format("2006-01-02"))
}

package configs

import "time"

// Redis holds configuration for the optional Redis cache. When Enabled
// is false the application runs without caching and serves everything
// from PostgreSQL.
type Redis struct {
	Enabled  bool   `env:"ENABLED" envDefault:"false"`
	Addr     string `env:"ADDRESS" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB" envDefault:"0"`
	// SlotsTTL bounds the staleness of the cached slot catalog.
	SlotsTTL time.Duration `env:"SLOTS_TTL" envDefault:"5m"`
}

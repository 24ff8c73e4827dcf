package configs

import "time"

// Redis configures the page cache used by website inspection. When
// Enabled is false fetched pages are not cached.
type Redis struct {
	Enabled  bool          `env:"ENABLED" envDefault:"false"`
	Addr     string        `env:"ADDRESS" envDefault:"localhost:6379"`
	Password string        `env:"PASSWORD"`
	DB       int           `env:"DB" envDefault:"0"`
	PageTTL  time.Duration `env:"PAGE_TTL" envDefault:"24h"`
}

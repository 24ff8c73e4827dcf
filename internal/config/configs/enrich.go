package configs

import "time"

// Enrich bounds website inspection during bulk enrichment. Concurrency is
// the number of leads inspected at once, LeadTimeout caps a single lead and
// RatePerHost/Burst throttle requests against the same host.
type Enrich struct {
	Concurrency int           `env:"CONCURRENCY" envDefault:"8"`
	LeadTimeout time.Duration `env:"LEAD_TIMEOUT" envDefault:"15s"`
	RatePerHost float64       `env:"RATE_PER_HOST" envDefault:"1"`
	Burst       int           `env:"BURST" envDefault:"2"`
	SlowAfter   time.Duration `env:"SLOW_AFTER" envDefault:"3s"`
	UserAgent   string        `env:"USER_AGENT" envDefault:"Mozilla/5.0 (compatible; outreach-engine/1.0)"`
}

// Discovery configures the external lead-discovery provider.
type Discovery struct {
	BaseURL string        `env:"BASE_URL" envDefault:"http://localhost:9090"`
	APIKey  string        `env:"API_KEY"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

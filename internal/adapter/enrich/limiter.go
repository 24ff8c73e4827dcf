package enrich

import (
	"context"
	"sync"

	"golang.org/x/time/rate"

	"outreach-engine/internal/core/intake"
)

// HostLimiter rate-limits requests per website host so a bulk run never
// hammers a single site.
type HostLimiter struct {
	mu sync.Mutex
	m  map[string]*rate.Limiter
	r  rate.Limit
	b  int
}

// NewHostLimiter allows reqPerSec requests per host with the given burst.
// A non-positive rate disables limiting.
func NewHostLimiter(reqPerSec float64, burst int) *HostLimiter {
	r := rate.Limit(reqPerSec)
	if reqPerSec <= 0 {
		r = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}
	return &HostLimiter{
		m: make(map[string]*rate.Limiter),
		r: r,
		b: burst,
	}
}

func (hl *HostLimiter) limiterFor(host string) *rate.Limiter {
	hl.mu.Lock()
	defer hl.mu.Unlock()

	if lim, ok := hl.m[host]; ok {
		return lim
	}
	lim := rate.NewLimiter(hl.r, hl.b)
	hl.m[host] = lim
	return lim
}

// Wait blocks until a request to raw's host is allowed or ctx ends.
// Unparseable URLs share one bucket.
func (hl *HostLimiter) Wait(ctx context.Context, raw string) error {
	host := intake.Host(raw)
	if host == "" {
		host = "_"
	}
	return hl.limiterFor(host).Wait(ctx)
}

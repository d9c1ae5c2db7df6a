package scrape

import (
	"context"
	"sync"

	"github.com/fwojciec/lexso"
	"golang.org/x/time/rate"
)

var _ lexso.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces requests per host, with one token bucket per host
// created on first use.
type DomainLimiter struct {
	limit rate.Limit
	burst int

	mu      sync.Mutex
	buckets map[string]*rate.Limiter
}

// LimiterOption configures a DomainLimiter.
type LimiterOption func(*DomainLimiter)

// WithBurst lets up to n requests to one host through back to back.
// The default is 1.
func WithBurst(n int) LimiterOption {
	return func(d *DomainLimiter) {
		if n > 0 {
			d.burst = n
		}
	}
}

// NewDomainLimiter returns a limiter allowing rps requests per second to
// each host.
func NewDomainLimiter(rps float64, opts ...LimiterOption) *DomainLimiter {
	d := &DomainLimiter{
		limit:   rate.Limit(rps),
		burst:   1,
		buckets: map[string]*rate.Limiter{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *DomainLimiter) bucket(domain string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()

	b, ok := d.buckets[domain]
	if !ok {
		b = rate.NewLimiter(d.limit, d.burst)
		d.buckets[domain] = b
	}
	return b
}

// Wait blocks until a request to domain is allowed or ctx is done.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.bucket(domain).Wait(ctx)
}

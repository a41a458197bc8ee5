package discover

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/fwojciec/toolmedia"
	"golang.org/x/time/rate"
)

// DefaultRequestsPerSecond is the per-host request rate used by NewEngine.
const DefaultRequestsPerSecond = 10

var (
	_ toolmedia.DomainLimiter = (*DomainLimiter)(nil)
	_ toolmedia.Fetcher       = (*LimitedFetcher)(nil)
)

// DomainLimiter provides per-domain rate limiting using token buckets.
// It creates a separate rate limiter for each domain, allowing concurrent
// requests to different domains while enforcing rate limits within each domain.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a new DomainLimiter with the specified requests per second limit.
// Each domain gets its own limiter with a burst of 1 (no bursting allowed).
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	domain = strings.ToLower(domain)

	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}

// LimitedFetcher waits on a DomainLimiter, keyed by the URL's hostname,
// before every fetch.
type LimitedFetcher struct {
	next    toolmedia.Fetcher
	limiter toolmedia.DomainLimiter
}

// NewLimitedFetcher wraps next so its requests are throttled by limiter.
func NewLimitedFetcher(next toolmedia.Fetcher, limiter toolmedia.DomainLimiter) *LimitedFetcher {
	return &LimitedFetcher{next: next, limiter: limiter}
}

// Fetch waits for the host's turn and then delegates.
func (f *LimitedFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	if err := waitHost(ctx, f.limiter, rawURL); err != nil {
		return "", err
	}
	return f.next.Fetch(ctx, rawURL)
}

// Close closes the wrapped fetcher.
func (f *LimitedFetcher) Close() error {
	return f.next.Close()
}

// waitHost blocks on limiter for rawURL's hostname. URLs without a host are
// not throttled; the request itself reports them.
func waitHost(ctx context.Context, limiter toolmedia.DomainLimiter, rawURL string) error {
	if limiter == nil {
		return nil
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return nil
	}
	return limiter.Wait(ctx, u.Hostname())
}

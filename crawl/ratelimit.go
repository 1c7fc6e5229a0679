package crawl

import (
	"context"
	"net/url"
	"sync"

	"github.com/fwojciec/interests"
	"golang.org/x/time/rate"
)

var _ interests.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter paces requests per host. A directory and its profiles often
// live on different hosts (www.uni.edu and staff.uni.edu), and each host gets
// its own bucket, so fetching the directory never delays the first profile.
type DomainLimiter struct {
	rps float64

	mu    sync.Mutex
	hosts map[string]*rate.Limiter
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per second
// to each host with no bursting. A non-positive rps disables limiting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{rps: rps, hosts: make(map[string]*rate.Limiter)}
}

// Wait blocks until host may be requested again or ctx is done.
func (d *DomainLimiter) Wait(ctx context.Context, host string) error {
	if d.rps <= 0 {
		return ctx.Err()
	}
	return d.limiter(host).Wait(ctx)
}

func (d *DomainLimiter) limiter(host string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()
	l, ok := d.hosts[host]
	if !ok {
		l = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.hosts[host] = l
	}
	return l
}

// Ensure LimitedFetcher implements interests.Fetcher at compile time.
var _ interests.Fetcher = (*LimitedFetcher)(nil)

// LimitedFetcher waits on a DomainLimiter before every fetch.
type LimitedFetcher struct {
	next    interests.Fetcher
	limiter interests.DomainLimiter
}

// NewLimitedFetcher wraps next so that requests are paced per host.
func NewLimitedFetcher(next interests.Fetcher, limiter interests.DomainLimiter) *LimitedFetcher {
	return &LimitedFetcher{next: next, limiter: limiter}
}

// Fetch waits for the URL's host to be allowed, then delegates.
// Unparseable URLs are passed straight through so the transport reports them.
func (f *LimitedFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		if err := f.limiter.Wait(ctx, u.Host); err != nil {
			return "", err
		}
	}
	return f.next.Fetch(ctx, rawURL)
}

// Close delegates to the wrapped fetcher.
func (f *LimitedFetcher) Close() error {
	return f.next.Close()
}

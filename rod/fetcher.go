// Package rod implements interests.Fetcher with a headless Chrome browser
// for directory pages that render their staff listings with JavaScript.
package rod

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fwojciec/interests"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds navigation, load and serialization of one page.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements interests.Fetcher at compile time.
var _ interests.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
type Fetcher struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	timeout  time.Duration

	closeOnce sync.Once
	closed    atomic.Bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the per-page timeout.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(f)
	}

	// Launch browser using rod's launcher (finds or downloads Chrome)
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, interests.WrapError(err, interests.EINTERNAL, "launching browser")
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, interests.WrapError(err, interests.EINTERNAL, "connecting to browser")
	}

	f.browser = browser
	f.launcher = l
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
// Failures are returned as ETRANSPORT errors.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", interests.Errorf(interests.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return "", interests.WrapError(err, interests.ETRANSPORT, "fetching %s", url)
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", interests.WrapError(err, interests.ETRANSPORT, "opening page for %s", url)
	}
	defer page.Close()

	// Set context for all subsequent operations
	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", interests.WrapError(err, interests.ETRANSPORT, "fetching %s", url)
	}

	if err := page.WaitLoad(); err != nil {
		return "", interests.WrapError(err, interests.ETRANSPORT, "loading %s", url)
	}

	html, err := page.HTML()
	if err != nil {
		return "", interests.WrapError(err, interests.ETRANSPORT, "reading %s", url)
	}

	return html, nil
}

// LauncherPID returns the process ID of the launched browser.
func (f *Fetcher) LauncherPID() int {
	return f.launcher.PID()
}

// Close releases browser resources. It is safe to call more than once.
func (f *Fetcher) Close() error {
	var err error
	f.closeOnce.Do(func() {
		f.closed.Store(true)
		err = f.browser.Close()
		f.launcher.Kill()
	})
	return err
}

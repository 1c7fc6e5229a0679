package interests

import "context"

// Fetcher retrieves page markup from URLs.
// Implementations report non-2xx responses and network failures as
// ETRANSPORT errors.
type Fetcher interface {
	// Fetch retrieves the URL and returns the page HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

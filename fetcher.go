package carbon

import "context"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch returns the HTML served at the URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases client resources.
	Close() error
}

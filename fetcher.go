package tarifs

import "context"

// Fetcher retrieves the full text content of a page.
type Fetcher interface {
	// Fetch returns the document at url. Transport failures (network,
	// timeout, non-2xx status) are returned as errors and are fatal for
	// a scrape run. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (markup string, err error)

	// Close releases any resources held by the Fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

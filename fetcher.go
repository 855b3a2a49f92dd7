package paperpress

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its HTML.
	// The context controls timeout and cancellation. Failures are never
	// retried; callers see the first error.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}

// ImageFetcher retrieves raw image bytes along with the content type the
// server declared for them.
type ImageFetcher interface {
	FetchImage(ctx context.Context, url string) (data []byte, contentType string, err error)
}

// URLChecker probes whether a URL is reachable without downloading its body.
type URLChecker interface {
	// Check returns the response status code for the URL, or an error if
	// the URL is not accessible.
	Check(ctx context.Context, url string) (statusCode int, err error)
}

// DomainLimiter rate limits outbound requests per domain.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled before the wait completes.
	Wait(ctx context.Context, domain string) error
}

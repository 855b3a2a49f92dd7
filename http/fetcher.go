// Package http provides the HTTP-based collaborators of the conversion
// pipeline: the page fetcher, the image fetcher, a per-domain rate limiter,
// and the service's HTTP surface.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/paperpress"
)

// DefaultFetchTimeout is the default timeout for page fetches.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies the client on outbound requests. Many sites
// serve generic bot traffic an empty page, so a browser-like agent string
// is sent by default.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Ensure Fetcher implements the fetch and probe contracts at compile time.
var (
	_ paperpress.Fetcher    = (*Fetcher)(nil)
	_ paperpress.URLChecker = (*Fetcher)(nil)
)

// Fetcher retrieves page HTML over plain HTTP. It does not execute
// client-side script; pages requiring JavaScript to render are out of
// scope. Failures are never retried.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for page fetches.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the client identification header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", paperpress.Errorf(paperpress.EINVALID, "invalid URL: %v", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", paperpress.Errorf(paperpress.EUNAVAILABLE, "failed to fetch URL: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", paperpress.Errorf(paperpress.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", paperpress.Errorf(paperpress.EUNAVAILABLE, "failed to read response body: %v", err)
	}

	return string(body), nil
}

// Check probes URL accessibility with a HEAD request, falling back to GET
// when the server rejects HEAD with 405. The body is never read.
func (f *Fetcher) Check(ctx context.Context, url string) (int, error) {
	status, err := f.probe(ctx, http.MethodHead, url)
	if err != nil {
		return 0, err
	}
	if status == http.StatusMethodNotAllowed {
		return f.probe(ctx, http.MethodGet, url)
	}
	return status, nil
}

func (f *Fetcher) probe(ctx context.Context, method, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return 0, paperpress.Errorf(paperpress.EINVALID, "invalid URL: %v", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return 0, paperpress.Errorf(paperpress.EUNAVAILABLE, "URL is not accessible: %v", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest && resp.StatusCode != http.StatusMethodNotAllowed {
		return 0, paperpress.Errorf(paperpress.EUNAVAILABLE, "URL is not accessible: HTTP %d", resp.StatusCode)
	}
	return resp.StatusCode, nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

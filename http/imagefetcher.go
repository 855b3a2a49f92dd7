package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/paperpress"
)

// DefaultImageTimeout is the default timeout for a single image fetch.
// Kept short: a missing image degrades the document, it must not stall it.
const DefaultImageTimeout = 5 * time.Second

// Ensure ImageFetcher implements paperpress.ImageFetcher at compile time.
var _ paperpress.ImageFetcher = (*ImageFetcher)(nil)

// ImageFetcher retrieves image bytes over HTTP. Failures are never retried;
// the caller decides what a failed image means.
type ImageFetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// ImageOption configures an ImageFetcher.
type ImageOption func(*ImageFetcher)

// WithImageTimeout sets the timeout for each image fetch.
// Defaults to DefaultImageTimeout (5s) if not specified.
func WithImageTimeout(d time.Duration) ImageOption {
	return func(f *ImageFetcher) {
		f.timeout = d
	}
}

// WithImageUserAgent sets the client identification header.
func WithImageUserAgent(ua string) ImageOption {
	return func(f *ImageFetcher) {
		f.userAgent = ua
	}
}

// NewImageFetcher creates a new HTTP-based ImageFetcher.
func NewImageFetcher(opts ...ImageOption) *ImageFetcher {
	f := &ImageFetcher{
		timeout:   DefaultImageTimeout,
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

// FetchImage retrieves the image at url and returns its bytes along with
// the content type the server declared.
func (f *ImageFetcher) FetchImage(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", paperpress.Errorf(paperpress.EINVALID, "invalid image URL: %v", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", paperpress.Errorf(paperpress.EUNAVAILABLE, "failed to fetch image: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", paperpress.Errorf(paperpress.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", paperpress.Errorf(paperpress.EUNAVAILABLE, "failed to read image body: %v", err)
	}

	return data, resp.Header.Get("Content-Type"), nil
}

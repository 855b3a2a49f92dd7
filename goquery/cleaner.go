package goquery

import (
	"context"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/paperpress"
)

// Ensure Cleaner implements paperpress.Cleaner at compile time.
var _ paperpress.Cleaner = (*Cleaner)(nil)

// Cleaner runs the full tree-surgery pipeline over located article content:
// sanitize, trim trailing references, inline images. The content is parsed
// once and every stage mutates the same tree in place.
type Cleaner struct {
	sanitizer Sanitizer
	trimmer   Trimmer
	inliner   Inliner
}

// CleanerOption configures a Cleaner.
type CleanerOption func(*Cleaner)

// WithConcurrency sets the image fetch concurrency within one document.
// Defaults to DefaultConcurrency if not specified.
func WithConcurrency(n int) CleanerOption {
	return func(c *Cleaner) {
		c.inliner.Concurrency = n
	}
}

// WithDomainLimiter sets a per-domain rate limiter for image fetches.
func WithDomainLimiter(limiter paperpress.DomainLimiter) CleanerOption {
	return func(c *Cleaner) {
		c.inliner.Limiter = limiter
	}
}

// WithLogger sets the logger for per-image failure reporting.
func WithLogger(logger *slog.Logger) CleanerOption {
	return func(c *Cleaner) {
		c.inliner.Logger = logger
	}
}

// NewCleaner creates a new Cleaner that fetches images with the given
// fetcher.
func NewCleaner(images paperpress.ImageFetcher, opts ...CleanerOption) *Cleaner {
	c := &Cleaner{
		inliner: Inliner{Images: images},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Clean sanitizes contentHTML, trims trailing reference sections, and
// embeds every remaining image as a data URI, resolving relative image
// URLs against baseURL. The returned markup is fully self-contained.
func (c *Cleaner) Clean(ctx context.Context, contentHTML, baseURL string) (string, error) {
	if strings.TrimSpace(contentHTML) == "" {
		return "", paperpress.Errorf(paperpress.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(contentHTML))
	if err != nil {
		return "", paperpress.Errorf(paperpress.EINVALID, "failed to parse HTML: %v", err)
	}

	c.sanitizer.Sanitize(doc)
	c.trimmer.Trim(doc)

	if err := c.inliner.Inline(ctx, doc, baseURL); err != nil {
		return "", err
	}

	body := doc.Find("body").First()
	if body.Length() == 0 {
		return "", paperpress.Errorf(paperpress.EINTERNAL, "parsed document has no body")
	}

	out, err := body.Html()
	if err != nil {
		return "", paperpress.Errorf(paperpress.EINTERNAL, "failed to serialize content: %v", err)
	}
	return out, nil
}

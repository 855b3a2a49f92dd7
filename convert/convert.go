// Package convert orchestrates the article conversion pipeline. It
// coordinates page fetching, content location, sanitization with inline
// image embedding, and PDF rendering for a single request.
package convert

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/fwojciec/paperpress"
)

// Converter runs the conversion pipeline for one article URL at a time.
// Each call owns its document end to end; Converter itself holds no
// per-request state and is safe for concurrent use.
type Converter struct {
	Fetcher  paperpress.Fetcher
	Locator  paperpress.Locator
	Cleaner  paperpress.Cleaner
	Renderer paperpress.Renderer
	Logger   *slog.Logger
}

// Result holds the outcome of a conversion.
type Result struct {
	URL   string
	Title string
	PDF   []byte
}

// Convert fetches the page at rawURL and runs it through the full
// pipeline. Page-level failures propagate with their original error text;
// per-image failures never surface here.
func (c *Converter) Convert(ctx context.Context, rawURL string) (*Result, error) {
	title, cleanHTML, err := c.ConvertHTML(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	begin := time.Now()
	pdf, err := c.Renderer.Render(cleanHTML, title)
	if err != nil {
		return nil, paperpress.Errorf(paperpress.EINTERNAL, "PDF generation failed: %v", err)
	}
	c.debug("rendered pdf", "url", rawURL, "bytes", len(pdf), "duration", time.Since(begin))

	return &Result{
		URL:   rawURL,
		Title: title,
		PDF:   pdf,
	}, nil
}

// ConvertHTML runs the pipeline through cleaning and returns the article
// title and the cleaned, self-contained markup without rendering it.
func (c *Converter) ConvertHTML(ctx context.Context, rawURL string) (title, cleanHTML string, err error) {
	if err := ValidateURL(rawURL); err != nil {
		return "", "", err
	}

	begin := time.Now()
	pageHTML, err := c.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return "", "", err
	}
	c.debug("fetched page", "url", rawURL, "bytes", len(pageHTML), "duration", time.Since(begin))

	located, err := c.Locator.Locate(pageHTML)
	if err != nil {
		return "", "", err
	}

	begin = time.Now()
	cleanHTML, err = c.Cleaner.Clean(ctx, located.ContentHTML, rawURL)
	if err != nil {
		return "", "", err
	}
	c.debug("cleaned content", "url", rawURL, "duration", time.Since(begin))

	return located.Title, cleanHTML, nil
}

// ValidateURL rejects anything that is not an absolute http or https URL,
// before any network call is made.
func ValidateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return paperpress.Errorf(paperpress.EINVALID, "invalid URL: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return paperpress.Errorf(paperpress.EINVALID, "URL must use the http or https scheme")
	}
	if u.Host == "" {
		return paperpress.Errorf(paperpress.EINVALID, "URL host required")
	}
	return nil
}

func (c *Converter) debug(msg string, args ...any) {
	if c.Logger != nil {
		c.Logger.Debug(msg, args...)
	}
}

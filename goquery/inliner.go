package goquery

import (
	"context"
	"encoding/base64"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/paperpress"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the default number of concurrent image fetches
// within a single document.
const DefaultConcurrency = 6

// Inliner embeds every image in a document as a self-contained data URI.
// Images whose source cannot be resolved, fetched, or encoded are removed;
// after Inline completes no remaining image references an external URL.
// Per-image failures are contained here and never abort the pipeline.
type Inliner struct {
	Images      paperpress.ImageFetcher
	Limiter     paperpress.DomainLimiter // optional per-domain politeness
	Concurrency int
	Logger      *slog.Logger
}

// inlineTarget is one image node scheduled for embedding, keyed by its
// position in document order.
type inlineTarget struct {
	position int
	sel      *goquery.Selection
	url      string
}

// inlineResult is the fetch outcome for one target.
type inlineResult struct {
	position int
	dataURI  string
	err      error
}

// Inline mutates doc in place. Fetches are dispatched to a bounded worker
// pool but results are written back by original position, so the document
// preserves image order regardless of which fetch finishes first.
func (in *Inliner) Inline(ctx context.Context, doc *goquery.Document, baseURL string) error {
	base, err := url.Parse(baseURL)
	if err != nil {
		return paperpress.Errorf(paperpress.EINVALID, "invalid base URL: %v", err)
	}

	// Snapshot image nodes before any mutation. Images with neither a src
	// nor a lazy-load fallback carry no value and are removed immediately;
	// the rest are resolved against the base URL and scheduled.
	var targets []inlineTarget
	doc.Find("img").Each(func(i int, sel *goquery.Selection) {
		src, ok := sel.Attr("src")
		if !ok || src == "" {
			src, ok = sel.Attr("data-src")
		}
		if !ok || src == "" {
			sel.Remove()
			return
		}

		ref, err := url.Parse(src)
		if err != nil {
			in.warn("malformed image URL", "src", src, "err", err)
			sel.Remove()
			return
		}

		targets = append(targets, inlineTarget{
			position: len(targets),
			sel:      sel,
			url:      base.ResolveReference(ref).String(),
		})
	})

	if len(targets) == 0 {
		return nil
	}

	concurrency := in.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan inlineResult, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, t := range targets {
			t := t
			g.Go(func() error {
				resultCh <- in.fetchOne(gctx, t.position, t.url)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect into positional slots.
	results := make([]inlineResult, len(targets))
	for result := range resultCh {
		results[result.position] = result
	}

	// Apply in document order.
	for _, t := range targets {
		result := results[t.position]
		if result.err != nil {
			in.warn("failed to inline image", "url", t.url, "err", result.err)
			t.sel.Remove()
			continue
		}

		t.sel.SetAttr("src", result.dataURI)

		// The lazy-loading contract is meaningless once the source is
		// self-contained.
		t.sel.RemoveAttr("loading")
		t.sel.RemoveAttr("data-src")
		t.sel.RemoveAttr("srcset")
	}

	return ctx.Err()
}

// fetchOne fetches a single image and encodes it as a data URI. All errors
// are reported in the result, never returned.
func (in *Inliner) fetchOne(ctx context.Context, position int, imageURL string) inlineResult {
	result := inlineResult{position: position}

	if in.Limiter != nil {
		if u, err := url.Parse(imageURL); err == nil {
			if err := in.Limiter.Wait(ctx, u.Host); err != nil {
				result.err = err
				return result
			}
		}
	}

	data, contentType, err := in.Images.FetchImage(ctx, imageURL)
	if err != nil {
		result.err = err
		return result
	}

	mime := embedMIME(contentType, imageURL)
	result.dataURI = "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
	return result
}

// embedMIME decides the MIME type recorded in the data URI: the declared
// content type when it names an image kind, otherwise a guess from the URL
// extension, defaulting to JPEG.
func embedMIME(declared, imageURL string) string {
	if strings.Contains(declared, "image") {
		return declared
	}
	switch {
	case strings.HasSuffix(imageURL, ".png"):
		return "image/png"
	case strings.HasSuffix(imageURL, ".gif"):
		return "image/gif"
	case strings.HasSuffix(imageURL, ".webp"):
		return "image/webp"
	default:
		return "image/jpeg"
	}
}

func (in *Inliner) warn(msg string, args ...any) {
	if in.Logger != nil {
		in.Logger.Warn(msg, args...)
	}
}

// Package readability provides a paperpress.Locator backed by
// go-readability's scoring extractor. It is an alternative to the default
// heuristic fallback chain for pages with weak structural markers.
package readability

import (
	"strings"

	"github.com/fwojciec/paperpress"
	readability "github.com/go-shiori/go-readability"
)

// Ensure Locator implements paperpress.Locator at compile time.
var _ paperpress.Locator = (*Locator)(nil)

// Locator wraps go-readability to locate article content within HTML.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Locate processes raw HTML and returns the article content.
func (l *Locator) Locate(rawHTML string) (*paperpress.ExtractResult, error) {
	if rawHTML == "" {
		return nil, paperpress.Errorf(paperpress.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &paperpress.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}

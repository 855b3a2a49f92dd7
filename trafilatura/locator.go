// Package trafilatura provides a paperpress.Locator backed by
// go-trafilatura's content extraction, an alternative to the default
// heuristic fallback chain.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/paperpress"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Locator implements paperpress.Locator at compile time.
var _ paperpress.Locator = (*Locator)(nil)

// Locator wraps go-trafilatura to locate article content within HTML.
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

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &paperpress.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

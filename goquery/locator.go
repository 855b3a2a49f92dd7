package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/paperpress"
)

// Ensure Locator implements paperpress.Locator at compile time.
var _ paperpress.Locator = (*Locator)(nil)

// Locator selects the article body using an ordered fallback chain of
// structural heuristics: an <article> element, then <main>, then the first
// element whose class matches a content keyword, then the first whose id
// matches, and finally the whole document. Falling through the chain is a
// normal outcome, never an error.
type Locator struct{}

// NewLocator creates a new Locator.
func NewLocator() *Locator {
	return &Locator{}
}

// Locate returns the located article content as an independent subtree,
// together with the article title. The title is picked here, early: the
// text of the first <h1> in the located content, or the first <h2> if no
// <h1> exists.
func (l *Locator) Locate(rawHTML string) (*paperpress.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, paperpress.Errorf(paperpress.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, paperpress.Errorf(paperpress.EINVALID, "failed to parse HTML: %v", err)
	}

	sel := locate(doc)

	// Serializing and letting the caller re-parse detaches the result from
	// the source document, so later mutation cannot alias it.
	contentHTML, err := serialize(sel)
	if err != nil {
		return nil, paperpress.Errorf(paperpress.EINTERNAL, "failed to serialize content: %v", err)
	}

	return &paperpress.ExtractResult{
		Title:       headingText(sel),
		ContentHTML: contentHTML,
	}, nil
}

// locate walks the fallback chain, first match wins.
func locate(doc *goquery.Document) *goquery.Selection {
	if sel := doc.Find("article").First(); sel.Length() > 0 {
		return sel
	}
	if sel := doc.Find("main").First(); sel.Length() > 0 {
		return sel
	}
	if sel := firstKeywordMatch(doc, "class"); sel != nil {
		return sel
	}
	if sel := firstKeywordMatch(doc, "id"); sel != nil {
		return sel
	}
	if body := doc.Find("body").First(); body.Length() > 0 {
		return body
	}
	return doc.Selection
}

// firstKeywordMatch returns the first element in document order whose attr
// value contains a content keyword, or nil if none matches.
func firstKeywordMatch(doc *goquery.Document, attr string) *goquery.Selection {
	var found *goquery.Selection
	doc.Find("*").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if v, ok := sel.Attr(attr); ok && containsAnyFold(v, contentKeywords) {
			found = sel
			return false
		}
		return true
	})
	return found
}

// serialize renders matched elements to HTML. The <body> fallback is
// serialized as its inner HTML so no body tag leaks into the content.
func serialize(sel *goquery.Selection) (string, error) {
	if goquery.NodeName(sel) == "body" {
		return sel.Html()
	}
	return goquery.OuterHtml(sel)
}

// headingText returns the trimmed text of the first h1 within sel, or the
// first h2 if no h1 exists.
func headingText(sel *goquery.Selection) string {
	if h := sel.Find("h1").First(); h.Length() > 0 {
		return strings.TrimSpace(h.Text())
	}
	if h := sel.Find("h2").First(); h.Length() > 0 {
		return strings.TrimSpace(h.Text())
	}
	return ""
}

package goquery

import "github.com/PuerkitoBio/goquery"

// Sanitizer removes advertising and distraction elements from a document.
// Removal is destructive and idempotent: running Sanitize on its own output
// removes nothing further.
type Sanitizer struct{}

// Sanitize mutates doc in place. It runs two independent passes over the
// same generic matcher: the advertising pass (class and id keywords), then
// the distraction pass (class, id, and literal tag-name keywords). Script
// and style elements are always removed regardless of either pass; they
// carry no renderable content here.
func (s *Sanitizer) Sanitize(doc *goquery.Document) {
	removeMatching(doc, AdRules())
	removeMatching(doc, DistractionRules())
	doc.Find("script, style").Remove()
}

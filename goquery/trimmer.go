package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Trimmer removes trailing non-article sections: bibliographies, citation
// lists, "see also" blocks, and their explicit container equivalents.
// It assumes ads and sidebars are already gone, so it must run after the
// Sanitizer.
type Trimmer struct{}

// Trim mutates doc in place. Explicit citation containers are removed
// first; that reduces false sibling chains for the heading scan that
// follows.
func (t *Trimmer) Trim(doc *goquery.Document) {
	t.removeContainers(doc)
	t.truncateAtHeadings(doc)
}

// removeContainers removes generic block and list containers whose class
// matches a citation keyword, and divisions/sections whose id matches.
func (t *Trimmer) removeContainers(doc *goquery.Document) {
	doc.Find("div, section, ol, ul").Each(func(_ int, sel *goquery.Selection) {
		if class, ok := sel.Attr("class"); ok && containsAnyFold(class, citationKeywords) {
			sel.Remove()
			return
		}
		name := goquery.NodeName(sel)
		if name != "div" && name != "section" {
			return
		}
		if id, ok := sel.Attr("id"); ok && containsAnyFold(id, citationKeywords) {
			sel.Remove()
		}
	})
}

// truncateAtHeadings scans h2-h4 elements in document order. Each heading
// whose trimmed text contains a reference phrase is deleted together with
// every following sibling at the same tree level. Sibling subtrees are not
// searched for nested matches once truncation begins.
func (t *Trimmer) truncateAtHeadings(doc *goquery.Document) {
	doc.Find("h2, h3, h4").Each(func(_ int, sel *goquery.Selection) {
		text := strings.ToLower(strings.TrimSpace(sel.Text()))
		if !containsAnyFold(text, referenceHeadings) {
			return
		}
		sel.NextAll().Remove()
		sel.Remove()
	})
}

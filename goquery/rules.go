// Package goquery provides the tree-surgery stages of the conversion
// pipeline: article location, sanitization, reference trimming, and inline
// image embedding. All stages operate on goquery documents and mutate them
// in place; matches are always snapshotted before removal begins so no pass
// acts on a tree that is changing mid-scan.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// RuleScope identifies which part of an element a removal keyword is
// matched against.
type RuleScope int

// RuleScope values.
const (
	ScopeClass RuleScope = iota
	ScopeID
	ScopeTag
)

// RemovalRule pairs a match scope with a keyword. The keyword is an
// unanchored, case-insensitive substring test for class and id scopes, and
// an exact tag name for the tag scope.
type RemovalRule struct {
	Scope   RuleScope
	Keyword string
}

// Matches reports whether the element matches the rule.
func (r RemovalRule) Matches(sel *goquery.Selection) bool {
	switch r.Scope {
	case ScopeClass:
		v, ok := sel.Attr("class")
		return ok && containsFold(v, r.Keyword)
	case ScopeID:
		v, ok := sel.Attr("id")
		return ok && containsFold(v, r.Keyword)
	case ScopeTag:
		return goquery.NodeName(sel) == r.Keyword
	}
	return false
}

// adKeywords match promotional and advertising chrome by class or id.
var adKeywords = []string{
	"ad", "ads", "advert", "advertisement", "banner", "sponsor",
	"promo", "promotion", "marketing", "adsense", "google-ad",
}

// distractionKeywords match navigational, social, sidebar, and comment
// chrome. Unlike ad keywords they are also matched against the literal tag
// name: a <nav> element is removed even with no matching class or id. This
// breadth is intentional.
var distractionKeywords = []string{
	"sidebar", "side-bar", "navigation", "nav", "menu",
	"comment", "comments", "discussion", "social", "share",
	"footer", "header", "breadcrumb", "widget", "related",
}

// citationKeywords match trailing reference sections by class on generic
// block and list containers, and by id on divisions and sections.
var citationKeywords = []string{
	"reference", "citation", "bibliography", "notes",
	"external-link", "see-also", "footer",
}

// referenceHeadings are phrases that mark the start of a trailing
// non-article section when found in h2-h4 text. The test is an unanchored
// substring, so a heading like "Release Notes" also triggers truncation;
// that is accepted heuristic behavior.
var referenceHeadings = []string{
	"reference", "citation", "see also", "external link",
	"note", "bibliography", "further reading",
}

// contentKeywords identify likely article containers by class or id.
var contentKeywords = []string{"post", "article", "content", "entry"}

// AdRules returns the removal rules for the advertising pass.
func AdRules() []RemovalRule {
	rules := make([]RemovalRule, 0, 2*len(adKeywords))
	for _, kw := range adKeywords {
		rules = append(rules,
			RemovalRule{Scope: ScopeClass, Keyword: kw},
			RemovalRule{Scope: ScopeID, Keyword: kw},
		)
	}
	return rules
}

// DistractionRules returns the removal rules for the distraction pass.
func DistractionRules() []RemovalRule {
	rules := make([]RemovalRule, 0, 3*len(distractionKeywords))
	for _, kw := range distractionKeywords {
		rules = append(rules,
			RemovalRule{Scope: ScopeClass, Keyword: kw},
			RemovalRule{Scope: ScopeID, Keyword: kw},
			RemovalRule{Scope: ScopeTag, Keyword: kw},
		)
	}
	return rules
}

// removeMatching removes every element matching any rule, along with its
// entire subtree. The element list is materialized by Find before any
// removal happens.
func removeMatching(doc *goquery.Document, rules []RemovalRule) {
	doc.Find("*").Each(func(_ int, sel *goquery.Selection) {
		for _, r := range rules {
			if r.Matches(sel) {
				sel.Remove()
				return
			}
		}
	})
}

// containsFold reports whether s contains substr, ignoring case.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// containsAnyFold reports whether s contains any of the keywords,
// ignoring case.
func containsAnyFold(s string, keywords []string) bool {
	for _, kw := range keywords {
		if containsFold(s, kw) {
			return true
		}
	}
	return false
}

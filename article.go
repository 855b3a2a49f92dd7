package paperpress

import "context"

// ExtractResult holds the article content located within a fetched page.
type ExtractResult struct {
	// Title is the text of the first level-1 heading found in the article
	// content, or the first level-2 heading if no level-1 heading exists.
	// May be empty.
	Title string

	// ContentHTML is the subtree most likely to be the article body,
	// serialized as HTML. It is independent of the source document: later
	// mutation of the content cannot affect anything outside it.
	ContentHTML string
}

// Locator selects the subtree most likely to represent the article body
// within a full page. Falling back to the entire document when no better
// candidate exists is a normal outcome, not an error.
type Locator interface {
	Locate(html string) (*ExtractResult, error)
}

// Cleaner strips advertising, navigation, and trailing reference sections
// from located article content and embeds every remaining image as a
// self-contained data URI. The returned markup references no external
// resources. Relative image URLs are resolved against baseURL.
type Cleaner interface {
	Clean(ctx context.Context, contentHTML, baseURL string) (string, error)
}

// Renderer produces the final paginated document bytes from cleaned article
// markup and a synthesized title block.
type Renderer interface {
	Render(markup, title string) ([]byte, error)
}

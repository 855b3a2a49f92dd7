package goquery_test

import (
	"testing"

	"github.com/fwojciec/paperpress"
	pgoquery "github.com/fwojciec/paperpress/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocator_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	loc := pgoquery.NewLocator()
	_, err := loc.Locate("")

	require.Error(t, err)
	assert.Equal(t, paperpress.EINVALID, paperpress.ErrorCode(err))
}

func TestLocator_PrefersArticleElement(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<div class="junk">Unrelated sibling markup</div>
<article><h1>T</h1><p>body</p></article>
<div>More unrelated markup</div>
</body></html>`

	loc := pgoquery.NewLocator()
	result, err := loc.Locate(html)

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "<h1>T</h1>")
	assert.Contains(t, result.ContentHTML, "<p>body</p>")
	assert.NotContains(t, result.ContentHTML, "Unrelated sibling markup")
	assert.NotContains(t, result.ContentHTML, "More unrelated markup")
	assert.Equal(t, "T", result.Title)
}

func TestLocator_FallsBackToMain(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<div>Chrome</div>
<main><h2>Main Title</h2><p>main content</p></main>
</body></html>`

	loc := pgoquery.NewLocator()
	result, err := loc.Locate(html)

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "main content")
	assert.NotContains(t, result.ContentHTML, "Chrome")
	assert.Equal(t, "Main Title", result.Title)
}

func TestLocator_FallsBackToContentClass(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<div>Chrome</div>
<div class="post-body"><p>the post</p></div>
</body></html>`

	loc := pgoquery.NewLocator()
	result, err := loc.Locate(html)

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "the post")
	assert.NotContains(t, result.ContentHTML, "Chrome")
}

func TestLocator_FallsBackToContentID(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<div>Chrome</div>
<div id="entry-42"><p>the entry</p></div>
</body></html>`

	loc := pgoquery.NewLocator()
	result, err := loc.Locate(html)

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "the entry")
	assert.NotContains(t, result.ContentHTML, "Chrome")
}

func TestLocator_ClassMatchWinsOverIDMatch(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<div id="content-later"><p>by id</p></div>
<div class="article-wrap"><p>by class</p></div>
</body></html>`

	loc := pgoquery.NewLocator()
	result, err := loc.Locate(html)

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "by class")
	assert.NotContains(t, result.ContentHTML, "by id")
}

func TestLocator_FallsBackToWholeDocument(t *testing.T) {
	t.Parallel()

	html := `<html><body><p>just a paragraph</p><p>and another</p></body></html>`

	loc := pgoquery.NewLocator()
	result, err := loc.Locate(html)

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "just a paragraph")
	assert.Contains(t, result.ContentHTML, "and another")
	assert.NotContains(t, result.ContentHTML, "<body>")
}

func TestLocator_TitleFromFirstH2WhenNoH1(t *testing.T) {
	t.Parallel()

	html := `<article><h2> Second Level </h2><p>body</p><h2>Later</h2></article>`

	loc := pgoquery.NewLocator()
	result, err := loc.Locate(html)

	require.NoError(t, err)
	assert.Equal(t, "Second Level", result.Title)
}

func TestLocator_EmptyTitleWhenNoHeadings(t *testing.T) {
	t.Parallel()

	html := `<article><p>no headings here</p></article>`

	loc := pgoquery.NewLocator()
	result, err := loc.Locate(html)

	require.NoError(t, err)
	assert.Empty(t, result.Title)
}

package readability_test

import (
	"testing"

	"github.com/fwojciec/paperpress"
	"github.com/fwojciec/paperpress/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocator_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	loc := readability.NewLocator()
	_, err := loc.Locate("")

	require.Error(t, err)
	assert.Equal(t, paperpress.EINVALID, paperpress.ErrorCode(err))
}

func TestLocator_ExtractsTitle(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Page Title</title></head>
<body><article><p>Content paragraph long enough to score as article text.</p></article></body>
</html>`

	loc := readability.NewLocator()
	result, err := loc.Locate(html)

	require.NoError(t, err)
	assert.Equal(t, "Page Title", result.Title)
}

func TestLocator_RemovesNavigation(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/home">Home Nav Link</a><a href="/about">About Nav Link</a></nav>
<article><p>This is the main article content that should be preserved in the output.</p></article>
</body>
</html>`

	loc := readability.NewLocator()
	result, err := loc.Locate(html)

	require.NoError(t, err)
	assert.NotContains(t, result.ContentHTML, "Home Nav Link")
	assert.NotContains(t, result.ContentHTML, "About Nav Link")
	assert.Contains(t, result.ContentHTML, "main article content")
}

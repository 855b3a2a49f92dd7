package goquery_test

import (
	"context"
	"testing"

	"github.com/fwojciec/paperpress"
	pgoquery "github.com/fwojciec/paperpress/goquery"
	"github.com/fwojciec/paperpress/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleaner_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	cleaner := pgoquery.NewCleaner(&mock.ImageFetcher{})
	_, err := cleaner.Clean(context.Background(), "", "http://example.com")

	require.Error(t, err)
	assert.Equal(t, paperpress.EINVALID, paperpress.ErrorCode(err))
}

func TestCleaner_RunsFullPipeline(t *testing.T) {
	t.Parallel()

	content := `
<div class="ad-banner">Ad</div>
<nav>chrome</nav>
<h1>T</h1>
<p>body</p>
<img src="/a.png">
<h2>References</h2>
<p>[1] dropped</p>`

	images := &mock.ImageFetcher{
		FetchImageFn: func(ctx context.Context, url string) ([]byte, string, error) {
			assert.Equal(t, "http://example.com/a.png", url)
			return []byte{0x89, 0x50, 0x4e, 0x47}, "image/png", nil
		},
	}

	cleaner := pgoquery.NewCleaner(images, pgoquery.WithConcurrency(2))
	out, err := cleaner.Clean(context.Background(), content, "http://example.com/post")

	require.NoError(t, err)
	assert.NotContains(t, out, "ad-banner")
	assert.NotContains(t, out, "chrome")
	assert.NotContains(t, out, "References")
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "<p>body</p>")
	assert.Contains(t, out, "data:image/png;base64,")
}

func TestCleaner_SanitizesBeforeTrimming(t *testing.T) {
	t.Parallel()

	// The sidebar between the body and the reference heading is removed by
	// the sanitizer, so heading truncation only drops genuine trailing
	// content.
	content := `
<p>body</p>
<div class="sidebar">side</div>
<h2>Further Reading</h2>
<p>tail</p>`

	cleaner := pgoquery.NewCleaner(&mock.ImageFetcher{})
	out, err := cleaner.Clean(context.Background(), content, "http://example.com")

	require.NoError(t, err)
	assert.Contains(t, out, "body")
	assert.NotContains(t, out, "side")
	assert.NotContains(t, out, "tail")
}

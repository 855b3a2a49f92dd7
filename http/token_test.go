package http_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/fwojciec/paperpress/http"
	"github.com/stretchr/testify/assert"
)

var hexToken = regexp.MustCompile(`^[0-9a-f]{64}$`)

func TestTokenIssuer_Issue(t *testing.T) {
	t.Parallel()

	issuer := http.NewTokenIssuer()

	before := time.Now()
	tok := issuer.Issue("https://example.com/post")
	after := time.Now()

	assert.Regexp(t, hexToken, tok.Token)
	assert.Equal(t, "1h0m0s", tok.ExpiresIn)
	assert.False(t, tok.ExpiresAt.Before(before.Add(http.DefaultTokenTTL)))
	assert.False(t, tok.ExpiresAt.After(after.Add(http.DefaultTokenTTL)))
}

func TestTokenIssuer_Issue_Unique(t *testing.T) {
	t.Parallel()

	issuer := http.NewTokenIssuer()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tok := issuer.Issue("https://example.com/post")
		assert.False(t, seen[tok.Token], "token issued twice")
		seen[tok.Token] = true
	}
}

func TestTokenIssuer_CustomTTL(t *testing.T) {
	t.Parallel()

	issuer := http.NewTokenIssuer(http.WithTokenTTL(10 * time.Minute))

	tok := issuer.Issue("https://example.com/post")
	assert.Equal(t, "10m0s", tok.ExpiresIn)
}

package http

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/fwojciec/paperpress"
	"github.com/google/uuid"
)

// Ensure TokenIssuer implements paperpress.TokenIssuer at compile time.
var _ paperpress.TokenIssuer = (*TokenIssuer)(nil)

// DefaultTokenTTL is the default download token lifetime.
const DefaultTokenTTL = time.Hour

// TokenIssuer issues expiring download tokens returned alongside converted
// documents. Tokens are unguessable but stateless: nothing is stored
// server-side.
type TokenIssuer struct {
	ttl time.Duration
	now func() time.Time
}

// TokenOption configures a TokenIssuer.
type TokenOption func(*TokenIssuer)

// WithTokenTTL sets the token lifetime. Defaults to DefaultTokenTTL.
func WithTokenTTL(ttl time.Duration) TokenOption {
	return func(t *TokenIssuer) {
		t.ttl = ttl
	}
}

// NewTokenIssuer creates a new TokenIssuer.
func NewTokenIssuer(opts ...TokenOption) *TokenIssuer {
	t := &TokenIssuer{
		ttl: DefaultTokenTTL,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Issue creates a download token for the converted document at url.
func (t *TokenIssuer) Issue(url string) paperpress.DownloadToken {
	now := t.now()
	sum := sha256.Sum256([]byte(uuid.NewString() + url + strconv.FormatInt(now.UnixNano(), 10)))
	return paperpress.DownloadToken{
		Token:     hex.EncodeToString(sum[:]),
		ExpiresAt: now.Add(t.ttl),
		ExpiresIn: t.ttl.String(),
	}
}

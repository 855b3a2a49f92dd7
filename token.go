package paperpress

import "time"

// DownloadToken is an expiring token issued alongside a converted document.
// It is advisory metadata returned in response headers; the service keeps no
// server-side token state.
type DownloadToken struct {
	// Token is a hex-encoded, unguessable identifier.
	Token string

	// ExpiresAt is the instant the token stops being valid.
	ExpiresAt time.Time

	// ExpiresIn describes the token lifetime in human-readable form,
	// e.g. "1h0m0s".
	ExpiresIn string
}

// TokenIssuer issues expiring download tokens for converted documents.
type TokenIssuer interface {
	Issue(url string) DownloadToken
}

package mock

import "github.com/fwojciec/paperpress"

var _ paperpress.TokenIssuer = (*TokenIssuer)(nil)

// TokenIssuer is a mock implementation of paperpress.TokenIssuer.
type TokenIssuer struct {
	IssueFn func(url string) paperpress.DownloadToken
}

func (t *TokenIssuer) Issue(url string) paperpress.DownloadToken {
	return t.IssueFn(url)
}

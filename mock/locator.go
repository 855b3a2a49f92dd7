package mock

import "github.com/fwojciec/paperpress"

var _ paperpress.Locator = (*Locator)(nil)

// Locator is a mock implementation of paperpress.Locator.
type Locator struct {
	LocateFn func(html string) (*paperpress.ExtractResult, error)
}

func (l *Locator) Locate(html string) (*paperpress.ExtractResult, error) {
	return l.LocateFn(html)
}

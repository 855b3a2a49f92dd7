package mock

import (
	"context"

	"github.com/fwojciec/paperpress"
)

var _ paperpress.Cleaner = (*Cleaner)(nil)

// Cleaner is a mock implementation of paperpress.Cleaner.
type Cleaner struct {
	CleanFn func(ctx context.Context, contentHTML, baseURL string) (string, error)
}

func (c *Cleaner) Clean(ctx context.Context, contentHTML, baseURL string) (string, error) {
	return c.CleanFn(ctx, contentHTML, baseURL)
}

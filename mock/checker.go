package mock

import (
	"context"

	"github.com/fwojciec/paperpress"
)

var _ paperpress.URLChecker = (*URLChecker)(nil)

// URLChecker is a mock implementation of paperpress.URLChecker.
type URLChecker struct {
	CheckFn func(ctx context.Context, url string) (int, error)
}

func (c *URLChecker) Check(ctx context.Context, url string) (int, error) {
	return c.CheckFn(ctx, url)
}

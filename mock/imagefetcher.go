package mock

import (
	"context"

	"github.com/fwojciec/paperpress"
)

var _ paperpress.ImageFetcher = (*ImageFetcher)(nil)

// ImageFetcher is a mock implementation of paperpress.ImageFetcher.
type ImageFetcher struct {
	FetchImageFn func(ctx context.Context, url string) ([]byte, string, error)
}

func (f *ImageFetcher) FetchImage(ctx context.Context, url string) ([]byte, string, error) {
	return f.FetchImageFn(ctx, url)
}

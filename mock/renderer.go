package mock

import "github.com/fwojciec/paperpress"

var _ paperpress.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of paperpress.Renderer.
type Renderer struct {
	RenderFn func(markup, title string) ([]byte, error)
}

func (r *Renderer) Render(markup, title string) ([]byte, error) {
	return r.RenderFn(markup, title)
}

package render

import "context"

// Renderer turns a View into bytes of one content type.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, view View) ([]byte, error)
}

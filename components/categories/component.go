package categories

import "net/http"

// Component keeps one Options value and hands out handlers and routes built
// from it. A nil *Component behaves like one built with no options.
type Component struct {
	opts Options
}

func New(fns ...OptionFn) *Component {
	return &Component{opts: NewOptions(fns...)}
}

// Options returns the effective configuration.
func (c *Component) Options() Options {
	if c == nil {
		return DefaultOptions()
	}
	return c.opts
}

// Handler serves the category search.
func (c *Component) Handler() http.Handler {
	return HandlerWithOptions(c.Options())
}

// LabelHandler serves single-key lookups; it reads the "key" path value.
func (c *Component) LabelHandler() http.Handler {
	return LabelHandlerWithOptions(c.Options())
}

// RegisterRoutes mounts both handlers under basePath.
func (c *Component) RegisterRoutes(mux Mux, basePath string) (Routes, error) {
	return RegisterRoutesWithOptions(mux, basePath, c.Options())
}

package categories

import (
	"errors"
	"net/http"
	"path"
	"strings"
)

// Mux is satisfied by *http.ServeMux.
type Mux interface {
	Handle(pattern string, handler http.Handler)
}

// Routes reports the patterns a component was mounted on.
type Routes struct {
	// Search lists and filters the categories of a locale.
	Search string
	// Label resolves a single category key.
	Label string
}

// MountPath returns the search path the component serves under basePath.
func MountPath(basePath string, fns ...OptionFn) string {
	return joinRoute(basePath, NewOptions(fns...).RoutePath)
}

// RegisterRoutes mounts the search and label handlers under basePath.
func RegisterRoutes(mux Mux, basePath string, fns ...OptionFn) (Routes, error) {
	return RegisterRoutesWithOptions(mux, basePath, NewOptions(fns...))
}

// RegisterRoutesWithOptions is RegisterRoutes for a pre-built Options value.
// Registration uses method patterns, so mux must understand "GET /path".
func RegisterRoutesWithOptions(mux Mux, basePath string, opts Options) (Routes, error) {
	if mux == nil {
		return Routes{}, errors.New("categories: missing mux")
	}
	opts.fillDefaults()

	search := joinRoute(basePath, opts.RoutePath)
	routes := Routes{
		Search: search,
		Label:  strings.TrimRight(search, "/") + "/{key}",
	}
	mux.Handle(http.MethodGet+" "+routes.Search, HandlerWithOptions(opts))
	mux.Handle(http.MethodGet+" "+routes.Label, LabelHandlerWithOptions(opts))
	return routes, nil
}

// joinRoute cleans basePath and routePath into one absolute path.
func joinRoute(basePath, routePath string) string {
	joined := path.Join("/", strings.TrimSpace(basePath), strings.TrimSpace(routePath))
	if joined == "." {
		return "/"
	}
	return joined
}

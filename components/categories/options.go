package categories

import (
	"net/http"

	"github.com/goliatone/go-srdview/pkg/labels"
)

// EmptySearchMode decides what a request without a query returns.
type EmptySearchMode string

const (
	EmptySearchNone EmptySearchMode = "none"
	EmptySearchAll  EmptySearchMode = "all"
)

// GuardFunc rejects a request by returning an error. An error implementing
// HTTPError picks the status code; anything else is a 403.
type GuardFunc func(r *http.Request) error

// Params names the query parameters read by the search handler.
type Params struct {
	Search string
	Limit  string
	Locale string
}

// Options configures the handlers. Zero fields take the defaults of
// DefaultOptions when passed through NewOptions.
type Options struct {
	RoutePath       string
	Params          Params
	DefaultLimit    int
	MaxLimit        int
	EmptySearchMode EmptySearchMode
	Guard           GuardFunc

	// Catalog supplies the labels; nil uses labels.Default().
	Catalog *labels.Catalog
	// Locale is used when the request does not name one.
	Locale string
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	var o Options
	o.fillDefaults()
	return o
}

func NewOptions(fns ...OptionFn) Options {
	var o Options
	for _, fn := range fns {
		if fn != nil {
			fn(&o)
		}
	}
	o.fillDefaults()
	return o
}

func (o *Options) fillDefaults() {
	setDefault(&o.RoutePath, "/api/categories")
	setDefault(&o.Params.Search, "q")
	setDefault(&o.Params.Limit, "limit")
	setDefault(&o.Params.Locale, "locale")
	if o.DefaultLimit <= 0 {
		o.DefaultLimit = 50
	}
	if o.MaxLimit <= 0 {
		o.MaxLimit = 200
	}
	if o.EmptySearchMode != EmptySearchNone {
		o.EmptySearchMode = EmptySearchAll
	}
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) { o.RoutePath = path }
}

func WithSearchParam(name string) OptionFn {
	return func(o *Options) { o.Params.Search = name }
}

func WithLimitParam(name string) OptionFn {
	return func(o *Options) { o.Params.Limit = name }
}

func WithLocaleParam(name string) OptionFn {
	return func(o *Options) { o.Params.Locale = name }
}

func WithDefaultLimit(limit int) OptionFn {
	return func(o *Options) { o.DefaultLimit = limit }
}

func WithMaxLimit(limit int) OptionFn {
	return func(o *Options) { o.MaxLimit = limit }
}

func WithEmptySearchMode(mode EmptySearchMode) OptionFn {
	return func(o *Options) { o.EmptySearchMode = mode }
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) { o.Guard = guard }
}

func WithCatalog(catalog *labels.Catalog) OptionFn {
	return func(o *Options) { o.Catalog = catalog }
}

func WithLocale(locale string) OptionFn {
	return func(o *Options) { o.Locale = locale }
}

// pageSize clamps a requested limit: 0 means the default, negatives mean
// nothing.
func (o Options) pageSize(requested int) int {
	switch {
	case requested < 0:
		return 0
	case requested == 0:
		requested = o.DefaultLimit
	}
	return min(requested, o.MaxLimit)
}

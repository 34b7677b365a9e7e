package records

import (
	"context"
	"io/fs"
	"net/http"
	"time"
)

// Loader reads the document a Source points at.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// LoaderOptions is the resolved configuration of a Loader. URL sources are
// refused unless HTTPClient is set or AllowHTTPFallback is true.
type LoaderOptions struct {
	FileSystem        fs.FS
	HTTPClient        *http.Client
	AllowHTTPFallback bool
	RequestTimeout    time.Duration
}

type LoaderOption func(*LoaderOptions)

// WithFileSystem serves SourceFromFS lookups from files.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(o *LoaderOptions) { o.FileSystem = files }
}

// WithHTTPClient enables URL sources through client.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(o *LoaderOptions) { o.HTTPClient = client }
}

// WithHTTPFallback enables URL sources with a default client. timeout also
// applies to a client given through WithHTTPClient that has none.
func WithHTTPFallback(timeout time.Duration) LoaderOption {
	return func(o *LoaderOptions) {
		o.AllowHTTPFallback = true
		o.RequestTimeout = timeout
	}
}

func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	var o LoaderOptions
	for _, apply := range options {
		if apply != nil {
			apply(&o)
		}
	}
	return o
}

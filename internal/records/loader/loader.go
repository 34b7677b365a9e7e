// Package loader reads record documents for records.Loader.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/goliatone/go-srdview/pkg/records"
)

// Loader reads files, fs.FS entries and, when a client is configured, URLs.
type Loader struct {
	files   fs.FS
	client  *http.Client
	timeout time.Duration
}

var _ records.Loader = (*Loader)(nil)

// New resolves options into a Loader. An explicit client is copied so the
// request timeout can be applied without touching the caller's value.
func New(options records.LoaderOptions) *Loader {
	l := &Loader{files: options.FileSystem, timeout: options.RequestTimeout}
	switch {
	case options.HTTPClient != nil:
		client := *options.HTTPClient
		if client.Timeout == 0 {
			client.Timeout = l.timeout
		}
		l.client = &client
	case options.AllowHTTPFallback:
		l.client = &http.Client{Timeout: l.timeout}
	}
	return l
}

// Load reads src and wraps the bytes in a Document.
func (l *Loader) Load(ctx context.Context, src records.Source) (records.Document, error) {
	if src == nil {
		return records.Document{}, errors.New("records loader: nil source")
	}
	if err := ctx.Err(); err != nil {
		return records.Document{}, err
	}

	location := src.Location()
	if location == "" {
		return records.Document{}, fmt.Errorf("records loader: empty %s location", src.Kind())
	}

	var (
		data []byte
		err  error
	)
	switch src.Kind() {
	case records.SourceKindFile:
		data, err = os.ReadFile(location)
	case records.SourceKindFS:
		if l.files == nil {
			return records.Document{}, errors.New("records loader: no filesystem configured")
		}
		data, err = fs.ReadFile(l.files, location)
	case records.SourceKindURL:
		if l.client == nil {
			return records.Document{}, errors.New("records loader: http sources are disabled")
		}
		data, err = l.fetch(ctx, location)
	default:
		return records.Document{}, fmt.Errorf("records loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return records.Document{}, err
	}
	return records.NewDocument(src, data)
}

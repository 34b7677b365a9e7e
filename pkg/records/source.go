package records

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// Source identifies where a record document lives.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

type fileSource struct {
	path string
}

func (s fileSource) Location() string { return s.path }
func (s fileSource) Kind() SourceKind { return SourceKindFile }

// SourceFromFile returns a Source pointing to a file path.
func SourceFromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type fsSource struct {
	name string
}

func (s fsSource) Location() string { return s.name }
func (s fsSource) Kind() SourceKind { return SourceKindFS }

// SourceFromFS returns a Source identifying a resource inside an fs.FS.
func SourceFromFS(name string) Source {
	return fsSource{name: name}
}

type urlSource struct {
	raw string
}

func (s urlSource) Location() string { return s.raw }
func (s urlSource) Kind() SourceKind { return SourceKindURL }

// SourceFromURL parses raw and returns a Source. It panics if the URL is
// invalid to surface configuration mistakes early.
func SourceFromURL(raw string) Source {
	if raw == "" {
		panic("records: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		panic(fmt.Sprintf("records: invalid URL %q: %v", raw, err))
	}
	return urlSource{raw: raw}
}

// APIPath returns the API path of a category listing, or of one record when
// index is set: /api/<category>[/<index>].
func APIPath(category, index string) string {
	p := "/api/" + url.PathEscape(strings.TrimSpace(category))
	if index = strings.TrimSpace(index); index != "" {
		p += "/" + url.PathEscape(index)
	}
	return p
}

// SourceFromAPI builds the URL source for a category listing or record
// served by the SRD API at origin.
func SourceFromAPI(origin, category, index string) (Source, error) {
	base, err := url.Parse(strings.TrimSpace(origin))
	if err != nil {
		return nil, fmt.Errorf("records: parse origin %q: %w", origin, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("records: origin %q must be http or https", origin)
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, fmt.Errorf("records: category is required")
	}
	elems := []string{"api", category}
	if index = strings.TrimSpace(index); index != "" {
		elems = append(elems, index)
	}
	return urlSource{raw: base.JoinPath(elems...).String()}, nil
}

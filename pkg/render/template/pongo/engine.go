package pongo

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"path"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-srdview/pkg/render/template"
)

const defaultExtension = ".tpl"

// Option configures New.
type Option func(*settings)

type settings struct {
	dir     string
	files   fs.FS
	ext     string
	globals map[string]any
}

// WithBaseDir adds a directory loader. It is consulted before WithFS, so a
// directory can override single embedded templates.
func WithBaseDir(dir string) Option {
	return func(s *settings) { s.dir = strings.TrimSpace(dir) }
}

// WithFS adds an fs.FS loader.
func WithFS(files fs.FS) Option {
	return func(s *settings) { s.files = files }
}

// WithExtension sets the suffix appended to names passed without one.
func WithExtension(ext string) Option {
	return func(s *settings) {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			return
		}
		s.ext = "." + strings.TrimPrefix(ext, ".")
	}
}

// WithGlobalData makes values visible to every template.
func WithGlobalData(data map[string]any) Option {
	return func(s *settings) {
		if s.globals == nil {
			s.globals = map[string]any{}
		}
		maps.Copy(s.globals, data)
	}
}

// Engine renders pongo2 templates. Compiled templates are cached by the
// underlying template set, so an Engine is cheap to share.
type Engine struct {
	set *pongo2.TemplateSet
	ext string

	// guards set.Globals
	mu sync.RWMutex
}

var _ template.Executor = (*Engine)(nil)

// New builds an Engine. At least one of WithBaseDir or WithFS is required.
func New(opts ...Option) (*Engine, error) {
	s := settings{ext: defaultExtension}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	var loaders []pongo2.TemplateLoader
	if s.dir != "" {
		dirLoader, err := pongo2.NewLocalFileSystemLoader(s.dir)
		if err != nil {
			return nil, fmt.Errorf("pongo: template dir %s: %w", s.dir, err)
		}
		loaders = append(loaders, dirLoader)
	}
	if s.files != nil {
		loaders = append(loaders, pongo2.NewFSLoader(s.files))
	}
	if len(loaders) == 0 {
		return nil, errors.New("pongo: no template source configured")
	}

	e := &Engine{set: pongo2.NewSet("srdview", loaders...), ext: s.ext}
	e.SetGlobals(s.globals)
	return e, nil
}

// Execute renders the template called name, adding the configured extension
// when name has none.
func (e *Engine) Execute(w io.Writer, name string, data map[string]any) error {
	if e == nil || e.set == nil {
		return errors.New("pongo: nil engine")
	}
	if path.Ext(name) == "" {
		name += e.ext
	}

	tpl, err := e.set.FromCache(name)
	if err != nil {
		return fmt.Errorf("pongo: load %s: %w", name, err)
	}
	return e.run(w, tpl, name, data)
}

// ExecuteString compiles source and renders it once.
func (e *Engine) ExecuteString(w io.Writer, source string, data map[string]any) error {
	if e == nil || e.set == nil {
		return errors.New("pongo: nil engine")
	}
	tpl, err := e.set.FromString(source)
	if err != nil {
		return fmt.Errorf("pongo: compile inline template: %w", err)
	}
	return e.run(w, tpl, "inline template", data)
}

// SetGlobals merges data into the values every template sees.
func (e *Engine) SetGlobals(data map[string]any) {
	if e == nil || e.set == nil || len(data) == 0 {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.set.Globals == nil {
		e.set.Globals = pongo2.Context{}
	}
	e.set.Globals.Update(pongo2.Context(data))
}

func (e *Engine) run(w io.Writer, tpl *pongo2.Template, name string, data map[string]any) error {
	ctx := pongo2.Context{}
	for key, value := range data {
		if key = strings.TrimSpace(key); key != "" {
			ctx[key] = value
		}
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	if err := tpl.ExecuteWriter(ctx, w); err != nil {
		return fmt.Errorf("pongo: execute %s: %w", name, err)
	}
	return nil
}

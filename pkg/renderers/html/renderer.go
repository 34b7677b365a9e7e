package html

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-srdview/pkg/render"
	rendertemplate "github.com/goliatone/go-srdview/pkg/render/template"
	"github.com/goliatone/go-srdview/pkg/render/template/pongo"
)

const recordTemplate = "templates/record.tpl"

type Option func(*config)

type config struct {
	templateFS   fs.FS
	executor     rendertemplate.Executor
	stylesheets  []string
	inlineStyles bool
	fragment     bool
	lang         string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithExecutor replaces the pongo2 engine. The executor receives the name
// "templates/record.tpl".
func WithExecutor(executor rendertemplate.Executor) Option {
	return func(cfg *config) {
		if executor != nil {
			cfg.executor = executor
		}
	}
}

// WithStylesheet links an external stylesheet from the document head.
func WithStylesheet(href string) Option {
	return func(cfg *config) {
		if href != "" {
			cfg.stylesheets = append(cfg.stylesheets, href)
		}
	}
}

// WithDefaultStyles inlines the embedded stylesheet.
func WithDefaultStyles() Option {
	return func(cfg *config) {
		cfg.inlineStyles = true
	}
}

// WithLanguage sets the document lang attribute.
func WithLanguage(lang string) Option {
	return func(cfg *config) {
		if lang != "" {
			cfg.lang = lang
		}
	}
}

// WithFragment renders only the record article, without the document shell.
func WithFragment() Option {
	return func(cfg *config) {
		cfg.fragment = true
	}
}

// Renderer renders a View as an HTML page. Entry HTML is sanitized upstream
// by the markup converter and is the only value emitted unescaped.
type Renderer struct {
	templates    rendertemplate.Executor
	stylesheets  []string
	inlineStyles string
	fragment     bool
	lang         string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS(), lang: "it"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	executor := cfg.executor
	if executor == nil {
		if cfg.templateFS == nil {
			cfg.templateFS = TemplatesFS()
		}
		engine, err := pongo.New(pongo.WithFS(cfg.templateFS))
		if err != nil {
			return nil, fmt.Errorf("html renderer: %w", err)
		}
		executor = engine
	}

	r := &Renderer{
		templates:   executor,
		stylesheets: append([]string(nil), cfg.stylesheets...),
		fragment:    cfg.fragment,
		lang:        cfg.lang,
	}
	if cfg.inlineStyles {
		r.inlineStyles = defaultStylesheet()
	}
	return r, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(_ context.Context, view render.View) ([]byte, error) {
	if r == nil || r.templates == nil {
		return nil, errors.New("html renderer: no template executor")
	}

	var buf bytes.Buffer
	err := r.templates.Execute(&buf, recordTemplate, map[string]any{
		"view":         view,
		"stylesheets":  r.stylesheets,
		"inline_style": r.inlineStyles,
		"fragment":     r.fragment,
		"lang":         r.lang,
	})
	if err != nil {
		return nil, fmt.Errorf("html renderer: %s %s: %w", view.Category, view.Title, err)
	}
	return buf.Bytes(), nil
}

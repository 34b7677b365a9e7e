// Package jsonview renders views as JSON for API consumers.
package jsonview

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-srdview/pkg/render"
)

// Option configures the renderer.
type Option func(*Renderer)

// WithIndent pretty-prints the output.
func WithIndent(indent string) Option {
	return func(r *Renderer) {
		r.indent = indent
	}
}

// Renderer emits the view as a JSON document.
type Renderer struct {
	indent string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the JSON renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string {
	return "json"
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

func (r *Renderer) Render(_ context.Context, view render.View) ([]byte, error) {
	if view.Entries == nil {
		view.Entries = []render.ViewEntry{}
	}

	var (
		out []byte
		err error
	)
	if r != nil && r.indent != "" {
		out, err = json.MarshalIndent(view, "", r.indent)
	} else {
		out, err = json.Marshal(view)
	}
	if err != nil {
		return nil, fmt.Errorf("jsonview: marshal view: %w", err)
	}
	return out, nil
}

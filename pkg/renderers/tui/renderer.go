package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-srdview/pkg/render"
)

// Renderer implements render.Renderer for terminals. Markdown values go
// through glamour; everything else is printed as plain text.
type Renderer struct {
	theme    Theme
	wrap     int
	style    string
	plain    bool
	markdown *glamour.TermRenderer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a text renderer.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		theme: DefaultTheme(),
		wrap:  80,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.plain {
		return r, nil
	}

	termOpts := []glamour.TermRendererOption{glamour.WithWordWrap(r.wrap)}
	if r.style != "" {
		termOpts = append(termOpts, glamour.WithStandardStyle(r.style))
	} else {
		termOpts = append(termOpts, glamour.WithAutoStyle())
	}
	md, err := glamour.NewTermRenderer(termOpts...)
	if err != nil {
		return nil, fmt.Errorf("tui: configure markdown renderer: %w", err)
	}
	r.markdown = md
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "text"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render prints the view header followed by one block per entry.
func (r *Renderer) Render(ctx context.Context, view render.View) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString(r.theme.Category.Render(view.CategoryLabel))
	b.WriteString("\n")
	b.WriteString(r.theme.Title.Render(view.Title))
	b.WriteString("\n")

	for _, entry := range view.Entries {
		value, err := r.entryValue(entry)
		if err != nil {
			return nil, fmt.Errorf("tui: render %q: %w", entry.Key, err)
		}
		if strings.Contains(value, "\n") {
			b.WriteString(r.theme.Label.Render(entry.Label))
			b.WriteString("\n")
			b.WriteString(value)
			b.WriteString("\n")
			continue
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			r.theme.Label.Render(entry.Label),
			r.theme.Value.Render(value),
		))
		b.WriteString("\n")
	}
	return []byte(b.String()), nil
}

func (r *Renderer) entryValue(entry render.ViewEntry) (string, error) {
	if entry.HTML == "" || r.markdown == nil {
		return entry.Text, nil
	}
	out, err := r.markdown.Render(entry.Text)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}

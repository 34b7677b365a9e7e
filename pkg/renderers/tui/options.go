package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the lipgloss styles used by the text renderer.
type Theme struct {
	Category lipgloss.Style
	Title    lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
}

// DefaultTheme mirrors the colours of the embedded HTML stylesheet.
func DefaultTheme() Theme {
	accent := lipgloss.Color("#7A2E1D")
	muted := lipgloss.Color("#6B7280")
	return Theme{
		Category: lipgloss.NewStyle().Foreground(muted).Italic(true),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1),
		Label:    lipgloss.NewStyle().Bold(true).Width(18),
		Value:    lipgloss.NewStyle(),
	}
}

// Option configures the text renderer.
type Option func(*Renderer)

// WithTheme overrides the lipgloss styles.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}

// WithWordWrap sets the markdown wrap width. Zero disables wrapping.
func WithWordWrap(width int) Option {
	return func(r *Renderer) {
		if width >= 0 {
			r.wrap = width
		}
	}
}

// WithStyle selects a glamour standard style ("dark", "light", "notty").
// The default detects the terminal background.
func WithStyle(name string) Option {
	return func(r *Renderer) {
		r.style = name
	}
}

// WithPlainMarkdown prints markdown source instead of rendering it.
func WithPlainMarkdown() Option {
	return func(r *Renderer) {
		r.plain = true
	}
}

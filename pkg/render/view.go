package render

import (
	"strings"

	"github.com/goliatone/go-srdview/pkg/labels"
	"github.com/goliatone/go-srdview/pkg/layout"
	"github.com/goliatone/go-srdview/pkg/markup"
)

// View is the display form of one record.
type View struct {
	Category      string      `json:"category"`
	CategoryLabel string      `json:"categoryLabel"`
	Title         string      `json:"title"`
	Entries       []ViewEntry `json:"entries"`
}

// ViewEntry is one arranged field. HTML is set for markdown values and is
// already sanitized; Text is the plain display value.
type ViewEntry struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Text  string `json:"text"`
	HTML  string `json:"html,omitempty"`
}

// Builder assembles views from the three resolvers. Nil dependencies fall
// back to the package defaults.
type Builder struct {
	labels    *labels.Table
	layouts   *layout.Store
	converter *markup.Converter
	arrange   []layout.ArrangeOption
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithLabels sets the category label table.
func WithLabels(table *labels.Table) BuilderOption {
	return func(b *Builder) {
		b.labels = table
	}
}

// WithLayouts sets the layout store.
func WithLayouts(store *layout.Store) BuilderOption {
	return func(b *Builder) {
		b.layouts = store
	}
}

// WithConverter sets the markup converter.
func WithConverter(converter *markup.Converter) BuilderOption {
	return func(b *Builder) {
		b.converter = converter
	}
}

// WithArrangeOptions forwards options to layout.Store.Arrange.
func WithArrangeOptions(opts ...layout.ArrangeOption) BuilderOption {
	return func(b *Builder) {
		b.arrange = append(b.arrange, opts...)
	}
}

// NewBuilder constructs a Builder.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(b)
	}
	if b.labels == nil {
		b.labels = labels.Default().Table("")
	}
	if b.layouts == nil {
		b.layouts = layout.Default()
	}
	if b.converter == nil {
		b.converter = markup.Default()
	}
	return b
}

// Build arranges record for category. The title comes from the record's
// name (or index) and falls back to the category label.
func (b *Builder) Build(category string, record map[string]any) View {
	if b == nil {
		b = NewBuilder()
	}

	view := View{
		Category:      category,
		CategoryLabel: b.labels.LabelFor(category),
		Title:         recordTitle(record),
	}
	if view.Title == "" {
		view.Title = view.CategoryLabel
	}

	for _, entry := range b.layouts.Arrange(category, record, b.arrange...) {
		text, isMarkdown := FormatValue(entry.Value)
		item := ViewEntry{Key: entry.Key, Label: entry.Label, Text: text}
		if isMarkdown {
			item.HTML = b.converter.Convert(markup.Text(text))
		}
		view.Entries = append(view.Entries, item)
	}
	return view
}

func recordTitle(record map[string]any) string {
	for _, key := range []string{"name", "index"} {
		if value, ok := record[key].(string); ok {
			if trimmed := strings.TrimSpace(value); trimmed != "" {
				return trimmed
			}
		}
	}
	return ""
}

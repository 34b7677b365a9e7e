package srdview

import (
	"fmt"
	"sync"

	"github.com/goliatone/go-srdview/pkg/labels"
	"github.com/goliatone/go-srdview/pkg/layout"
	"github.com/goliatone/go-srdview/pkg/markup"
	"github.com/goliatone/go-srdview/pkg/render"
)

// Config is the immutable bundle of resolvers. It is safe for concurrent use.
type Config struct {
	catalog   *labels.Catalog
	table     *labels.Table
	layouts   *layout.Store
	converter *markup.Converter
}

// New builds a Config. Without options it uses the embedded Italian labels,
// the embedded layout policies and the default converter.
func New(opts ...Option) (*Config, error) {
	o := options{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
	}

	catalog := labels.Default()
	if o.labelsFS != nil {
		loaded, err := labels.LoadFS(o.labelsFS)
		if err != nil {
			return nil, fmt.Errorf("srdview: load labels: %w", err)
		}
		catalog = loaded
	}

	store := layout.Default()
	if o.layoutsFS != nil || len(o.layoutOpts) > 0 {
		fsys := o.layoutsFS
		if fsys == nil {
			fsys = layout.EmbeddedFS()
		}
		loaded, err := layout.LoadFS(fsys, o.layoutOpts...)
		if err != nil {
			return nil, fmt.Errorf("srdview: load layouts: %w", err)
		}
		store = loaded
	}

	converter := o.converter
	if converter == nil {
		converter = markup.Default()
	}

	return &Config{
		catalog:   catalog,
		table:     catalog.Table(o.locale),
		layouts:   store,
		converter: converter,
	}, nil
}

var (
	defaultOnce   sync.Once
	defaultConfig *Config
)

// Default returns the Config built from the embedded tables.
func Default() *Config {
	defaultOnce.Do(func() {
		cfg, err := New()
		if err != nil {
			panic(err)
		}
		defaultConfig = cfg
	})
	return defaultConfig
}

// LabelFor returns the localized label of a category, or key itself.
func (c *Config) LabelFor(key string) string {
	return c.Labels().LabelFor(key)
}

// LayoutFor returns the policy of a category and whether one exists.
func (c *Config) LayoutFor(category string) (layout.Policy, bool) {
	return c.Layouts().LayoutFor(category)
}

// AliasFor returns the first alias any category declares for field.
func (c *Config) AliasFor(field string) (string, bool) {
	return c.Layouts().AliasFor(field)
}

// ShouldHide reports whether field is hidden by default in any category.
func (c *Config) ShouldHide(field string) bool {
	return c.Layouts().ShouldHide(field)
}

// ToSafeHTML converts markdown to sanitized HTML.
func (c *Config) ToSafeHTML(in markup.Input) string {
	return c.Converter().Convert(in)
}

// Arrange orders, hides and labels the fields of record for category.
func (c *Config) Arrange(category string, record map[string]any, opts ...layout.ArrangeOption) []layout.Entry {
	return c.Layouts().Arrange(category, record, opts...)
}

// ViewBuilder returns a render.Builder wired to this Config.
func (c *Config) ViewBuilder(opts ...render.BuilderOption) *render.Builder {
	base := []render.BuilderOption{
		render.WithLabels(c.Labels()),
		render.WithLayouts(c.Layouts()),
		render.WithConverter(c.Converter()),
	}
	return render.NewBuilder(append(base, opts...)...)
}

// Locale reports the locale of the selected label table.
func (c *Config) Locale() string {
	return c.Labels().Locale()
}

// Catalog returns every loaded label table.
func (c *Config) Catalog() *labels.Catalog {
	if c == nil {
		return labels.Default()
	}
	return c.catalog
}

// Labels returns the selected label table.
func (c *Config) Labels() *labels.Table {
	if c == nil {
		return labels.Default().Table("")
	}
	return c.table
}

// Layouts returns the layout store.
func (c *Config) Layouts() *layout.Store {
	if c == nil {
		return layout.Default()
	}
	return c.layouts
}

// Converter returns the markup converter.
func (c *Config) Converter() *markup.Converter {
	if c == nil {
		return markup.Default()
	}
	return c.converter
}

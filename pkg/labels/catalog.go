package labels

import (
	"errors"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLocale is used when callers do not ask for a specific locale.
const DefaultLocale = "it-IT"

// ErrNoTables is returned when a catalog would be built without any locale.
var ErrNoTables = errors.New("labels: no locale tables defined")

// Catalog groups label tables by locale and picks the closest table for a
// requested locale.
type Catalog struct {
	tables        map[string]*Table
	locales       []string
	defaultLocale string
	matcher       language.Matcher
}

// Option customises catalog construction.
type Option func(*catalogConfig)

type catalogConfig struct {
	defaultLocale string
}

// WithDefaultLocale selects the table used when no locale (or an unsupported
// one) is requested. Unknown locales fall back to the first loaded locale.
func WithDefaultLocale(locale string) Option {
	return func(cfg *catalogConfig) {
		if cfg == nil {
			return
		}
		cfg.defaultLocale = strings.TrimSpace(locale)
	}
}

// NewCatalog builds a catalog from pre-constructed tables.
func NewCatalog(tables []*Table, opts ...Option) (*Catalog, error) {
	cfg := catalogConfig{defaultLocale: DefaultLocale}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	byLocale := make(map[string]*Table, len(tables))
	for _, table := range tables {
		if table == nil {
			continue
		}
		byLocale[table.Locale()] = table
	}
	if len(byLocale) == 0 {
		return nil, ErrNoTables
	}

	locales := make([]string, 0, len(byLocale))
	for locale := range byLocale {
		locales = append(locales, locale)
	}
	sort.Strings(locales)

	defaultLocale := cfg.defaultLocale
	if _, ok := byLocale[defaultLocale]; !ok {
		defaultLocale = locales[0]
	}

	// The matcher falls back to its first tag, so the default goes first.
	ordered := make([]string, 0, len(locales))
	ordered = append(ordered, defaultLocale)
	for _, locale := range locales {
		if locale != defaultLocale {
			ordered = append(ordered, locale)
		}
	}
	tags := make([]language.Tag, 0, len(ordered))
	for _, locale := range ordered {
		tags = append(tags, language.Make(locale))
	}

	return &Catalog{
		tables:        byLocale,
		locales:       ordered,
		defaultLocale: defaultLocale,
		matcher:       language.NewMatcher(tags),
	}, nil
}

// Table returns the table that best matches locale. Blank or unsupported
// locales resolve to the default table. A nil catalog returns a nil table,
// which still answers LabelFor with the identity fallback.
func (c *Catalog) Table(locale string) *Table {
	if c == nil {
		return nil
	}
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return c.tables[c.defaultLocale]
	}
	if table, ok := c.tables[locale]; ok {
		return table
	}

	table, _ := c.TableFor(language.Make(locale))
	return table
}

// TableFor returns the table that best matches a list of preferred tags, as
// parsed from an Accept-Language header. Every tag is considered, so a
// lower-weighted supported language wins over unsupported preferred ones.
// The boolean is false when nothing matched and the default table was
// returned.
func (c *Catalog) TableFor(tags ...language.Tag) (*Table, bool) {
	if c == nil {
		return nil, false
	}
	if len(tags) == 0 {
		return c.tables[c.defaultLocale], false
	}
	_, idx, confidence := c.matcher.Match(tags...)
	if confidence == language.No || idx < 0 || idx >= len(c.locales) {
		return c.tables[c.defaultLocale], false
	}
	return c.tables[c.locales[idx]], true
}

// LabelFor resolves key against the table matching locale.
func (c *Catalog) LabelFor(locale, key string) string {
	return c.Table(locale).LabelFor(key)
}

// Locales returns the available locales, default first.
func (c *Catalog) Locales() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.locales...)
}

// DefaultLocale returns the locale used for blank or unsupported requests.
func (c *Catalog) DefaultLocale() string {
	if c == nil {
		return ""
	}
	return c.defaultLocale
}

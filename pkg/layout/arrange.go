package layout

import "sort"

// Entry is one displayable field of a record.
type Entry struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value any    `json:"value"`
}

// ArrangeOption tunes how entries are labeled.
type ArrangeOption func(*arrangeConfig)

type arrangeConfig struct {
	labeler       func(string) string
	globalAliases bool
}

func newArrangeConfig(opts []ArrangeOption) arrangeConfig {
	cfg := arrangeConfig{labeler: Humanize, globalAliases: true}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.labeler == nil {
		cfg.labeler = func(field string) string { return field }
	}
	return cfg
}

// WithLabeler sets the label used for fields without any alias. The default
// is Humanize; nil keeps the raw field name.
func WithLabeler(fn func(string) string) ArrangeOption {
	return func(cfg *arrangeConfig) {
		cfg.labeler = fn
	}
}

// WithoutGlobalAliases stops Store.Arrange from borrowing aliases defined by
// other categories.
func WithoutGlobalAliases() ArrangeOption {
	return func(cfg *arrangeConfig) {
		cfg.globalAliases = false
	}
}

// Arrange applies policy to record: hidden fields are dropped, fields listed
// in FieldOrder come first in that order, and the remaining fields follow in
// lexical order. Only the policy's own aliases are used.
func Arrange(policy Policy, record map[string]any, opts ...ArrangeOption) []Entry {
	cfg := newArrangeConfig(opts)
	return arrange(record, policy, policy.Hidden, nil, cfg)
}

// Arrange applies the policy of category to record. Categories without a
// policy keep lexical order and fall back to the category-blind hide and
// alias lookups, which is what generic rendering code expects.
func (s *Store) Arrange(category string, record map[string]any, opts ...ArrangeOption) []Entry {
	cfg := newArrangeConfig(opts)

	policy, ok := s.LayoutFor(category)
	hidden := policy.Hidden
	if !ok {
		hidden = s.ShouldHide
	}

	var fallback func(string) (string, bool)
	if cfg.globalAliases {
		fallback = s.AliasFor
	}
	return arrange(record, policy, hidden, fallback, cfg)
}

func arrange(record map[string]any, policy Policy, hidden func(string) bool, fallback func(string) (string, bool), cfg arrangeConfig) []Entry {
	if len(record) == 0 {
		return nil
	}

	label := func(field string) string {
		if alias, ok := policy.AliasFor(field); ok {
			return alias
		}
		if fallback != nil {
			if alias, ok := fallback(field); ok {
				return alias
			}
		}
		return cfg.labeler(field)
	}

	entries := make([]Entry, 0, len(record))
	placed := make(map[string]struct{}, len(policy.FieldOrder))
	for _, field := range policy.FieldOrder {
		value, ok := record[field]
		if !ok || hidden(field) {
			continue
		}
		placed[field] = struct{}{}
		entries = append(entries, Entry{Key: field, Label: label(field), Value: value})
	}

	rest := make([]string, 0, len(record)-len(placed))
	for field := range record {
		if _, ok := placed[field]; ok || hidden(field) {
			continue
		}
		rest = append(rest, field)
	}
	sort.Strings(rest)

	for _, field := range rest {
		entries = append(entries, Entry{Key: field, Label: label(field), Value: record[field]})
	}
	return entries
}

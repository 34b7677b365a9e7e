package layout

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrEmptyCategory is returned when a category is declared without a name.
var ErrEmptyCategory = errors.New("layout: category name is empty")

// Category pairs a category key with its policy. Slices of Category keep the
// declaration order that category-blind lookups depend on.
type Category struct {
	Name   string
	Policy Policy
}

// Store holds the policies of every configured category. It is safe for
// concurrent readers when treated as immutable after construction.
type Store struct {
	order      []string
	policies   map[string]Policy
	commonHide []string
	hideAny    map[string]struct{}
}

// New builds a store from categories in declaration order.
func New(categories []Category, opts ...Option) (*Store, error) {
	cfg := newStoreConfig(opts)
	store := &Store{
		order:      make([]string, 0, len(categories)),
		policies:   make(map[string]Policy, len(categories)),
		commonHide: cfg.commonHide,
		hideAny:    make(map[string]struct{}),
	}
	for _, field := range cfg.commonHide {
		store.hideAny[field] = struct{}{}
	}

	for _, category := range categories {
		if err := store.add(category.Name, category.Policy, ""); err != nil {
			return nil, err
		}
	}
	return store, nil
}

func (s *Store) add(name string, policy Policy, source string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		if source != "" {
			return fmt.Errorf("%w (file %s)", ErrEmptyCategory, source)
		}
		return ErrEmptyCategory
	}
	if _, exists := s.policies[name]; exists {
		if source != "" {
			return fmt.Errorf("layout: duplicate category %q (file %s)", name, source)
		}
		return fmt.Errorf("layout: duplicate category %q", name)
	}

	normalised, err := normalisePolicy(name, policy)
	if err != nil {
		if source != "" {
			return fmt.Errorf("%w (file %s)", err, source)
		}
		return err
	}

	for _, field := range normalised.Hide {
		s.hideAny[field] = struct{}{}
	}
	s.order = append(s.order, name)
	s.policies[name] = normalised.withCommonHide(s.commonHide)
	return nil
}

func normalisePolicy(name string, raw Policy) (Policy, error) {
	out := Policy{}

	seen := make(map[string]struct{}, len(raw.FieldOrder))
	for idx, field := range raw.FieldOrder {
		field = strings.TrimSpace(field)
		if field == "" {
			return Policy{}, fmt.Errorf("layout: category %q fieldOrder has a blank entry at index %d", name, idx)
		}
		if _, dup := seen[field]; dup {
			return Policy{}, fmt.Errorf("layout: category %q lists field %q twice in fieldOrder", name, field)
		}
		seen[field] = struct{}{}
		out.FieldOrder = append(out.FieldOrder, field)
	}

	if len(raw.Aliases) > 0 {
		out.Aliases = make(map[string]string, len(raw.Aliases))
		for field, alias := range raw.Aliases {
			field = strings.TrimSpace(field)
			if field == "" {
				return Policy{}, fmt.Errorf("layout: category %q aliases a blank field", name)
			}
			out.Aliases[field] = strings.TrimSpace(alias)
		}
	}

	for _, field := range raw.Hide {
		field = strings.TrimSpace(field)
		if field == "" {
			return Policy{}, fmt.Errorf("layout: category %q hides a blank field", name)
		}
		out.Hide = append(out.Hide, field)
	}
	return out, nil
}

// LayoutFor returns a copy of the policy configured for category. When ok is
// false callers should apply the default layout: no reordering, no aliasing
// and only the common hide set.
func (s *Store) LayoutFor(category string) (Policy, bool) {
	if s == nil {
		return Policy{}, false
	}
	policy, ok := s.policies[category]
	if !ok {
		return Policy{}, false
	}
	return policy.clone(), true
}

// DefaultPolicy is the policy applied to categories without configuration.
func (s *Store) DefaultPolicy() Policy {
	return Policy{Hide: s.CommonHide()}
}

// AliasFor searches every category, in declaration order, and returns the
// first alias defined for field.
func (s *Store) AliasFor(field string) (string, bool) {
	if s == nil {
		return "", false
	}
	for _, name := range s.order {
		if alias, ok := s.policies[name].AliasFor(field); ok {
			return alias, true
		}
	}
	return "", false
}

// ShouldHide reports whether field is in the common hide set or hidden by
// any configured category. Callers that know the category should prefer
// Policy.Hidden.
func (s *Store) ShouldHide(field string) bool {
	if s == nil {
		for _, hidden := range DefaultCommonHide {
			if hidden == field {
				return true
			}
		}
		return false
	}
	_, ok := s.hideAny[field]
	return ok
}

// Categories returns the configured categories in declaration order.
func (s *Store) Categories() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.order...)
}

// CommonHide returns the fields hidden for every category.
func (s *Store) CommonHide() []string {
	if s == nil {
		return append([]string(nil), DefaultCommonHide...)
	}
	return append([]string(nil), s.commonHide...)
}

// Empty reports whether the store holds any category.
func (s *Store) Empty() bool {
	return s == nil || len(s.order) == 0
}

// Conflict describes a field aliased differently by several categories.
// Categories and Aliases are aligned and follow declaration order; the first
// entry is what AliasFor returns.
type Conflict struct {
	Field      string
	Categories []string
	Aliases    []string
}

// Conflicts lists the fields whose category-blind alias depends on
// declaration order, sorted by field name.
func (s *Store) Conflicts() []Conflict {
	if s == nil {
		return nil
	}
	byField := make(map[string]*Conflict)
	for _, name := range s.order {
		for field, alias := range s.policies[name].Aliases {
			if alias == "" {
				continue
			}
			entry, ok := byField[field]
			if !ok {
				entry = &Conflict{Field: field}
				byField[field] = entry
			}
			entry.Categories = append(entry.Categories, name)
			entry.Aliases = append(entry.Aliases, alias)
		}
	}

	var out []Conflict
	for _, entry := range byField {
		if !distinct(entry.Aliases) {
			continue
		}
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}

func distinct(values []string) bool {
	for _, value := range values[1:] {
		if value != values[0] {
			return true
		}
	}
	return false
}

package layout

// DefaultCommonHide lists the fields hidden for every category: the API's
// internal identifiers.
var DefaultCommonHide = []string{"index", "url"}

// Policy is the display policy of one category.
type Policy struct {
	// FieldOrder lists fields in display order. Fields missing from a record
	// are skipped; record fields not listed here follow the listed ones.
	FieldOrder []string `json:"fieldOrder,omitempty" yaml:"fieldOrder,omitempty"`
	// Aliases maps field names to display labels for this category only.
	Aliases map[string]string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	// Hide lists suppressed fields. Policies returned by a Store already
	// include the common hide set.
	Hide []string `json:"hide,omitempty" yaml:"hide,omitempty"`
}

// Hidden reports whether field is suppressed by this policy.
func (p Policy) Hidden(field string) bool {
	for _, hidden := range p.Hide {
		if hidden == field {
			return true
		}
	}
	return false
}

// AliasFor returns the category-scoped display label for field.
func (p Policy) AliasFor(field string) (string, bool) {
	alias, ok := p.Aliases[field]
	if !ok || alias == "" {
		return "", false
	}
	return alias, true
}

// Position returns the index of field in FieldOrder, or -1.
func (p Policy) Position(field string) int {
	for idx, name := range p.FieldOrder {
		if name == field {
			return idx
		}
	}
	return -1
}

func (p Policy) clone() Policy {
	out := Policy{
		FieldOrder: append([]string(nil), p.FieldOrder...),
		Hide:       append([]string(nil), p.Hide...),
	}
	if len(p.Aliases) > 0 {
		out.Aliases = make(map[string]string, len(p.Aliases))
		for field, alias := range p.Aliases {
			out.Aliases[field] = alias
		}
	}
	return out
}

// withCommonHide returns a copy of p whose Hide list starts with common and
// keeps the category's own entries after it, without duplicates.
func (p Policy) withCommonHide(common []string) Policy {
	out := p.clone()
	merged := make([]string, 0, len(common)+len(p.Hide))
	seen := make(map[string]struct{}, len(common)+len(p.Hide))
	for _, list := range [][]string{common, p.Hide} {
		for _, field := range list {
			if _, ok := seen[field]; ok {
				continue
			}
			seen[field] = struct{}{}
			merged = append(merged, field)
		}
	}
	out.Hide = merged
	return out
}

package labels

import "sort"

// Table holds the labels for a single locale. It is safe for concurrent
// readers; nothing mutates it after construction.
type Table struct {
	locale string
	labels map[string]string
}

// NewTable copies the provided labels into a new table.
func NewTable(locale string, labels map[string]string) *Table {
	out := &Table{
		locale: locale,
		labels: make(map[string]string, len(labels)),
	}
	for key, label := range labels {
		out.labels[key] = label
	}
	return out
}

// LabelFor returns the configured label for key, or key itself when the
// table has no entry for it.
func (t *Table) LabelFor(key string) string {
	if label, ok := t.Lookup(key); ok {
		return label
	}
	return key
}

// Lookup reports the configured label for key without applying the identity
// fallback.
func (t *Table) Lookup(key string) (string, bool) {
	if t == nil {
		return "", false
	}
	label, ok := t.labels[key]
	if !ok || label == "" {
		return "", false
	}
	return label, true
}

// Keys returns the configured category keys in lexical order.
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}
	keys := make([]string, 0, len(t.labels))
	for key := range t.labels {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Locale returns the locale identifier the table was loaded for.
func (t *Table) Locale() string {
	if t == nil {
		return ""
	}
	return t.locale
}

// Len returns the number of configured labels.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.labels)
}

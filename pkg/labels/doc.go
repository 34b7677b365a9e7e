// Package labels maps opaque category keys (for example "spells" or
// "monsters") to localized display labels.
//
// Tables are loaded once from YAML/JSON files laid out as
// locales/<locale>/categories.yaml and are immutable afterwards, so a single
// Catalog can be shared by every request. Lookups never fail: a key without a
// configured label resolves to itself, which guarantees the UI always has
// something to display.
package labels

// Package layout decides how already-fetched category records are displayed:
// which fields come first, which display label each field gets, and which
// fields are never shown.
//
// A Store is loaded once (from the embedded YAML tables or a caller supplied
// fs.FS) and is read-only afterwards. Every lookup is total: unknown
// categories report no policy, unknown fields have no alias and are visible
// unless they belong to the common hide set.
//
// Category-blind lookups (Store.AliasFor, Store.ShouldHide) walk categories in
// declaration order, so when two categories alias the same field differently
// the first declared category wins. Store.Conflicts lists those fields.
package layout

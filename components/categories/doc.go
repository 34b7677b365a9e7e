// Package categories provides a small net/http handler that returns the SRD
// categories as JSON options ({"value", "label"}) for navigation menus and
// pickers.
//
// The handler responds to GET and HEAD requests and supports query, limit and
// locale parameters. Labels come from a labels.Catalog, the embedded one by
// default.
package categories

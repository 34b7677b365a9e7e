// Package render turns a category record into a View (category label, title
// and arranged entries with sanitized markup) and renders views through a
// registry of named renderers. The html renderer uses the embedded pongo2
// templates; the json renderer emits the view itself.
package render

// Package markup converts lightweight markdown (headings, emphasis, links,
// lists, code spans) into HTML that is safe to place directly into a page.
//
// Conversion is two staged: goldmark turns markdown into HTML, keeping any
// raw HTML the author wrote, and a bluemonday allow-list policy then strips
// script elements, event handler attributes, unsafe URL schemes and
// disallowed elements. The converter never returns goldmark output that has
// not been through the sanitizer.
//
// Callers pass an Input rather than an arbitrary value; FromValue is the one
// place where untyped data (decoded JSON, template values) is normalised.
package markup

// Package template holds the contract between the HTML record renderer and a
// template engine. Subpackage pongo implements it with pongo2.
package template

package srdview

import (
	"io/fs"

	"github.com/goliatone/go-srdview/pkg/layout"
	"github.com/goliatone/go-srdview/pkg/markup"
)

// Option customises Config construction.
type Option func(*options)

type options struct {
	locale     string
	labelsFS   fs.FS
	layoutsFS  fs.FS
	converter  *markup.Converter
	layoutOpts []layout.Option
}

// WithLocale selects the label table. Unsupported locales fall back to the
// catalog default.
func WithLocale(locale string) Option {
	return func(o *options) {
		o.locale = locale
	}
}

// WithLabelsFS loads label tables from fsys instead of the embedded ones.
func WithLabelsFS(fsys fs.FS) Option {
	return func(o *options) {
		o.labelsFS = fsys
	}
}

// WithLayoutsFS loads layout policies from fsys instead of the embedded ones.
func WithLayoutsFS(fsys fs.FS) Option {
	return func(o *options) {
		o.layoutsFS = fsys
	}
}

// WithMarkupConverter overrides the markdown converter.
func WithMarkupConverter(converter *markup.Converter) Option {
	return func(o *options) {
		o.converter = converter
	}
}

// WithCommonHide replaces the fields hidden for every category, for the
// embedded policies or those given through WithLayoutsFS.
func WithCommonHide(fields ...string) Option {
	return func(o *options) {
		o.layoutOpts = append(o.layoutOpts, layout.WithCommonHide(fields...))
	}
}

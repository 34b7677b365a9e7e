// Package srdview bundles the category label resolver, the field layout
// resolver and the safe-markup converter into one immutable Config.
//
// A Config is built once, usually at start-up, and passed to whatever needs
// to label, order or render SRD records:
//
//	cfg, err := srdview.New(srdview.WithLocale("it-IT"))
//	if err != nil {
//		return err
//	}
//	cfg.LabelFor("spells")              // "Incantesimi"
//	cfg.ShouldHide("url")               // true
//	cfg.ToSafeHTML(markup.Text(desc))   // sanitized HTML
//
// The resolvers are also usable on their own through pkg/labels, pkg/layout
// and pkg/markup.
package srdview

package srdview_test

import (
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	srdview "github.com/goliatone/go-srdview"
	"github.com/goliatone/go-srdview/pkg/markup"
)

func TestDefault_Labels(t *testing.T) {
	cfg := srdview.Default()

	if got := cfg.LabelFor("spells"); got != "Incantesimi" {
		t.Fatalf("LabelFor(spells) = %q", got)
	}
	for _, key := range []string{"unknown-category", "", "Spells"} {
		if got := cfg.LabelFor(key); got != key {
			t.Fatalf("LabelFor(%q) = %q, want identity", key, got)
		}
	}
	if cfg.Locale() != "it-IT" {
		t.Fatalf("locale = %q", cfg.Locale())
	}
}

func TestDefault_Layouts(t *testing.T) {
	cfg := srdview.Default()

	policy, ok := cfg.LayoutFor("spells")
	if !ok {
		t.Fatalf("expected spells policy")
	}
	if len(policy.FieldOrder) == 0 || policy.FieldOrder[0] != "level" {
		t.Fatalf("spells order = %v", policy.FieldOrder)
	}
	if policy.Position("concentration") < 0 {
		t.Fatalf("expected concentration in %v", policy.FieldOrder)
	}
	if _, ok := cfg.LayoutFor("unknown-category"); ok {
		t.Fatalf("unknown category should have no policy")
	}

	for _, field := range []string{"index", "url"} {
		if !cfg.ShouldHide(field) {
			t.Fatalf("ShouldHide(%q) = false", field)
		}
	}
	if cfg.ShouldHide("name") {
		t.Fatalf("name should be visible")
	}

	if alias, ok := cfg.AliasFor("languages"); !ok || alias != "Linguaggi" {
		t.Fatalf("AliasFor(languages) = %q, %v", alias, ok)
	}
	if _, ok := cfg.AliasFor("weight"); ok {
		t.Fatalf("weight should have no alias")
	}
}

func TestDefault_ToSafeHTML(t *testing.T) {
	cfg := srdview.Default()

	got := cfg.ToSafeHTML(markup.Text("<script>alert(1)</script>**bold**"))
	if strings.Contains(got, "<script") || strings.Contains(got, "alert(1)") {
		t.Fatalf("script survived: %q", got)
	}
	if !strings.Contains(got, "<strong>bold</strong>") {
		t.Fatalf("bold lost: %q", got)
	}
	if cfg.ToSafeHTML(markup.FromValue(nil)) != "" {
		t.Fatalf("nil input should convert to empty")
	}
	again := cfg.ToSafeHTML(markup.Text(got))
	if strings.Contains(again, "<script") {
		t.Fatalf("re-conversion produced script: %q", again)
	}
}

func TestDefault_Arrange(t *testing.T) {
	cfg := srdview.Default()
	entries := cfg.Arrange("monsters", map[string]any{
		"url":        "/api/monsters/goblin",
		"name":       "Goblin",
		"hit_points": float64(7),
		"size":       "Small",
	})
	var labels []string
	for _, entry := range entries {
		labels = append(labels, entry.Label)
	}
	if diff := cmp.Diff([]string{"Taglia", "PF", "Name"}, labels); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}

	view := cfg.ViewBuilder().Build("monsters", map[string]any{"name": "Goblin"})
	if view.CategoryLabel != "Mostri" || view.Title != "Goblin" {
		t.Fatalf("unexpected view %+v", view)
	}
}

func TestNew_Overrides(t *testing.T) {
	labelsFS := fstest.MapFS{
		"locales/en-US/categories.yaml": {Data: []byte("locale: en-US\nlabels:\n  spells: Spells\n")},
		"locales/de-DE/categories.yaml": {Data: []byte("locale: de-DE\nlabels:\n  spells: Zauber\n")},
	}
	layoutsFS := fstest.MapFS{
		"items.yaml": {Data: []byte("categories:\n  equipment:\n    fieldOrder: [cost]\n    aliases:\n      cost: Price\n")},
	}

	cfg, err := srdview.New(
		srdview.WithLabelsFS(labelsFS),
		srdview.WithLayoutsFS(layoutsFS),
		srdview.WithLocale("de-AT"),
		srdview.WithCommonHide("_id"),
		srdview.WithMarkupConverter(markup.New(markup.WithHardWraps())),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := cfg.LabelFor("spells"); got != "Zauber" {
		t.Fatalf("LabelFor(spells) = %q, want matched de table", got)
	}
	if cfg.ShouldHide("url") || !cfg.ShouldHide("_id") {
		t.Fatalf("common hide not replaced")
	}
	if alias, ok := cfg.AliasFor("cost"); !ok || alias != "Price" {
		t.Fatalf("AliasFor(cost) = %q, %v", alias, ok)
	}
	if _, ok := cfg.LayoutFor("spells"); ok {
		t.Fatalf("embedded layouts should be replaced")
	}
	if got := cfg.ToSafeHTML(markup.Text("a\nb")); !strings.Contains(got, "<br") {
		t.Fatalf("hard wraps not applied: %q", got)
	}
	if got := len(cfg.Catalog().Locales()); got != 2 {
		t.Fatalf("locales = %v", cfg.Catalog().Locales())
	}
}

func TestNew_CommonHideOnEmbeddedLayouts(t *testing.T) {
	cfg, err := srdview.New(srdview.WithCommonHide("_id"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !cfg.ShouldHide("_id") || cfg.ShouldHide("url") {
		t.Fatalf("common hide not applied to embedded layouts: %v", cfg.Layouts().CommonHide())
	}
	if _, ok := cfg.LayoutFor("spells"); !ok {
		t.Fatalf("embedded spells policy should still be loaded")
	}
}

func TestNew_Errors(t *testing.T) {
	broken := fstest.MapFS{"locales/en-US/categories.yaml": {Data: []byte("locale: it-IT\nlabels: {}\n")}}
	if _, err := srdview.New(srdview.WithLabelsFS(broken)); err == nil {
		t.Fatalf("expected labels error")
	}

	dup := fstest.MapFS{
		"a.yaml": {Data: []byte("categories:\n  spells: {}\n")},
		"b.yaml": {Data: []byte("categories:\n  spells: {}\n")},
	}
	if _, err := srdview.New(srdview.WithLayoutsFS(dup)); err == nil {
		t.Fatalf("expected layouts error")
	}
}

func TestNilConfigFallsBackToDefaults(t *testing.T) {
	var cfg *srdview.Config
	if cfg.LabelFor("monsters") != "Mostri" || !cfg.ShouldHide("index") {
		t.Fatalf("nil config should use embedded tables")
	}
}

func TestAssetsFS(t *testing.T) {
	if _, err := fs.ReadFile(srdview.AssetsFS(), "srdview.css"); err != nil {
		t.Fatalf("stylesheet: %v", err)
	}
	if _, err := fs.ReadFile(srdview.EmbeddedTemplates(), "templates/record.tpl"); err != nil {
		t.Fatalf("template: %v", err)
	}
}

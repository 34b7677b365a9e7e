package render_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-srdview/pkg/render"
)

type stubRenderer struct {
	name string
	err  error
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(_ context.Context, view render.View) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []byte(s.name + ":" + view.Title), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(stubRenderer{name: "Text"})
	registry.MustRegister(stubRenderer{name: "html"})

	if !registry.Has("TEXT") {
		t.Fatalf("expected case-insensitive lookup")
	}
	if diff := cmp.Diff([]string{"text", "html"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}

	if err := registry.Register(stubRenderer{name: " html "}); err == nil {
		t.Fatalf("expected duplicate error")
	}
	if err := registry.Register(stubRenderer{name: " "}); err == nil {
		t.Fatalf("expected blank name error")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected nil renderer error")
	}
	if _, err := registry.Get("pdf"); err == nil || !strings.Contains(err.Error(), `"pdf"`) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestRegistry_Render(t *testing.T) {
	boom := errors.New("boom")
	registry := render.NewRegistry()
	registry.MustRegister(stubRenderer{name: "text"})
	registry.MustRegister(stubRenderer{name: "broken", err: boom})

	out, contentType, err := registry.Render(context.Background(), "text", render.View{Title: "Fireball"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "text:Fireball" || contentType != "text/plain" {
		t.Fatalf("unexpected output %q (%s)", out, contentType)
	}

	if _, _, err := registry.Render(context.Background(), "broken", render.View{}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

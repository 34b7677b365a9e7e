package jsonview_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-srdview/pkg/render"
	"github.com/goliatone/go-srdview/pkg/renderers/jsonview"
)

func TestRenderer_Render(t *testing.T) {
	view := render.View{
		Category:      "spells",
		CategoryLabel: "Incantesimi",
		Title:         "Fireball",
		Entries: []render.ViewEntry{
			{Key: "level", Label: "Livello", Text: "3"},
			{Key: "desc", Label: "Desc", Text: "**hot**", HTML: "<p><strong>hot</strong></p>\n"},
		},
	}

	out, err := jsonview.New().Render(context.Background(), view)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var decoded render.View
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(view, decoded); diff != "" {
		t.Fatalf("view mismatch (-want +got):\n%s", diff)
	}
	if strings.Contains(string(out), `"html":""`) {
		t.Fatalf("empty html should be omitted: %s", out)
	}
}

func TestRenderer_EmptyEntriesAndIndent(t *testing.T) {
	out, err := jsonview.New(jsonview.WithIndent("  ")).Render(context.Background(), render.View{Category: "spells"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), `"entries": []`) {
		t.Fatalf("expected empty entries array:\n%s", out)
	}
	if !strings.Contains(string(out), "\n  \"category\"") {
		t.Fatalf("expected indented output:\n%s", out)
	}
}

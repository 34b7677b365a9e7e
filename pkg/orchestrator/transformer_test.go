package orchestrator_test

import (
	"context"
	"maps"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-srdview/pkg/orchestrator"
)

func TestJSONPresetTransformer(t *testing.T) {
	transformer, err := orchestrator.NewJSONPresetTransformerFromFS(os.DirFS("testdata"), "presets.json")
	if err != nil {
		t.Fatalf("load presets: %v", err)
	}

	record := map[string]any{"_id": "x", "name": "Light", "desc": "glow"}
	if err := transformer.Transform(context.Background(), "spells", record); err != nil {
		t.Fatalf("transform: %v", err)
	}
	want := map[string]any{"name": "Light", "description": "glow", "source": "SRD 5.1"}
	if diff := cmp.Diff(want, record); diff != "" {
		t.Fatalf("record mismatch (-want +got):\n%s", diff)
	}

	monster := map[string]any{"_id": "y", "name": "Goblin", "desc": "small"}
	if err := transformer.Transform(context.Background(), "monsters", monster); err != nil {
		t.Fatalf("transform: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"name": "Goblin", "desc": "small"}, monster); diff != "" {
		t.Fatalf("wildcard patch mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONPresetTransformer_Errors(t *testing.T) {
	for _, raw := range []string{"", "{", `{"spells":{"rename":{"a":" "}}}`} {
		if _, err := orchestrator.NewJSONPresetTransformer([]byte(raw)); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
	if _, err := orchestrator.NewJSONPresetTransformerFromFS(nil, "x.json"); err == nil {
		t.Fatalf("expected nil fs error")
	}

	transformer, err := orchestrator.NewJSONPresetTransformer([]byte(`{}`))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := transformer.Transform(context.Background(), "spells", nil); err == nil {
		t.Fatalf("expected nil record error")
	}
}

func TestJSONPresetTransformer_RenamesApplyTogether(t *testing.T) {
	cases := []struct {
		name   string
		preset string
		record map[string]any
		want   map[string]any
	}{
		{
			name:   "chain",
			preset: `{"spells":{"rename":{"a":"b","b":"c"}}}`,
			record: map[string]any{"a": "A", "b": "B"},
			want:   map[string]any{"b": "A", "c": "B"},
		},
		{
			name:   "swap",
			preset: `{"spells":{"rename":{"a":"b","b":"a"}}}`,
			record: map[string]any{"a": "A", "b": "B"},
			want:   map[string]any{"a": "B", "b": "A"},
		},
		{
			name:   "chain with missing source",
			preset: `{"spells":{"rename":{"a":"b","b":"c"}}}`,
			record: map[string]any{"a": "A"},
			want:   map[string]any{"b": "A"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			transformer, err := orchestrator.NewJSONPresetTransformer([]byte(tc.preset))
			if err != nil {
				t.Fatalf("new: %v", err)
			}
			// map iteration order varies, so repeat to catch order dependence
			for i := 0; i < 50; i++ {
				record := maps.Clone(tc.record)
				if err := transformer.Transform(context.Background(), "spells", record); err != nil {
					t.Fatalf("transform: %v", err)
				}
				if diff := cmp.Diff(tc.want, record); diff != "" {
					t.Fatalf("run %d mismatch (-want +got):\n%s", i, diff)
				}
			}
		})
	}
}

func TestJSONPresetTransformer_RenameCollisions(t *testing.T) {
	if _, err := orchestrator.NewJSONPresetTransformer([]byte(`{"spells":{"rename":{"a":"c","b":"c"}}}`)); err == nil {
		t.Fatalf("expected duplicate target error")
	}

	transformer, err := orchestrator.NewJSONPresetTransformer([]byte(`{"spells":{"rename":{"a":"b"}}}`))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := transformer.Transform(context.Background(), "spells", map[string]any{"a": "A", "b": "B"}); err == nil {
		t.Fatalf("expected overwrite error")
	}
}

package layout_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-srdview/pkg/layout"
)

func TestLoadFS_DeclarationOrderAcrossFiles(t *testing.T) {
	store, err := layout.LoadFS(subDirFS(t, "ordered"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if diff := cmp.Diff([]string{"zeta", "alpha", "beta"}, store.Categories()); diff != "" {
		t.Fatalf("declaration order mismatch (-want +got):\n%s", diff)
	}
	if alias, _ := store.AliasFor("cost"); alias != "Costo" {
		t.Fatalf("zeta is declared first and should win, got %q", alias)
	}
	if alias, _ := store.AliasFor("rarity"); alias != "Rarità" {
		t.Fatalf("yml files should load, got %q", alias)
	}
	if !store.ShouldHide("secret") || !store.ShouldHide("internal_id") {
		t.Fatalf("category hide lists should feed the global check")
	}

	conflicts := store.Conflicts()
	if len(conflicts) != 1 || conflicts[0].Field != "cost" {
		t.Fatalf("expected a single cost conflict, got %#v", conflicts)
	}
}

func TestLoadFS_JSONKeepsKeyOrder(t *testing.T) {
	store, err := layout.LoadFS(subDirFS(t, "json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff([]string{"monsters", "equipment"}, store.Categories()); diff != "" {
		t.Fatalf("json order mismatch (-want +got):\n%s", diff)
	}
	if alias, _ := store.AliasFor("size"); alias != "Size" {
		t.Fatalf("monsters is declared first and should win, got %q", alias)
	}
}

func TestLoadFS_Errors(t *testing.T) {
	cases := map[string]string{
		"duplicate":     "duplicate category",
		"invalid_order": "twice",
		"scalar":        "must be a mapping",
	}
	for dir, fragment := range cases {
		_, err := layout.LoadFS(subDirFS(t, dir))
		if err == nil {
			t.Fatalf("%s: expected error", dir)
		}
		if !strings.Contains(err.Error(), fragment) {
			t.Fatalf("%s: expected error containing %q, got %v", dir, fragment, err)
		}
	}
}

func TestLoadFS_EdgeDocuments(t *testing.T) {
	fsys := fstest.MapFS{
		"empty.yaml":    {Data: []byte("  \n")},
		"README.md":     {Data: []byte("ignored")},
		"nocats.yaml":   {Data: []byte("other: true\n")},
		"nullcats.yaml": {Data: []byte("categories:\n")},
	}
	if _, err := layout.LoadFS(fsys); err == nil || !strings.Contains(err.Error(), "is empty") {
		t.Fatalf("expected empty file error, got %v", err)
	}

	delete(fsys, "empty.yaml")
	fsys["blank.yaml"] = &fstest.MapFile{Data: []byte("categories:\n  \"\":\n    fieldOrder: [a]\n")}
	if _, err := layout.LoadFS(fsys); !errors.Is(err, layout.ErrEmptyCategory) {
		t.Fatalf("expected ErrEmptyCategory, got %v", err)
	}

	delete(fsys, "blank.yaml")
	store, err := layout.LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !store.Empty() {
		t.Fatalf("documents without categories should load as an empty store")
	}
}

func TestLoadFS_NilFS(t *testing.T) {
	store, err := layout.LoadFS(nil)
	if err != nil {
		t.Fatalf("nil fs: %v", err)
	}
	if !store.Empty() || !store.ShouldHide("url") {
		t.Fatalf("nil fs should produce an empty store with the common hide set")
	}
}

func subDirFS(t *testing.T, subdir string) fs.FS {
	t.Helper()
	base := os.DirFS(testdataRoot())
	fsys, err := fs.Sub(base, subdir)
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}
	return fsys
}

func testdataRoot() string {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return "testdata"
	}
	return filepath.Join(filepath.Dir(filename), "testdata")
}

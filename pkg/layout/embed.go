package layout

import (
	"embed"
	"io/fs"
	"sync"
)

//go:embed layouts/*.yaml
var embeddedLayouts embed.FS

var (
	defaultOnce  sync.Once
	defaultStore *Store
)

// EmbeddedFS returns the bundled layout tables.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedLayouts, "layouts")
	if err != nil {
		// The embed directive guarantees the subpath exists, so panic is
		// acceptable here.
		panic(err)
	}
	return sub
}

// Default returns the store built from the embedded layout tables.
func Default() *Store {
	defaultOnce.Do(func() {
		store, err := LoadFS(EmbeddedFS())
		if err != nil {
			panic(err)
		}
		defaultStore = store
	})
	return defaultStore
}

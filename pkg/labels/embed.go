package labels

import (
	"embed"
	"io/fs"
	"sync"
)

//go:embed locales/*/categories.yaml
var embeddedLocales embed.FS

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// EmbeddedFS returns the bundled label tables. Callers may pass it to LoadFS
// together with their own options.
func EmbeddedFS() fs.FS {
	return embeddedLocales
}

// Default returns the catalog built from the embedded tables with
// DefaultLocale as its default.
func Default() *Catalog {
	defaultOnce.Do(func() {
		catalog, err := LoadFS(embeddedLocales)
		if err != nil {
			// The embedded tables ship with the package; failing here means
			// the build itself is broken.
			panic(err)
		}
		defaultCatalog = catalog
	})
	return defaultCatalog
}

// LabelFor resolves key against the default table of the embedded catalog.
func LabelFor(key string) string {
	return Default().Table("").LabelFor(key)
}

package srdview

import (
	internalLoader "github.com/goliatone/go-srdview/internal/records/loader"
	"github.com/goliatone/go-srdview/pkg/records"
)

// NewLoader constructs a record loader using the internal implementation
// while keeping the concrete type hidden from consumers.
func NewLoader(options ...records.LoaderOption) records.Loader {
	return internalLoader.New(records.NewLoaderOptions(options...))
}

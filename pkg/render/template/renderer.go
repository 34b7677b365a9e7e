package template

import "io"

// Executor writes the named template to w.
type Executor interface {
	Execute(w io.Writer, name string, data map[string]any) error
}

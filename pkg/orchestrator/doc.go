// Package orchestrator wires the record loader, optional record transformers,
// the view builder and the renderer registry into a single Generate call.
package orchestrator

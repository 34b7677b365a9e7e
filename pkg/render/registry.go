package render

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Registry holds renderers under their lower-cased Name so CLI flags and
// query parameters can be matched directly. List keeps registration order,
// which makes the first registered renderer the natural fallback.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Renderer
	order  []string
}

func NewRegistry() *Registry {
	return &Registry{byName: map[string]Renderer{}}
}

// Register adds renderer. Nil renderers, blank names and names already taken
// are errors.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return errors.New("render: nil renderer")
	}
	key := registryKey(renderer.Name())
	if key == "" {
		return errors.New("render: renderer has no name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.byName[key]; taken {
		return fmt.Errorf("render: %q registered twice", key)
	}
	r.byName[key] = renderer
	r.order = append(r.order, key)
	return nil
}

func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	renderer, ok := r.byName[registryKey(name)]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("render: unknown renderer %q", name)
	}
	return renderer, nil
}

// List returns the registered names in registration order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

func (r *Registry) Has(name string) bool {
	_, err := r.Get(name)
	return err == nil
}

// Render renders view with the named renderer and reports its content type.
func (r *Registry) Render(ctx context.Context, name string, view View) ([]byte, string, error) {
	renderer, err := r.Get(name)
	if err != nil {
		return nil, "", err
	}
	out, err := renderer.Render(ctx, view)
	if err != nil {
		return nil, "", fmt.Errorf("render: %s: %w", renderer.Name(), err)
	}
	return out, renderer.ContentType(), nil
}

func registryKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

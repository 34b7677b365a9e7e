package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"maps"

	internalLoader "github.com/goliatone/go-srdview/internal/records/loader"
	"github.com/goliatone/go-srdview/pkg/records"
	"github.com/goliatone/go-srdview/pkg/render"
	"github.com/goliatone/go-srdview/pkg/renderers/html"
	"github.com/goliatone/go-srdview/pkg/renderers/jsonview"
)

const defaultRendererName = "html"

// Option configures New.
type Option func(*Orchestrator)

// WithLoader sets the loader used for Request.Source.
func WithLoader(loader records.Loader) Option {
	return func(o *Orchestrator) { o.loader = loader }
}

// WithViewBuilder sets the labels, layouts and converter used to build views.
func WithViewBuilder(builder *render.Builder) Option {
	return func(o *Orchestrator) { o.builder = builder }
}

// WithRegistry replaces the built-in html and json renderers.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) { o.registry = registry }
}

// WithDefaultRenderer names the renderer for requests that leave Renderer
// empty.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) { o.defaultRenderer = name }
}

// WithTransformers appends record transformers. They run in order, after the
// record is copied and before the view is built.
func WithTransformers(transformers ...Transformer) Option {
	return func(o *Orchestrator) { o.transformers = append(o.transformers, transformers...) }
}

// Orchestrator runs load, transform, build and render for one record at a
// time. It holds no per-request state and may be shared.
type Orchestrator struct {
	loader          records.Loader
	builder         *render.Builder
	registry        *render.Registry
	defaultRenderer string
	transformers    []Transformer

	// set when a built-in renderer could not be constructed
	setupErr error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one record to render.
type Request struct {
	// Category selects the label and layout policy.
	Category string

	// Source identifies where the record lives. Optional when Record is set.
	Source records.Source

	// Record bypasses the loader when the caller already decoded the payload.
	// It is copied before transformers run.
	Record map[string]any

	// Renderer names the renderer to use. Empty means the default renderer.
	Renderer string
}

// Result is the rendered output plus the view it was rendered from.
type Result struct {
	View        render.View
	Output      []byte
	ContentType string
}

// Generate executes the loader, transformer, builder and renderer sequence.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := o.setupErr; err != nil {
		return Result{}, err
	}
	if req.Category == "" {
		return Result{}, errors.New("orchestrator: category is required")
	}

	record, err := o.resolveRecord(ctx, req)
	if err != nil {
		return Result{}, err
	}

	for _, transformer := range o.transformers {
		if transformer == nil {
			continue
		}
		if err := transformer.Transform(ctx, req.Category, record); err != nil {
			return Result{}, fmt.Errorf("orchestrator: transform record: %w", err)
		}
	}

	view := o.builder.Build(req.Category, record)

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return Result{}, err
	}

	output, err := renderer.Render(ctx, view)
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return Result{View: view, Output: output, ContentType: renderer.ContentType()}, nil
}

// Renderers lists the registered renderer names.
func (o *Orchestrator) Renderers() []string {
	if o.registry == nil {
		return nil
	}
	return o.registry.List()
}

func (o *Orchestrator) resolveRecord(ctx context.Context, req Request) (map[string]any, error) {
	if req.Record != nil {
		return maps.Clone(req.Record), nil
	}
	if req.Source == nil {
		return nil, errors.New("orchestrator: source or record is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: load record: %w", err)
	}
	record, err := doc.Record()
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	return record, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}
	return o.registry.Get(names[0])
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
	if o.builder == nil {
		o.builder = render.NewBuilder()
	}
	if o.loader == nil {
		o.loader = internalLoader.New(records.NewLoaderOptions())
	}
	if o.registry != nil {
		return
	}

	page, err := html.New()
	if err != nil {
		o.setupErr = fmt.Errorf("orchestrator: built-in html renderer: %w", err)
		return
	}
	o.registry = render.NewRegistry()
	o.registry.MustRegister(page)
	o.registry.MustRegister(jsonview.New())
}

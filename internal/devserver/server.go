package devserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	srdview "github.com/goliatone/go-srdview"
	"github.com/goliatone/go-srdview/components/categories"
	"github.com/goliatone/go-srdview/internal/config"
	internalLoader "github.com/goliatone/go-srdview/internal/records/loader"
	"github.com/goliatone/go-srdview/pkg/orchestrator"
	"github.com/goliatone/go-srdview/pkg/records"
	"github.com/goliatone/go-srdview/pkg/render"
	"github.com/goliatone/go-srdview/pkg/renderers/html"
	"github.com/goliatone/go-srdview/pkg/renderers/jsonview"
)

const uiBase = "/ui"

// Server is the development HTTP server.
type Server struct {
	cfg       config.Config
	logger    *zap.Logger
	view      *srdview.Config
	client    *http.Client
	transport http.RoundTripper
	handler   http.Handler
}

// New validates cfg and assembles the handler tree.
func New(cfg config.Config, opts ...Option) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Server{
		cfg:    cfg,
		logger: zap.NewNop(),
		client: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.view == nil {
		view, err := srdview.New(srdview.WithLocale(cfg.Locale))
		if err != nil {
			return nil, fmt.Errorf("devserver: build view config: %w", err)
		}
		s.view = view
	}

	mux := http.NewServeMux()
	mux.Handle(cfg.APIPrefix+"/", newProxy(cfg.Origin(), s.transport, s.logger))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServerFS(srdview.AssetsFS())))

	component := categories.New(
		categories.WithRoutePath("/categories"),
		categories.WithCatalog(s.view.Catalog()),
		categories.WithLocale(cfg.Locale),
	)
	if _, err := component.RegisterRoutes(mux, uiBase); err != nil {
		return nil, fmt.Errorf("devserver: mount categories: %w", err)
	}

	registry, err := s.renderers()
	if err != nil {
		return nil, err
	}
	gen := orchestrator.New(
		orchestrator.WithRegistry(registry),
		orchestrator.WithViewBuilder(s.view.ViewBuilder()),
		orchestrator.WithLoader(internalLoader.New(records.NewLoaderOptions(records.WithHTTPClient(s.client)))),
	)
	mux.Handle("GET "+uiBase+"/records/{category}/{index}", s.recordHandler(gen))

	s.handler = logRequests(s.logger, requireHost(newHostSet(cfg.AllowedHosts), s.logger, mux))
	return s, nil
}

// renderers builds the page renderer for the view locale, linking the
// stylesheet served under /assets/.
func (s *Server) renderers() (*render.Registry, error) {
	page, err := html.New(
		html.WithLanguage(s.view.Locale()),
		html.WithStylesheet("/assets/"+html.StylesheetName),
	)
	if err != nil {
		return nil, fmt.Errorf("devserver: html renderer: %w", err)
	}
	registry := render.NewRegistry()
	for _, renderer := range []render.Renderer{page, jsonview.New()} {
		if err := registry.Register(renderer); err != nil {
			return nil, fmt.Errorf("devserver: register %s: %w", renderer.Name(), err)
		}
	}
	return registry, nil
}

// Handler exposes the full handler tree, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("devserver: listen %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("dev server listening",
			zap.String("addr", ln.Addr().String()),
			zap.String("api_prefix", s.cfg.APIPrefix),
			zap.String("api_origin", s.cfg.APIOrigin))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("devserver: serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownGrace)
	defer cancel()
	s.logger.Info("dev server shutting down", zap.Duration("grace", s.cfg.ShutdownGrace))
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("devserver: shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("devserver: serve: %w", err)
	}
	return nil
}

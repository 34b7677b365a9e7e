package devserver

import (
	"net/http"

	"go.uber.org/zap"

	srdview "github.com/goliatone/go-srdview"
)

// Option customises the Server.
type Option func(*Server)

// WithLogger sets the zap logger. Nil keeps the no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithViewConfig sets the resolvers used for rendered records and the
// categories listing.
func WithViewConfig(cfg *srdview.Config) Option {
	return func(s *Server) {
		if cfg != nil {
			s.view = cfg
		}
	}
}

// WithHTTPClient sets the client used to fetch records for rendering.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Server) {
		if client != nil {
			s.client = client
		}
	}
}

// WithProxyTransport replaces the reverse proxy transport.
func WithProxyTransport(transport http.RoundTripper) Option {
	return func(s *Server) {
		if transport != nil {
			s.transport = transport
		}
	}
}

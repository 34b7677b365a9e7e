package devserver

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"go.uber.org/zap"

	internalLoader "github.com/goliatone/go-srdview/internal/records/loader"
	"github.com/goliatone/go-srdview/pkg/orchestrator"
	"github.com/goliatone/go-srdview/pkg/records"
)

// recordHandler fetches /api/<category>/<index> from the origin and renders
// it. ?format=json switches to the JSON view.
func (s *Server) recordHandler(gen *orchestrator.Orchestrator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		category := r.PathValue("category")
		index := r.PathValue("index")

		format := r.URL.Query().Get("format")
		if format != "" && !slices.Contains(gen.Renderers(), strings.ToLower(format)) {
			http.Error(w, "unknown format", http.StatusBadRequest)
			return
		}

		src, err := records.SourceFromAPI(s.cfg.APIOrigin, category, index)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		result, err := gen.Generate(r.Context(), orchestrator.Request{
			Category: category,
			Source:   src,
			Renderer: format,
		})
		if err != nil {
			code := http.StatusBadGateway
			var statusErr *internalLoader.StatusError
			if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
				code = http.StatusNotFound
			}
			s.logger.Warn("render record failed",
				zap.String("api_path", records.APIPath(category, index)),
				zap.Error(err))
			http.Error(w, http.StatusText(code), code)
			return
		}

		w.Header().Set("Content-Type", result.ContentType)
		_, _ = w.Write(result.Output)
	})
}

package categories

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"golang.org/x/text/language"

	"github.com/goliatone/go-srdview/pkg/labels"
)

// HTTPError lets a GuardFunc choose the response status.
type HTTPError interface {
	error
	StatusCode() int
}

// StatusError is a ready-made HTTPError.
type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err == nil {
		return http.StatusText(e.StatusCode())
	}
	return e.Err.Error()
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code < 100 {
		return http.StatusInternalServerError
	}
	return e.Code
}

type searchResponse struct {
	Data []Option `json:"data"`
}

type labelResponse struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Locale string `json:"locale,omitempty"`
	Known  bool   `json:"known"`
}

// Handler is NewHandler.
func Handler(fns ...OptionFn) http.Handler {
	return NewHandler(fns...)
}

// NewHandler serves the category search with options built from fns.
func NewHandler(fns ...OptionFn) http.Handler {
	return HandlerWithOptions(NewOptions(fns...))
}

// HandlerWithOptions serves the category search:
//
//	GET ?q=<text>&limit=<n>&locale=<tag>  ->  {"data":[{"value":..,"label":..}]}
//
// Missing option fields take their defaults.
func HandlerWithOptions(opts Options) http.Handler {
	opts.fillDefaults()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		if !allowed(w, r, opts.Guard) {
			return
		}

		query := r.URL.Query()
		limit, _ := strconv.Atoi(query.Get(opts.Params.Limit))
		table := tableFor(r, opts)

		found := Search(OptionsFromTable(table), query.Get(opts.Params.Search), limit, opts)
		if found == nil {
			found = []Option{}
		}
		writeJSON(w, r, table, searchResponse{Data: found})
	})
}

// LabelHandlerWithOptions serves the label of the category named by the
// "key" path value. Unknown keys answer with the key itself and known=false.
func LabelHandlerWithOptions(opts Options) http.Handler {
	opts.fillDefaults()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !allowed(w, r, opts.Guard) {
			return
		}

		key := r.PathValue("key")
		if key == "" {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		table := tableFor(r, opts)
		label, known := table.Lookup(key)
		if !known {
			label = key
		}
		writeJSON(w, r, table, labelResponse{Key: key, Label: label, Locale: table.Locale(), Known: known})
	})
}

// allowed runs guard and writes the rejection when it fails.
func allowed(w http.ResponseWriter, r *http.Request, guard GuardFunc) bool {
	if guard == nil {
		return true
	}
	err := guard(r)
	if err == nil {
		return true
	}

	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.StatusCode()
	}
	http.Error(w, http.StatusText(code), code)
	return false
}

// tableFor picks the label table from the locale query parameter, then
// every language of Accept-Language, then the configured locale.
func tableFor(r *http.Request, opts Options) *labels.Table {
	catalog := opts.Catalog
	if catalog == nil {
		catalog = labels.Default()
	}

	if locale := r.URL.Query().Get(opts.Params.Locale); locale != "" {
		return catalog.Table(locale)
	}
	if header := r.Header.Get("Accept-Language"); header != "" {
		tags, _, err := language.ParseAcceptLanguage(header)
		if err == nil {
			if table, ok := catalog.TableFor(tags...); ok {
				return table
			}
		}
	}
	return catalog.Table(opts.Locale)
}

func writeJSON(w http.ResponseWriter, r *http.Request, table *labels.Table, payload any) {
	h := w.Header()
	h.Set("Content-Type", "application/json; charset=utf-8")
	if lang := table.Locale(); lang != "" {
		h.Set("Content-Language", lang)
	}
	h.Add("Vary", "Accept-Language")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

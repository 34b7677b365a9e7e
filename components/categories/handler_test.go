package categories

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-srdview/pkg/labels"
)

type handlerResponse struct {
	Data []Option `json:"data"`
}

func testCatalog(t *testing.T) *labels.Catalog {
	t.Helper()
	catalog, err := labels.NewCatalog([]*labels.Table{
		labels.NewTable("it-IT", map[string]string{
			"spells":      "Incantesimi",
			"monsters":    "Mostri",
			"magic-items": "Oggetti magici",
			"skills":      "Abilità",
		}),
		labels.NewTable("en-US", map[string]string{
			"spells":   "Spells",
			"monsters": "Monsters",
		}),
	})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return catalog
}

func serve(t *testing.T, h http.Handler, method, target string, header http.Header) (*http.Response, handlerResponse) {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	for key, values := range header {
		req.Header[key] = values
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	res := rec.Result()
	var payload handlerResponse
	if method == http.MethodGet && res.StatusCode == http.StatusOK {
		if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
	}
	return res, payload
}

func TestHandler_EmptyQueryReturnsAllByLabel(t *testing.T) {
	h := NewHandler(WithCatalog(testCatalog(t)))
	res, payload := serve(t, h, http.MethodGet, "/api/categories", nil)

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.StatusCode)
	}
	if ct := res.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected JSON content-type, got %q", ct)
	}
	if lang := res.Header.Get("Content-Language"); lang != "it-IT" {
		t.Fatalf("content-language = %q", lang)
	}

	want := []Option{
		{Value: "skills", Label: "Abilità"},
		{Value: "spells", Label: "Incantesimi"},
		{Value: "monsters", Label: "Mostri"},
		{Value: "magic-items", Label: "Oggetti magici"},
	}
	if diff := cmp.Diff(want, payload.Data); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
}

func TestHandler_EmptySearchNone(t *testing.T) {
	h := NewHandler(WithCatalog(testCatalog(t)), WithEmptySearchMode(EmptySearchNone))
	_, payload := serve(t, h, http.MethodGet, "/api/categories", nil)
	if payload.Data == nil || len(payload.Data) != 0 {
		t.Fatalf("expected empty data array, got %#v", payload.Data)
	}
}

func TestHandler_SearchMatchesKeyAndLabel(t *testing.T) {
	h := NewHandler(WithCatalog(testCatalog(t)))

	_, payload := serve(t, h, http.MethodGet, "/api/categories?q=magic", nil)
	if diff := cmp.Diff([]Option{{Value: "magic-items", Label: "Oggetti magici"}}, payload.Data); diff != "" {
		t.Fatalf("key search mismatch (-want +got):\n%s", diff)
	}

	_, payload = serve(t, h, http.MethodGet, "/api/categories?q=MOST", nil)
	if diff := cmp.Diff([]Option{{Value: "monsters", Label: "Mostri"}}, payload.Data); diff != "" {
		t.Fatalf("label search mismatch (-want +got):\n%s", diff)
	}

	// "s" prefixes the keys spells and skills but no label; label substring
	// matches rank after them.
	_, payload = serve(t, h, http.MethodGet, "/api/categories?q=s&limit=2", nil)
	if diff := cmp.Diff([]Option{{Value: "skills", Label: "Abilità"}, {Value: "spells", Label: "Incantesimi"}}, payload.Data); diff != "" {
		t.Fatalf("ranked search mismatch (-want +got):\n%s", diff)
	}
}

func TestHandler_LocaleSelection(t *testing.T) {
	h := NewHandler(WithCatalog(testCatalog(t)))

	res, payload := serve(t, h, http.MethodGet, "/api/categories?q=spe&locale=en", nil)
	if res.Header.Get("Content-Language") != "en-US" {
		t.Fatalf("content-language = %q", res.Header.Get("Content-Language"))
	}
	if diff := cmp.Diff([]Option{{Value: "spells", Label: "Spells"}}, payload.Data); diff != "" {
		t.Fatalf("locale param mismatch (-want +got):\n%s", diff)
	}

	_, payload = serve(t, h, http.MethodGet, "/api/categories?q=mon", http.Header{"Accept-Language": {"en-US,en;q=0.8"}})
	if diff := cmp.Diff([]Option{{Value: "monsters", Label: "Monsters"}}, payload.Data); diff != "" {
		t.Fatalf("accept-language mismatch (-want +got):\n%s", diff)
	}

	res, payload = serve(t, h, http.MethodGet, "/api/categories?q=mon", http.Header{"Accept-Language": {"fr-FR, en;q=0.8"}})
	if res.Header.Get("Content-Language") != "en-US" {
		t.Fatalf("lower-weighted supported language ignored: content-language = %q", res.Header.Get("Content-Language"))
	}
	if diff := cmp.Diff([]Option{{Value: "monsters", Label: "Monsters"}}, payload.Data); diff != "" {
		t.Fatalf("multi-tag accept-language mismatch (-want +got):\n%s", diff)
	}

	fallback := NewHandler(WithCatalog(testCatalog(t)), WithLocale("en-US"))
	res, _ = serve(t, fallback, http.MethodGet, "/api/categories", http.Header{"Accept-Language": {"fr-FR, de;q=0.5"}})
	if res.Header.Get("Content-Language") != "en-US" {
		t.Fatalf("unsupported accept-language should use the configured locale, got %q", res.Header.Get("Content-Language"))
	}
	_, payload = serve(t, fallback, http.MethodGet, "/api/categories?q=spe", nil)
	if diff := cmp.Diff([]Option{{Value: "spells", Label: "Spells"}}, payload.Data); diff != "" {
		t.Fatalf("default locale mismatch (-want +got):\n%s", diff)
	}
}

func TestHandler_LimitClamped(t *testing.T) {
	h := NewHandler(WithCatalog(testCatalog(t)), WithMaxLimit(2))
	_, payload := serve(t, h, http.MethodGet, "/api/categories?limit=10", nil)
	if len(payload.Data) != 2 {
		t.Fatalf("expected 2 results, got %#v", payload.Data)
	}

	_, payload = serve(t, h, http.MethodGet, "/api/categories?limit=-1", nil)
	if len(payload.Data) != 0 {
		t.Fatalf("expected no results for negative limit, got %#v", payload.Data)
	}
}

func TestHandler_MethodsAndHead(t *testing.T) {
	h := NewHandler(WithCatalog(testCatalog(t)))

	res, _ := serve(t, h, http.MethodPost, "/api/categories", nil)
	if res.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", res.StatusCode)
	}
	if allow := res.Header.Get("Allow"); allow != "GET, HEAD" {
		t.Fatalf("unexpected Allow header %q", allow)
	}

	req := httptest.NewRequest(http.MethodHead, "/api/categories", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Body.Len() != 0 {
		t.Fatalf("expected empty 200 for HEAD, got %d with %q", rec.Code, rec.Body.String())
	}
}

func TestHandler_Guard(t *testing.T) {
	denied := NewHandler(WithGuard(func(*http.Request) error {
		return StatusError{Code: http.StatusUnauthorized, Err: errors.New("login required")}
	}))
	res, _ := serve(t, denied, http.MethodGet, "/api/categories", nil)
	if res.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.StatusCode)
	}

	plain := NewHandler(WithGuard(func(*http.Request) error { return errors.New("nope") }))
	res, _ = serve(t, plain, http.MethodGet, "/api/categories", nil)
	if res.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", res.StatusCode)
	}
}

func TestHandler_DefaultCatalog(t *testing.T) {
	_, payload := serve(t, Handler(), http.MethodGet, "/api/categories?q=spells", nil)
	if diff := cmp.Diff([]Option{{Value: "spells", Label: "Incantesimi"}}, payload.Data); diff != "" {
		t.Fatalf("default catalog mismatch (-want +got):\n%s", diff)
	}
}

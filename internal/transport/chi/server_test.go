package chi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/velour-cloud/scentsearch/internal/currency"
	"github.com/velour-cloud/scentsearch/internal/domain"
	searchuc "github.com/velour-cloud/scentsearch/internal/usecase/search"
)

type fixedCatalog struct {
	products []domain.Product
	err      error
}

func (f fixedCatalog) Products(context.Context) ([]domain.Product, error) {
	return f.products, f.err
}

type fixedContent struct {
	entries []domain.JournalEntry
	err     error
}

func (f fixedContent) Entries(context.Context) ([]domain.JournalEntry, error) {
	return f.entries, f.err
}

func newTestHandler(t *testing.T, catalog fixedCatalog, content fixedContent) http.Handler {
	t.Helper()
	svc := searchuc.New(catalog, content, currency.FormatPaise)
	srv := NewServer(svc, zap.NewNop())

	r := chi.NewRouter()
	srv.Routes(r)
	return r
}

func storefrontCatalog() fixedCatalog {
	price := int64(1099900)
	return fixedCatalog{products: []domain.Product{
		{
			ID:     "p1",
			Title:  "Dior Sauvage Eau de Toilette",
			Brand:  domain.Brand{Name: "Dior"},
			Gender: domain.GenderMen,
			Notes: domain.Notes{
				Top:   []string{"Bergamot", "Pepper"},
				Heart: []string{"Lavender"},
				Base:  []string{"Ambroxan"},
			},
			Aggregates: domain.Aggregates{LowPricePaise: &price, RatingAvg: 4.8, RatingCount: 2402},
			Slug:       "dior-sauvage-eau-de-toilette",
			Media:      []string{"/media/dior-sauvage.jpg"},
		},
	}}
}

func TestHandleSearch(t *testing.T) {
	handler := newTestHandler(t, storefrontCatalog(), fixedContent{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/search?q=Dior", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("unexpected content type %q", ct)
	}

	var resp searchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Query != "dior" {
		t.Errorf("expected normalized query, got %q", resp.Query)
	}
	if len(resp.Results.Products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(resp.Results.Products))
	}

	p := resp.Results.Products[0]
	if p.Href != "/products/dior-sauvage-eau-de-toilette" {
		t.Errorf("unexpected href %q", p.Href)
	}
	if p.Meta == "" || p.Description == "" {
		t.Errorf("expected composed meta and description, got %+v", p)
	}
}

func TestHandleSearch_EmptyQueryBrowses(t *testing.T) {
	handler := newTestHandler(t, storefrontCatalog(), fixedContent{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/search", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp searchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Results.Products) != 1 {
		t.Errorf("browse should return the full catalog, got %+v", resp.Results)
	}
}

func TestHandleSearch_CatalogDown(t *testing.T) {
	handler := newTestHandler(t, fixedCatalog{err: domain.ErrCatalogUnavailable}, fixedContent{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/search?q=dior", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Code != CodeCatalogUnavailable {
		t.Errorf("unexpected error code %q", resp.Code)
	}
}

func TestHandleSuggestions(t *testing.T) {
	handler := newTestHandler(t, storefrontCatalog(), fixedContent{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/suggestions?limit=3", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp suggestionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Suggestions) != 3 {
		t.Fatalf("expected 3 suggestions, got %v", resp.Suggestions)
	}
	if resp.Suggestions[0] != "Dior Sauvage Eau de Toilette" {
		t.Errorf("titles should lead the suggestion list, got %v", resp.Suggestions)
	}
}

func TestHandleSuggestions_BadLimit(t *testing.T) {
	handler := newTestHandler(t, storefrontCatalog(), fixedContent{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/suggestions?limit=abc", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Code != CodeBadRequest {
		t.Errorf("unexpected error code %q", resp.Code)
	}
}

func TestHandleHealth(t *testing.T) {
	handler := newTestHandler(t, storefrontCatalog(), fixedContent{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("unexpected health payload %v", resp)
	}
}

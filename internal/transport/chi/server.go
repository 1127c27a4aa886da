// Package chi exposes the search service over HTTP: the query and
// suggestion endpoints plus health and Prometheus metrics.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/velour-cloud/scentsearch/internal/domain"
	core "github.com/velour-cloud/scentsearch/internal/search"
	searchuc "github.com/velour-cloud/scentsearch/internal/usecase/search"
)

// ErrorCode labels the JSON error envelope.
type ErrorCode string

// Error codes returned by the API.
const (
	CodeBadRequest         ErrorCode = "bad_request"
	CodeUnauthorized       ErrorCode = "unauthorized"
	CodeCatalogUnavailable ErrorCode = "catalog_unavailable"
	CodeInternalError      ErrorCode = "internal_error"
)

type errorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

type searchResponse struct {
	Query   string          `json:"query"`
	Tokens  []string        `json:"tokens"`
	Results core.ResultsSet `json:"results"`
}

type suggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// Server routes storefront search requests to the usecase layer.
type Server struct {
	search *searchuc.Service
	logger *zap.Logger
}

// NewServer creates the HTTP API server.
func NewServer(search *searchuc.Service, logger *zap.Logger) *Server {
	return &Server{search: search, logger: logger}
}

// Routes mounts all handlers on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Get("/v1/search", s.handleSearch)
	r.Get("/v1/suggestions", s.handleSuggestions)
}

// handleSearch handles GET /v1/search?q=. An absent or trivial query is
// valid and returns the whole catalog unranked.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	queryCtx, results, err := s.search.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Query:   queryCtx.Query,
		Tokens:  queryCtx.Tokens,
		Results: results,
	})
}

// handleSuggestions handles GET /v1/suggestions?limit=.
func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, CodeBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}

	suggestions, err := s.search.Suggest(r.Context(), limit)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, suggestionsResponse{Suggestions: suggestions})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleDomainError maps provider failures to the JSON envelope. With
// the seed fallback wired these paths are rarely reachable, but a
// service wired straight to the remote backend still needs them.
func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrCatalogUnavailable), errors.Is(err, domain.ErrContentUnavailable):
		writeError(w, http.StatusServiceUnavailable, CodeCatalogUnavailable, "catalog temporarily unavailable")
	default:
		s.logger.Error("unhandled search error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, msg string) {
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

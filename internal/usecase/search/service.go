package search

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/velour-cloud/scentsearch/internal/logger"
	"github.com/velour-cloud/scentsearch/internal/metrics"
	core "github.com/velour-cloud/scentsearch/internal/search"
)

const defaultMinQueryLen = 2

// Service glues the candidate providers to the pure search core. The
// core itself is stateless; determinism follows from fixed provider
// snapshots — identical inputs give identical ranked output.
type Service struct {
	catalog        Catalog
	content        Content
	formatPrice    core.PriceFormatter
	minQueryLen    int
	maxSuggestions int
}

// New creates a search service.
func New(catalog Catalog, content Content, formatPrice core.PriceFormatter) *Service {
	return &Service{
		catalog:        catalog,
		content:        content,
		formatPrice:    formatPrice,
		minQueryLen:    defaultMinQueryLen,
		maxSuggestions: core.DefaultSuggestionLimit,
	}
}

// WithQueryGating sets the minimum rune count before a query is
// treated as non-trivial. Shorter queries degrade to the browse-all
// state rather than erroring.
func (s *Service) WithQueryGating(minLen int) *Service {
	if minLen > 0 {
		s.minQueryLen = minLen
	}
	return s
}

// WithSuggestionLimit caps how many suggestions a caller may request.
func (s *Service) WithSuggestionLimit(max int) *Service {
	if max > 0 {
		s.maxSuggestions = max
	}
	return s
}

// Search loads both candidate sets and runs the full pipeline:
// tokenize, compose, score, rank. Sub-minimum queries are treated as
// empty, which ranks the whole catalog at score zero.
func (s *Service) Search(ctx context.Context, rawQuery string) (core.Context, core.ResultsSet, error) {
	if utf8.RuneCountInString(strings.TrimSpace(rawQuery)) < s.minQueryLen {
		rawQuery = ""
	}

	products, err := s.catalog.Products(ctx)
	if err != nil {
		metrics.SearchesTotal.WithLabelValues("error").Inc()
		return core.Context{}, core.ResultsSet{}, fmt.Errorf("load catalog: %w", err)
	}
	entries, err := s.content.Entries(ctx)
	if err != nil {
		metrics.SearchesTotal.WithLabelValues("error").Inc()
		return core.Context{}, core.ResultsSet{}, fmt.Errorf("load journal: %w", err)
	}

	queryCtx, results := core.Coalesce(products, entries, rawQuery, s.formatPrice)

	logger.FromContext(ctx).Debug("search executed",
		zap.String("query", queryCtx.Query),
		zap.Int("tokens", len(queryCtx.Tokens)),
		zap.Int("product_hits", len(results.Products)),
		zap.Int("journal_hits", len(results.Journal)),
	)

	metrics.SearchesTotal.WithLabelValues(searchOutcome(queryCtx, results)).Inc()
	metrics.SearchResults.WithLabelValues("products").Observe(float64(len(results.Products)))
	metrics.SearchResults.WithLabelValues("journal").Observe(float64(len(results.Journal)))

	return queryCtx, results, nil
}

// Suggest derives autocomplete strings from the catalog. The limit is
// clamped to the configured maximum; non-positive values take the
// default.
func (s *Service) Suggest(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 || limit > s.maxSuggestions {
		limit = s.maxSuggestions
	}

	products, err := s.catalog.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	metrics.SuggestionsTotal.Inc()
	return core.Suggest(products, limit), nil
}

func searchOutcome(ctx core.Context, results core.ResultsSet) string {
	switch {
	case len(ctx.Tokens) == 0:
		return "browse"
	case len(results.Products)+len(results.Journal) == 0:
		return "no_match"
	default:
		return "ok"
	}
}

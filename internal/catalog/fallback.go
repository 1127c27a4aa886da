package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/velour-cloud/scentsearch/internal/domain"
	"github.com/velour-cloud/scentsearch/internal/metrics"
)

// Fallback serves from the primary sources and degrades to the seed
// dataset when they fail. The recovery stays invisible to the search
// core: callers always receive a usable candidate list.
type Fallback struct {
	products ProductSource
	entries  EntrySource
	standby  *Static
	logger   *zap.Logger
}

// NewFallback chains the primary sources with the seed standby.
func NewFallback(products ProductSource, entries EntrySource, standby *Static, logger *zap.Logger) *Fallback {
	return &Fallback{
		products: products,
		entries:  entries,
		standby:  standby,
		logger:   logger,
	}
}

// Products returns the primary catalog, or seed data when it fails.
func (f *Fallback) Products(ctx context.Context) ([]domain.Product, error) {
	items, err := f.products.Products(ctx)
	if err != nil {
		f.logger.Warn("catalog source failed, serving seed data", zap.Error(err))
		metrics.CatalogLoads.WithLabelValues("products", "seed").Inc()
		return f.standby.Products(ctx)
	}
	metrics.CatalogLoads.WithLabelValues("products", "primary").Inc()
	return items, nil
}

// Entries returns the primary journal, or seed data when it fails.
func (f *Fallback) Entries(ctx context.Context) ([]domain.JournalEntry, error) {
	items, err := f.entries.Entries(ctx)
	if err != nil {
		f.logger.Warn("content source failed, serving seed data", zap.Error(err))
		metrics.CatalogLoads.WithLabelValues("journal", "seed").Inc()
		return f.standby.Entries(ctx)
	}
	metrics.CatalogLoads.WithLabelValues("journal", "primary").Inc()
	return items, nil
}

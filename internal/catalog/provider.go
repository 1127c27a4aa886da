// Package catalog supplies the product catalog and journal content the
// search layer ranks over. Sources compose into a chain: remote backend
// behind a read-through Redis cache, with an in-process seed dataset as
// the last resort. The search core only ever sees plain slices.
package catalog

import (
	"context"

	"github.com/velour-cloud/scentsearch/internal/domain"
)

// ProductSource supplies the product catalog.
type ProductSource interface {
	Products(ctx context.Context) ([]domain.Product, error)
}

// EntrySource supplies journal entries.
type EntrySource interface {
	Entries(ctx context.Context) ([]domain.JournalEntry, error)
}

package search

import (
	"context"

	"github.com/velour-cloud/scentsearch/internal/domain"
)

// Catalog supplies the products the engine ranks over.
type Catalog interface {
	Products(ctx context.Context) ([]domain.Product, error)
}

// Content supplies the journal entries the engine ranks over.
type Content interface {
	Entries(ctx context.Context) ([]domain.JournalEntry, error)
}

package domain

import "errors"

var (
	// ErrCatalogUnavailable signals that every catalog source failed.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	// ErrContentUnavailable signals that every journal content source failed.
	ErrContentUnavailable = errors.New("content unavailable")
)

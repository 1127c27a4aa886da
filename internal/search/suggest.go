package search

import (
	"strings"

	"github.com/velour-cloud/scentsearch/internal/domain"
)

// DefaultSuggestionLimit caps the autocomplete list when the caller
// does not ask for a specific size.
const DefaultSuggestionLimit = 16

// curatedSuggestions is the fixed editorial tail appended after all
// catalog-derived suggestions.
var curatedSuggestions = []string{
	"Layering ritual",
	"Evening composition",
	"Giftable trio",
	"Amber vanilla",
}

// Suggest derives a deduplicated autocomplete list from catalog facets
// in strict priority order: titles, then brands, then gender labels,
// then fragrance notes (top, heart, base per product), then the curated
// tail. Dedup is case-insensitive with first-seen casing kept. The pass
// short-circuits once limit entries are collected; blanks are skipped
// and do not count toward the cap.
func Suggest(products []domain.Product, limit int) []string {
	if limit <= 0 {
		limit = DefaultSuggestionLimit
	}

	seen := make(map[string]struct{}, limit)
	suggestions := make([]string, 0, limit)

	push := func(s string) bool {
		s = strings.TrimSpace(s)
		if s == "" {
			return len(suggestions) < limit
		}
		key := strings.ToLower(s)
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			suggestions = append(suggestions, s)
		}
		return len(suggestions) < limit
	}

	for i := range products {
		if !push(products[i].Title) {
			return suggestions
		}
	}
	for i := range products {
		if !push(products[i].Brand.Name) {
			return suggestions
		}
	}
	for i := range products {
		if !push(GenderLabel(products[i].Gender)) {
			return suggestions
		}
	}
	for i := range products {
		notes := products[i].Notes
		for _, tier := range [][]string{notes.Top, notes.Heart, notes.Base} {
			for _, note := range tier {
				if !push(note) {
					return suggestions
				}
			}
		}
	}
	for _, s := range curatedSuggestions {
		if !push(s) {
			return suggestions
		}
	}

	return suggestions
}

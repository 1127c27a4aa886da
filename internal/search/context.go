// Package search implements the storefront relevance engine: query
// tokenization, per-candidate field composition, required-match scoring,
// ranking, autocomplete suggestions, and match highlighting.
//
// Every entry point is a pure function over its arguments: no I/O, no
// shared mutable state, safe for concurrent callers.
package search

import "strings"

// Context is a normalized query plus its tokens, built once per search
// call and immutable afterward.
//
// Tokens preserve query order and are NOT deduplicated here: a repeated
// word applies its scoring bonus once per occurrence.
type Context struct {
	Query  string   `json:"query"`
	Tokens []string `json:"tokens"`
}

// BuildContext normalizes a raw query into a Context. Lowercases and
// trims the input, then splits on runs of whitespace, discarding empty
// pieces. A blank query yields an empty token list, which downstream
// scoring treats as "match everything at score zero".
func BuildContext(rawQuery string) Context {
	query := strings.ToLower(strings.TrimSpace(rawQuery))
	return Context{
		Query:  query,
		Tokens: strings.Fields(query),
	}
}

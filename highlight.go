package scentsearch

import core "github.com/velour-cloud/scentsearch/internal/search"

// Segment is a slice of result text, marked when it matched a query
// token. Consumers render matched segments emphasized.
type Segment struct {
	Text  string `json:"text"`
	Match bool   `json:"match"`
}

// Highlight splits text into plain and matched segments against the
// token list returned by Search. With no tokens the whole text comes
// back as a single plain segment.
func Highlight(text string, tokens []string) []Segment {
	segments := core.Highlight(text, tokens)
	out := make([]Segment, len(segments))
	for i, s := range segments {
		out[i] = Segment{Text: s.Text, Match: s.Match}
	}
	return out
}

package search

import (
	"regexp"
	"strings"
)

// Segment is a fragment of display text, marked when it matched one of
// the query tokens.
type Segment struct {
	Text  string `json:"text"`
	Match bool   `json:"match"`
}

// Highlight splits text into plain and matched segments for display.
// Tokens are deduplicated case-insensitively and matched as escaped
// literals via a single case-insensitive alternation; empty fragments
// are dropped. With no tokens the text comes back as one plain segment.
// Presentation only — plays no part in scoring or ranking.
func Highlight(text string, tokens []string) []Segment {
	escaped := make([]string, 0, len(tokens))
	seen := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		key := strings.ToLower(t)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		escaped = append(escaped, regexp.QuoteMeta(key))
	}
	if len(escaped) == 0 {
		return []Segment{{Text: text}}
	}

	re := regexp.MustCompile("(?i)(" + strings.Join(escaped, "|") + ")")

	segments := make([]Segment, 0, 4)
	last := 0
	for _, loc := range re.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			segments = append(segments, Segment{Text: text[last:loc[0]]})
		}
		segments = append(segments, Segment{Text: text[loc[0]:loc[1]], Match: true})
		last = loc[1]
	}
	if last < len(text) {
		segments = append(segments, Segment{Text: text[last:]})
	}
	return segments
}

package search

import "strings"

// Title-match bonuses are asymmetric: a product title hit is worth
// twice a journal title hit, and a product title prefix doubles again.
const (
	tokenBaseScore     = 1.0
	productTitleBonus  = 0.5
	productPrefixBonus = 0.5
	journalTitleBonus  = 0.25
	badgePhraseBonus   = 0.25
)

// ScoreProduct scores a composed product against the query context.
// Returns ok=false when any token misses the blob (required-match
// policy: every token must appear somewhere).
//
// An empty token list scores 0 without rejection — the default browse
// state shows the full catalog unranked.
func ScoreProduct(title string, fields Fields, ctx Context) (score float64, ok bool) {
	if len(ctx.Tokens) == 0 {
		return 0, true
	}

	blob := strings.ToLower(fields.Blob)
	loweredTitle := strings.ToLower(title)

	for _, token := range ctx.Tokens {
		if !strings.Contains(blob, token) {
			return 0, false
		}
		score += tokenBaseScore
		if strings.Contains(loweredTitle, token) {
			score += productTitleBonus
		}
		if strings.HasPrefix(loweredTitle, token) {
			score += productPrefixBonus
		}
	}

	// Whole-phrase badge hit is a flat bonus, applied once.
	for _, badge := range fields.Badges {
		if strings.Contains(strings.ToLower(badge), ctx.Query) {
			score += badgePhraseBonus
			break
		}
	}

	return score, true
}

// ScoreJournal scores a composed journal entry against the query
// context under the same required-match policy, with the smaller
// title bonus and no prefix or badge bonuses.
func ScoreJournal(title string, fields Fields, ctx Context) (score float64, ok bool) {
	if len(ctx.Tokens) == 0 {
		return 0, true
	}

	blob := strings.ToLower(fields.Blob)
	loweredTitle := strings.ToLower(title)

	for _, token := range ctx.Tokens {
		if !strings.Contains(blob, token) {
			return 0, false
		}
		score += tokenBaseScore
		if strings.Contains(loweredTitle, token) {
			score += journalTitleBonus
		}
	}

	return score, true
}

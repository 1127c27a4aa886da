package search

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScoreProduct_EmptyTokens(t *testing.T) {
	p := sampleProduct()
	fields := ComposeProduct(&p, testPrice)

	score, ok := ScoreProduct(p.Title, fields, BuildContext(""))
	if !ok {
		t.Fatal("empty query must never reject")
	}
	if score != 0 {
		t.Errorf("score = %v, want 0", score)
	}
}

func TestScoreProduct_RequiredMatch(t *testing.T) {
	p := sampleProduct()
	fields := ComposeProduct(&p, testPrice)

	// "dior" matches, "oud" does not: AND policy rejects.
	if _, ok := ScoreProduct(p.Title, fields, BuildContext("dior oud")); ok {
		t.Error("expected rejection when any token misses the blob")
	}
	if _, ok := ScoreProduct(p.Title, fields, BuildContext("dior sauvage")); !ok {
		t.Error("expected match when every token hits the blob")
	}
}

func TestScoreProduct_CaseInsensitive(t *testing.T) {
	p := sampleProduct()
	fields := ComposeProduct(&p, testPrice)

	lower, okLower := ScoreProduct(p.Title, fields, BuildContext("dior"))
	upper, okUpper := ScoreProduct(p.Title, fields, BuildContext("DIOR"))
	if !okLower || !okUpper {
		t.Fatal("both casings must match")
	}
	if lower != upper {
		t.Errorf("scores differ by casing: %v vs %v", lower, upper)
	}
}

func TestScoreProduct_Bonuses(t *testing.T) {
	p := sampleProduct() // title "Dior Sauvage Eau de Toilette", badge "Dior"

	tests := []struct {
		name  string
		query string
		want  float64
	}{
		// base 1 + title substring 0.5 + title prefix 0.5 + badge phrase 0.25
		{"prefix and badge", "dior", 2.25},
		// base 1 + title substring 0.5, no prefix, no badge containing "sauvage"
		{"title substring only", "sauvage", 1.5},
		// blob-only hit: base 1
		{"description only", "radiant", 1.0},
		// note hit: base 1 + badge "Bergamot" contains query
		{"note badge", "bergamot", 1.25},
		// two tokens, both in title, first is prefix; badge bonus applies
		// only when the whole phrase is inside one badge, which it is not
		{"two tokens", "dior sauvage", 3.5},
	}

	fields := ComposeProduct(&p, testPrice)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			score, ok := ScoreProduct(p.Title, fields, BuildContext(tc.query))
			if !ok {
				t.Fatalf("unexpected rejection for %q", tc.query)
			}
			if !almostEqual(score, tc.want) {
				t.Errorf("score(%q) = %v, want %v", tc.query, score, tc.want)
			}
		})
	}
}

func TestScoreProduct_DuplicateTokensApplyTwice(t *testing.T) {
	// Tokens are deliberately not deduplicated: "dior dior" applies the
	// per-token bonuses twice. Only the flat badge bonus stays single.
	p := sampleProduct()
	fields := ComposeProduct(&p, testPrice)

	single, _ := ScoreProduct(p.Title, fields, BuildContext("dior"))
	double, ok := ScoreProduct(p.Title, fields, BuildContext("dior dior"))
	if !ok {
		t.Fatal("unexpected rejection")
	}
	// single = 2.25 (incl. badge 0.25); double = 2*2 + 0.25 = 4.25
	if !almostEqual(double, 2*(single-badgePhraseBonus)+badgePhraseBonus) {
		t.Errorf("double = %v, single = %v", double, single)
	}
}

func TestScoreProduct_TitleBonusOrdering(t *testing.T) {
	inDescription := sampleProduct()
	inDescription.Title = "Velvet Bloom"
	inDescription.Description = "A dark rose over smoke."

	inTitle := sampleProduct()
	inTitle.Title = "Noir Rose"
	inTitle.Description = "A dark rose over smoke."

	prefixed := sampleProduct()
	prefixed.Title = "Rose Noir"
	prefixed.Description = "A dark rose over smoke."

	ctx := BuildContext("rose")
	descScore, _ := ScoreProduct(inDescription.Title, ComposeProduct(&inDescription, testPrice), ctx)
	titleScore, _ := ScoreProduct(inTitle.Title, ComposeProduct(&inTitle, testPrice), ctx)
	prefixScore, _ := ScoreProduct(prefixed.Title, ComposeProduct(&prefixed, testPrice), ctx)

	if titleScore < descScore+productTitleBonus {
		t.Errorf("title hit %v must outscore description hit %v by at least %v",
			titleScore, descScore, productTitleBonus)
	}
	if prefixScore < titleScore+productPrefixBonus {
		t.Errorf("prefix hit %v must outscore plain title hit %v by at least %v",
			prefixScore, titleScore, productPrefixBonus)
	}
}

func TestScoreJournal(t *testing.T) {
	fields := Fields{Blob: "The Art of Fragrance Layering Build a scent wardrobe."}
	title := "The Art of Fragrance Layering"

	score, ok := ScoreJournal(title, fields, BuildContext("layering"))
	if !ok {
		t.Fatal("unexpected rejection")
	}
	// base 1 + journal title bonus 0.25; no prefix bonus for journal
	if !almostEqual(score, 1.25) {
		t.Errorf("score = %v, want 1.25", score)
	}

	if _, ok := ScoreJournal(title, fields, BuildContext("vetiver")); ok {
		t.Error("expected rejection for token missing the blob")
	}

	score, ok = ScoreJournal(title, fields, BuildContext("wardrobe"))
	if !ok || !almostEqual(score, 1.0) {
		t.Errorf("excerpt-only hit = %v, %v; want 1.0, true", score, ok)
	}
}

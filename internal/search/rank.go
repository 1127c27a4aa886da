package search

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/velour-cloud/scentsearch/internal/domain"
)

// RankProducts composes and scores every product, drops rejected ones,
// and returns a fresh slice sorted score-descending with locale-aware
// title-ascending tie-breaks.
func RankProducts(products []domain.Product, ctx Context, formatPrice PriceFormatter) []Result {
	results := make([]Result, 0, len(products))
	for i := range products {
		p := &products[i]
		fields := ComposeProduct(p, formatPrice)
		score, ok := ScoreProduct(p.Title, fields, ctx)
		if !ok {
			continue
		}
		results = append(results, Result{
			ID:          p.ID,
			Title:       p.Title,
			Description: fields.Description,
			Href:        p.Href(),
			Image:       p.Image(),
			Badges:      fields.Badges,
			Meta:        fields.Meta,
			Type:        TypeProduct,
			Score:       score,
		})
	}
	sortResults(results)
	return results
}

// RankJournal composes and scores every journal entry under the same
// ordering rule.
func RankJournal(entries []domain.JournalEntry, ctx Context) []Result {
	results := make([]Result, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		fields := ComposeJournal(e)
		score, ok := ScoreJournal(e.Title, fields, ctx)
		if !ok {
			continue
		}
		results = append(results, Result{
			ID:          e.ID,
			Title:       e.Title,
			Description: fields.Description,
			Href:        e.Href,
			Image:       e.Image,
			Type:        TypeJournal,
			Score:       score,
		})
	}
	sortResults(results)
	return results
}

// Coalesce is the single entry point combining tokenization,
// composition, scoring, and ranking for both candidate kinds.
func Coalesce(
	products []domain.Product, entries []domain.JournalEntry,
	rawQuery string, formatPrice PriceFormatter,
) (Context, ResultsSet) {
	ctx := BuildContext(rawQuery)
	return ctx, ResultsSet{
		Products: RankProducts(products, ctx, formatPrice),
		Journal:  RankJournal(entries, ctx),
	}
}

// sortResults orders by score descending, then title ascending under
// English collation. A collator is built per call: collate.Collator is
// not safe for concurrent use.
func sortResults(results []Result) {
	coll := collate.New(language.English)
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return coll.CompareString(results[i].Title, results[j].Title) < 0
	})
}

package search

import (
	"fmt"
	"strings"

	"github.com/velour-cloud/scentsearch/internal/domain"
)

// PriceFormatter renders a minor-unit amount as a localized currency
// string. A nil amount must render as an em-dash.
type PriceFormatter func(paise *int64) string

// Fields is the composed search surface of one candidate: the blob the
// scorer matches tokens against, plus the display fields carried into
// the result. Blob keeps original casing; it is folded at scoring time.
type Fields struct {
	Blob        string
	Description string
	Badges      []string
	Meta        string
}

// GenderLabel maps a catalog gender to its storefront display label.
func GenderLabel(g domain.Gender) string {
	switch g {
	case domain.GenderMen:
		return "For Men"
	case domain.GenderWomen:
		return "For Women"
	case domain.GenderUnisex:
		return "Unisex"
	default:
		return "For All"
	}
}

// ComposeProduct builds the searchable blob and display fields for a
// catalog product.
func ComposeProduct(p *domain.Product, formatPrice PriceFormatter) Fields {
	label := GenderLabel(p.Gender)

	blobParts := []string{p.Title, p.Brand.Name, label, p.Description}
	blobParts = append(blobParts, p.Notes.Top...)
	blobParts = append(blobParts, p.Notes.Heart...)
	blobParts = append(blobParts, p.Notes.Base...)

	return Fields{
		Blob:        strings.Join(blobParts, " "),
		Description: productDescription(p, label),
		Badges:      productBadges(p, label),
		Meta:        productMeta(p, formatPrice),
	}
}

// ComposeJournal builds the searchable blob and display fields for a
// journal entry: title plus excerpt, excerpt shown verbatim.
func ComposeJournal(e *domain.JournalEntry) Fields {
	return Fields{
		Blob:        e.Title + " " + e.Excerpt,
		Description: e.Excerpt,
	}
}

// productDescription renders "{brand} · {gender label} · {top notes}",
// dropping empty segments.
func productDescription(p *domain.Product, label string) string {
	top := p.Notes.Top
	if len(top) > 3 {
		top = top[:3]
	}

	segments := make([]string, 0, 3)
	for _, s := range []string{p.Brand.Name, label, strings.Join(top, " • ")} {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return strings.Join(segments, " · ")
}

// productBadges collects the display tags: brand, gender label, the
// first two top notes and the first heart note, deduplicated in order.
func productBadges(p *domain.Product, label string) []string {
	candidates := []string{p.Brand.Name, label}
	for i, n := range p.Notes.Top {
		if i == 2 {
			break
		}
		candidates = append(candidates, n)
	}
	if len(p.Notes.Heart) > 0 {
		candidates = append(candidates, p.Notes.Heart[0])
	}

	seen := make(map[string]struct{}, len(candidates))
	badges := make([]string, 0, len(candidates))
	for _, b := range candidates {
		if b == "" {
			continue
		}
		if _, ok := seen[b]; ok {
			continue
		}
		seen[b] = struct{}{}
		badges = append(badges, b)
	}
	return badges
}

// productMeta renders the price/rating line, omitting the price segment
// when no offer is live.
func productMeta(p *domain.Product, formatPrice PriceFormatter) string {
	rating := fmt.Sprintf("%.1f ★ • %d reviews", p.Aggregates.RatingAvg, p.Aggregates.RatingCount)
	if p.Aggregates.LowPricePaise == nil {
		return rating
	}
	return formatPrice(p.Aggregates.LowPricePaise) + " • " + rating
}

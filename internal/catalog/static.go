package catalog

import (
	"context"

	"github.com/velour-cloud/scentsearch/internal/domain"
)

// Static serves the bundled seed dataset. It is the last source in the
// fallback chain and never fails, so the storefront stays browsable
// when the commerce backend is unreachable.
type Static struct{}

// NewStatic creates the seed data source.
func NewStatic() *Static {
	return &Static{}
}

// Products returns a fresh copy of the seed catalog.
func (s *Static) Products(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(seedProducts))
	copy(out, seedProducts)
	return out, nil
}

// Entries returns a fresh copy of the seed journal.
func (s *Static) Entries(_ context.Context) ([]domain.JournalEntry, error) {
	out := make([]domain.JournalEntry, len(seedJournal))
	copy(out, seedJournal)
	return out, nil
}

func paise(v int64) *int64 { return &v }

var seedProducts = []domain.Product{
	{
		ID:          "prod-bleu-edp",
		Title:       "Bleu De Chanel Eau de Parfum",
		Brand:       domain.Brand{Name: "Chanel"},
		Gender:      domain.GenderMen,
		Description: "A woody aromatic with citrus brightness over warm sandalwood.",
		Notes: domain.Notes{
			Top:   []string{"Grapefruit", "Lemon", "Mint"},
			Heart: []string{"Ginger", "Jasmine"},
			Base:  []string{"Sandalwood", "Cedar", "Amber"},
		},
		Aggregates: domain.Aggregates{LowPricePaise: paise(1249900), RatingAvg: 4.7, RatingCount: 1843},
		Slug:       "bleu-de-chanel-eau-de-parfum",
		Media:      []string{"/media/bleu-de-chanel-edp.jpg"},
	},
	{
		ID:          "prod-bleu-edt",
		Title:       "Bleu De Chanel Eau de Toilette",
		Brand:       domain.Brand{Name: "Chanel"},
		Gender:      domain.GenderMen,
		Description: "The lighter composition of the Bleu line, crisp and citric.",
		Notes: domain.Notes{
			Top:   []string{"Lemon", "Mint", "Pink Pepper"},
			Heart: []string{"Grapefruit", "Nutmeg"},
			Base:  []string{"Incense", "Vetiver", "Cedar"},
		},
		Aggregates: domain.Aggregates{LowPricePaise: paise(989900), RatingAvg: 4.6, RatingCount: 1211},
		Slug:       "bleu-de-chanel-eau-de-toilette",
		Media:      []string{"/media/bleu-de-chanel-edt.jpg"},
	},
	{
		ID:          "prod-sauvage-edt",
		Title:       "Dior Sauvage Eau de Toilette",
		Brand:       domain.Brand{Name: "Dior"},
		Gender:      domain.GenderMen,
		Description: "Radiant bergamot over ambroxan, raw and noble at once.",
		Notes: domain.Notes{
			Top:   []string{"Bergamot", "Pepper"},
			Heart: []string{"Lavender", "Geranium", "Sichuan Pepper"},
			Base:  []string{"Ambroxan", "Labdanum"},
		},
		Aggregates: domain.Aggregates{LowPricePaise: paise(1099900), RatingAvg: 4.8, RatingCount: 2402},
		Slug:       "dior-sauvage-eau-de-toilette",
		Media:      []string{"/media/dior-sauvage-edt.jpg"},
	},
	{
		ID:          "prod-miss-dior",
		Title:       "Miss Dior",
		Brand:       domain.Brand{Name: "Dior"},
		Gender:      domain.GenderWomen,
		Description: "A blooming floral chypre wrapped around a fresh peony heart.",
		Notes: domain.Notes{
			Top:   []string{"Peony", "Mandarin"},
			Heart: []string{"Rose", "Lily of the Valley"},
			Base:  []string{"Musk", "Patchouli"},
		},
		Aggregates: domain.Aggregates{LowPricePaise: paise(1149900), RatingAvg: 4.5, RatingCount: 1587},
		Slug:       "miss-dior",
		Media:      []string{"/media/miss-dior.jpg"},
	},
	{
		ID:          "prod-chance-tendre",
		Title:       "Chance Eau Tendre",
		Brand:       domain.Brand{Name: "Chanel"},
		Gender:      domain.GenderWomen,
		Description: "A tender fruity floral of grapefruit, quince, and white musk.",
		Notes: domain.Notes{
			Top:   []string{"Grapefruit", "Quince"},
			Heart: []string{"Jasmine", "Hyacinth"},
			Base:  []string{"White Musk", "Iris"},
		},
		Aggregates: domain.Aggregates{LowPricePaise: paise(1079900), RatingAvg: 4.4, RatingCount: 968},
		Slug:       "chance-eau-tendre",
		Media:      []string{"/media/chance-eau-tendre.jpg"},
	},
	{
		ID:          "prod-terre-hermes",
		Title:       "Terre d'Hermès",
		Brand:       domain.Brand{Name: "Hermès"},
		Gender:      domain.GenderMen,
		Description: "Mineral orange and flint grounded in vetiver and benzoin.",
		Notes: domain.Notes{
			Top:   []string{"Orange", "Grapefruit"},
			Heart: []string{"Pepper", "Pelargonium"},
			Base:  []string{"Vetiver", "Cedar", "Benzoin"},
		},
		Aggregates: domain.Aggregates{LowPricePaise: paise(1189900), RatingAvg: 4.6, RatingCount: 1345},
		Slug:       "terre-d-hermes",
		Media:      []string{"/media/terre-d-hermes.jpg"},
	},
	{
		ID:          "prod-ck-one",
		Title:       "CK One",
		Brand:       domain.Brand{Name: "Calvin Klein"},
		Gender:      domain.GenderUnisex,
		Description: "The original shared scent: green tea freshness for everyone.",
		Notes: domain.Notes{
			Top:   []string{"Lemon", "Bergamot", "Pineapple"},
			Heart: []string{"Green Tea", "Violet"},
			Base:  []string{"Musk", "Amber"},
		},
		Aggregates: domain.Aggregates{LowPricePaise: paise(429900), RatingAvg: 4.2, RatingCount: 3011},
		Slug:       "ck-one",
		Media:      []string{"/media/ck-one.jpg"},
	},
	{
		ID:          "prod-good-girl",
		Title:       "Good Girl",
		Brand:       domain.Brand{Name: "Carolina Herrera"},
		Gender:      domain.GenderWomen,
		Description: "Bright tuberose against dark tonka and cocoa.",
		Notes: domain.Notes{
			Top:   []string{"Almond", "Coffee"},
			Heart: []string{"Tuberose", "Jasmine Sambac"},
			Base:  []string{"Tonka Bean", "Cacao"},
		},
		Aggregates: domain.Aggregates{LowPricePaise: paise(919900), RatingAvg: 4.3, RatingCount: 1102},
		Slug:       "good-girl",
		Media:      []string{"/media/good-girl.jpg"},
	},
	{
		ID:          "prod-tobacco-vanille",
		Title:       "Tobacco Vanille",
		Brand:       domain.Brand{Name: "Tom Ford"},
		Gender:      domain.GenderUnisex,
		Description: "Opulent tobacco leaf sweetened with creamy amber vanilla.",
		Notes: domain.Notes{
			Top:   []string{"Tobacco Leaf", "Spices"},
			Heart: []string{"Vanilla", "Cacao", "Tonka Bean"},
			Base:  []string{"Dried Fruits", "Woods"},
		},
		// No live offer at the moment.
		Aggregates: domain.Aggregates{LowPricePaise: nil, RatingAvg: 4.7, RatingCount: 754},
		Slug:       "tobacco-vanille",
		Media:      []string{"/media/tobacco-vanille.jpg"},
	},
}

var seedJournal = []domain.JournalEntry{
	{
		ID:      "journal-layering",
		Title:   "The Art of Fragrance Layering",
		Excerpt: "Build a scent wardrobe that is yours alone by pairing complementary compositions.",
		Href:    "/journal/the-art-of-fragrance-layering",
		Image:   "/media/journal-layering.jpg",
	},
	{
		ID:      "journal-amber-vanilla",
		Title:   "A Field Guide to Amber Vanilla",
		Excerpt: "Why the warmest accord in perfumery keeps returning every winter.",
		Href:    "/journal/a-field-guide-to-amber-vanilla",
		Image:   "/media/journal-amber-vanilla.jpg",
	},
	{
		ID:      "journal-signature",
		Title:   "Choosing a Signature Scent",
		Excerpt: "A practical route from sample vials to the bottle you reach for daily.",
		Href:    "/journal/choosing-a-signature-scent",
		Image:   "/media/journal-signature.jpg",
	},
	{
		ID:      "journal-dior-atelier",
		Title:   "Inside the Dior Atelier",
		Excerpt: "Tracing Sauvage from Grasse fields to the blending room.",
		Href:    "/journal/inside-the-dior-atelier",
		Image:   "/media/journal-dior-atelier.jpg",
	},
}

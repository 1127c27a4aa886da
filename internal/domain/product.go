package domain

// Gender is the audience a fragrance is marketed to.
type Gender string

// Gender values recognized by the catalog. Anything else is treated as
// "for all" at display time.
const (
	GenderMen    Gender = "men"
	GenderWomen  Gender = "women"
	GenderUnisex Gender = "unisex"
	GenderOther  Gender = "other"
)

// Brand is the fragrance house a product belongs to.
type Brand struct {
	Name string `json:"name"`
}

// Notes holds the fragrance pyramid. Tiers may be empty but are never nil.
type Notes struct {
	Top   []string `json:"top"`
	Heart []string `json:"heart"`
	Base  []string `json:"base"`
}

// Aggregates holds denormalized pricing and review figures for a product.
// LowPricePaise is the cheapest live offer in minor units; nil when no
// offer is live.
type Aggregates struct {
	LowPricePaise *int64  `json:"low_price_paise"`
	RatingAvg     float64 `json:"rating_avg"`
	RatingCount   int     `json:"rating_count"`
}

// Product is a catalog entry as served by the commerce backend.
// Products are read-only inputs to the search layer; it never mutates them.
type Product struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Brand       Brand      `json:"brand"`
	Gender      Gender     `json:"gender"`
	Description string     `json:"description"`
	Notes       Notes      `json:"notes"`
	Aggregates  Aggregates `json:"aggregates"`
	Slug        string     `json:"slug"`
	Media       []string   `json:"media"`
}

// Href returns the storefront path for the product page.
func (p *Product) Href() string {
	return "/products/" + p.Slug
}

// Image returns the primary media URL, or empty when the product has none.
func (p *Product) Image() string {
	if len(p.Media) == 0 {
		return ""
	}
	return p.Media[0]
}

package search

// ResultType identifies which bucket a search result belongs to.
type ResultType string

// Result buckets.
const (
	TypeProduct ResultType = "product"
	TypeJournal ResultType = "journal"
)

// Result is a single ranked search hit, shaped for direct display:
// the description, badges, and meta line are already composed.
type Result struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Href        string     `json:"href"`
	Image       string     `json:"image,omitempty"`
	Badges      []string   `json:"badges,omitempty"`
	Meta        string     `json:"meta,omitempty"`
	Type        ResultType `json:"type"`
	Score       float64    `json:"score"`
}

// ResultsSet holds both ranked buckets of one search call. The buckets
// are disjoint by type and each is sorted score-descending with
// title-ascending tie-breaks.
type ResultsSet struct {
	Products []Result `json:"products"`
	Journal  []Result `json:"journal"`
}

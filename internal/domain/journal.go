package domain

// JournalEntry is an editorial story from the storefront journal.
// Immutable content; no scoring fields beyond its text.
type JournalEntry struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Href    string `json:"href"`
	Image   string `json:"image"`
}

package scraper

import "time"

// Source names, also used as the `source` field of every record.
const (
	SourceInvestopaper = "Investopaper"
	SourceShareSansar  = "ShareSansar"
	SourceNepalipaisa  = "Nepalipaisa"
	SourceMeroLagani   = "MeroLagani"
)

// full_content is never empty: extraction failures are reported in-band as
// one of these sentinel strings, and downstream consumers treat them as data.
const (
	ContentNotFound = "Content not found"
	ContentNoText   = "No readable content found"
	ContentError    = "Error retrieving full article content"
	ContentTimeout  = "Timeout retrieving full article content"
)

// IsContentSentinel reports whether s is one of the failure placeholders
// rather than real article text.
func IsContentSentinel(s string) bool {
	switch s {
	case ContentNotFound, ContentNoText, ContentError, ContentTimeout:
		return true
	}
	return false
}

// Article is the canonical record shape shared by all sources. All eight
// fields are always present in the serialized form; a source that cannot
// fill a field emits null/empty instead of omitting it.
type Article struct {
	Title       string   `json:"title"`
	Link        string   `json:"link"`
	Date        string   `json:"date"` // free-form display string, source formats are incompatible
	Summary     *string  `json:"summary"`
	FullContent string   `json:"full_content"`
	Categories  []string `json:"categories"`
	ImageURL    *string  `json:"image_url"`
	Source      string   `json:"source"`
}

// SymbolNews is the persisted per-symbol document. A run writes it whole,
// replacing any prior document for the symbol.
type SymbolNews struct {
	Symbol      string    `json:"symbol"`
	LastUpdated time.Time `json:"last_updated"`
	News        []Article `json:"news"`
}

// Extractor is one news source. ListArticles parses the symbol's listing
// page into skeleton records (empty slice, not an error, when the expected
// container is absent); FetchDetail returns the article body for one listed
// record plus a more precise date where the source's article pages carry
// one ("" otherwise).
type Extractor interface {
	Name() string
	ListArticles(symbol string) ([]Article, error)
	FetchDetail(link string) (content string, date string)
}

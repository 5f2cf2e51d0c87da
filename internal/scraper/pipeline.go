package scraper

import (
	"log"
	"time"
)

// DocumentWriter persists the merged symbol document. Implemented by
// storage.FileStore.
type DocumentWriter interface {
	WriteSymbolNews(doc SymbolNews) error
}

// Pipeline runs the four extractors for one symbol in a fixed order and
// writes the merged document, fully replacing the symbol's prior one.
// Execution is strictly sequential by design: the browser-driven extractors
// share one Session, and the pacing delays are a politeness policy toward
// the source sites, not a performance knob. Do not parallelize sources
// without giving each its own session.
type Pipeline struct {
	store DocumentWriter

	// Tunable pacing. ArticleDelay separates detail fetches within one
	// listing, SourceDelay separates the sources.
	ArticleDelay time.Duration
	SourceDelay  time.Duration

	// Test seams; production runs use the real browser and extractor set.
	newSession func() (*Session, error)
	extractors func(s *Session) []Extractor
}

func NewPipeline(store DocumentWriter) *Pipeline {
	return &Pipeline{
		store:        store,
		ArticleDelay: 1 * time.Second,
		SourceDelay:  2 * time.Second,
		newSession:   NewSession,
		extractors:   defaultExtractors,
	}
}

// defaultExtractors fixes the source iteration order, which is also the
// order of the merged news array.
func defaultExtractors(s *Session) []Extractor {
	return []Extractor{
		&InvestopaperExtractor{},
		NewShareSansarExtractor(s),
		NewNepalipaisaExtractor(s),
		NewMeroLaganiExtractor(s),
	}
}

// Run scrapes every source for symbol and returns the merged list. The only
// error a caller sees is a failure to start the browser session or to write
// the final document; everything below degrades in place, so a completed
// run always produces a document, possibly with sentinel content.
func (p *Pipeline) Run(symbol string) ([]Article, error) {
	session, err := p.newSession()
	if err != nil {
		return nil, err
	}
	defer session.Close()

	all := make([]Article, 0, 32)
	for i, ex := range p.extractors(session) {
		if i > 0 {
			time.Sleep(p.SourceDelay)
		}
		all = append(all, p.collect(ex, symbol)...)
	}

	doc := SymbolNews{
		Symbol:      symbol,
		LastUpdated: time.Now(),
		News:        all,
	}
	if err := p.store.WriteSymbolNews(doc); err != nil {
		return nil, err
	}
	return all, nil
}

// RunCount is Run for callers that only need the scraped-item count.
func (p *Pipeline) RunCount(symbol string) (int, error) {
	news, err := p.Run(symbol)
	if err != nil {
		return 0, err
	}
	return len(news), nil
}

// collect drains one source. A source that fails contributes an empty list
// and never aborts the remaining sources.
func (p *Pipeline) collect(ex Extractor, symbol string) []Article {
	name := ex.Name()
	log.Printf("scrape %s for %s...", name, symbol)

	items, err := ex.ListArticles(symbol)
	if err != nil {
		log.Printf("scrape %s error: %v", name, err)
		return nil
	}
	if len(items) == 0 {
		log.Printf("scrape %s got 0 items", name)
		return nil
	}

	for i := range items {
		if i > 0 {
			time.Sleep(p.ArticleDelay)
		}
		content, date := ex.FetchDetail(items[i].Link)
		items[i].FullContent = content
		if date != "" {
			items[i].Date = date
		}
	}

	log.Printf("scrape %s done, %d items", name, len(items))
	return items
}

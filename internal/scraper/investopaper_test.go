package scraper

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

const investopaperListingHTML = `
<html><body>
<div class="article-container">
  <article>
    <h2 class="entry-title"><a href="https://www.investopaper.com/news/nabil-q4/">Nabil Bank Publishes Q4 Report</a></h2>
    <div class="entry-content"><p>August 12, 2025 | Net profit rose 12 percent year on year.</p></div>
    <a rel="category tag">Banking</a>
    <a rel="category tag">Earnings</a>
    <img data-src="https://www.investopaper.com/img/nabil.jpg" src="placeholder.gif"/>
  </article>
  <article>
    <h2 class="entry-title">Broken item without a link</h2>
    <div class="entry-content"><p>August 11, 2025</p></div>
  </article>
  <article>
    <h2 class="entry-title"><a href="https://www.investopaper.com/news/dividend/">Dividend Announcement</a></h2>
  </article>
</div>
</body></html>`

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc
}

func TestParseInvestopaperListing(t *testing.T) {
	doc := mustDoc(t, investopaperListingHTML)
	items := parseInvestopaperListing(doc.Find("div.article-container"))

	// The malformed middle item has no link and must be skipped without
	// dropping its siblings.
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	first := items[0]
	if first.Title != "Nabil Bank Publishes Q4 Report" {
		t.Fatalf("unexpected title: %q", first.Title)
	}
	if first.Link != "https://www.investopaper.com/news/nabil-q4/" {
		t.Fatalf("unexpected link: %q", first.Link)
	}
	if first.Date != "August 12, 2025" {
		t.Fatalf("unexpected date: %q", first.Date)
	}
	if first.Summary == nil || *first.Summary != "Net profit rose 12 percent year on year." {
		t.Fatalf("unexpected summary: %v", first.Summary)
	}
	if len(first.Categories) != 2 || first.Categories[0] != "Banking" || first.Categories[1] != "Earnings" {
		t.Fatalf("unexpected categories: %v", first.Categories)
	}
	if first.ImageURL == nil || *first.ImageURL != "https://www.investopaper.com/img/nabil.jpg" {
		t.Fatalf("data-src should win over src: %v", first.ImageURL)
	}
	if first.Source != SourceInvestopaper {
		t.Fatalf("unexpected source: %q", first.Source)
	}

	second := items[1]
	if second.Date != "Unknown date" {
		t.Fatalf("missing meta should default date, got %q", second.Date)
	}
	if second.Summary != nil {
		t.Fatalf("missing meta should leave summary nil, got %v", *second.Summary)
	}
	if second.Categories == nil || len(second.Categories) != 0 {
		t.Fatalf("categories should be empty, not nil: %v", second.Categories)
	}
	if second.ImageURL != nil {
		t.Fatalf("image should be nil when absent")
	}
}

func TestParseInvestopaperListingMissingContainer(t *testing.T) {
	doc := mustDoc(t, `<html><body><div class="unrelated"><article></article></div></body></html>`)
	items := parseInvestopaperListing(doc.Find("div.article-container"))
	if len(items) != 0 {
		t.Fatalf("expected no items without the article container, got %d", len(items))
	}
}

func TestParseInvestopaperItemPlaceholderTitle(t *testing.T) {
	doc := mustDoc(t, `<article><h2 class="entry-title"><a href="https://www.investopaper.com/x/"></a></h2></article>`)
	a, ok := parseInvestopaperItem(doc.Find("article"))
	if !ok {
		t.Fatalf("item with a link should parse")
	}
	if a.Title != "No title" {
		t.Fatalf("expected placeholder title, got %q", a.Title)
	}
	if a.FullContent != ContentNotFound {
		t.Fatalf("skeleton record should carry the not-found sentinel, got %q", a.FullContent)
	}
}

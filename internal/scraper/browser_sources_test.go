package scraper

import (
	"strings"
	"testing"
)

func TestParseShareSansarListing(t *testing.T) {
	html := `
<html><body><div id="cnews">
  <div class="featured-news-list">
    <a href="https://www.sharesansar.com/newsdetail/nabil-agm-123">
      <h4 class="featured-news-title">Nabil Bank Calls AGM</h4>
    </a>
    <span class="text-org">2 days ago</span>
  </div>
  <div class="featured-news-list">
    <span class="text-org">orphan entry without a link</span>
  </div>
  <div class="featured-news-list">
    <a href="https://www.sharesansar.com/newsdetail/nabil-dividend-456">
      <h4 class="featured-news-title">Nabil Proposes Dividend</h4>
    </a>
  </div>
</div></body></html>`

	items := parseShareSansarListing(html)
	if len(items) != 2 {
		t.Fatalf("expected 2 items (orphan skipped), got %d", len(items))
	}
	if items[0].Title != "Nabil Bank Calls AGM" || items[0].Date != "2 days ago" {
		t.Fatalf("unexpected first item: %+v", items[0])
	}
	if items[1].Date != "Unknown date" {
		t.Fatalf("missing listing date should default, got %q", items[1].Date)
	}
	for _, it := range items {
		if it.Source != SourceShareSansar {
			t.Fatalf("unexpected source %q", it.Source)
		}
		if it.Summary != nil || it.ImageURL != nil {
			t.Fatalf("sharesansar never provides summary/image: %+v", it)
		}
		if it.Categories == nil || len(it.Categories) != 0 {
			t.Fatalf("categories should be empty, not nil")
		}
	}
}

func TestParseShareSansarListingMissingContainer(t *testing.T) {
	if items := parseShareSansarListing(`<html><body><p>maintenance page</p></body></html>`); len(items) != 0 {
		t.Fatalf("expected no items, got %d", len(items))
	}
}

func TestParseShareSansarDetail(t *testing.T) {
	html := `
<html><body>
  <p class="dateTime"><span>2025-08-12 14:30</span></p>
  <div id="newsdetail-content">
    <p>Opening paragraph.</p>
    <p>Second paragraph.</p>
  </div>
</body></html>`

	content, date := parseShareSansarDetail(html)
	if date != "2025-08-12 14:30" {
		t.Fatalf("unexpected detail date: %q", date)
	}
	if content != "Opening paragraph.\n\nSecond paragraph." {
		t.Fatalf("unexpected content: %q", content)
	}
}

func TestParseShareSansarDetailMissingBody(t *testing.T) {
	content, date := parseShareSansarDetail(`<html><body><p class="dateTime"><span>2025-08-12</span></p></body></html>`)
	if content != ContentNotFound {
		t.Fatalf("expected %q, got %q", ContentNotFound, content)
	}
	if date != "2025-08-12" {
		t.Fatalf("date should still be extracted, got %q", date)
	}
}

func TestParseNepalipaisaListing(t *testing.T) {
	html := `
<html><body><div class="news-list">
  <div class="media">
    <a class="news-title" href="/news/nabil-bonus-789">Nabil Announces Bonus Shares</a>
    <span class="news-date">Shrawan 28</span>
  </div>
  <div class="media">
    <span class="news-date">row with no title link</span>
  </div>
</div></body></html>`

	items := parseNepalipaisaListing(html)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	it := items[0]
	if it.Link != "https://nepalipaisa.com/news/nabil-bonus-789" {
		t.Fatalf("relative link should be made absolute, got %q", it.Link)
	}
	if it.Title != "Nabil Announces Bonus Shares" || it.Date != "Shrawan 28" {
		t.Fatalf("unexpected item: %+v", it)
	}
	if it.Source != SourceNepalipaisa {
		t.Fatalf("unexpected source %q", it.Source)
	}
}

func TestParseNepalipaisaDetail(t *testing.T) {
	html := `
<html><body>
  <span class="article-date">2082-04-28</span>
  <div class="article-detail">
    <p>Paragraph one.</p>
    <p>Paragraph two.</p>
  </div>
</body></html>`

	content, date := parseNepalipaisaDetail(html)
	if date != "2082-04-28" {
		t.Fatalf("unexpected date: %q", date)
	}
	if content != "Paragraph one.\n\nParagraph two." {
		t.Fatalf("unexpected content: %q", content)
	}
}

func TestParseMeroLaganiListing(t *testing.T) {
	html := `
<html><body><div id="ctl00_ContentPlaceHolder1_CompanyDetail1_divNews">
<table>
  <tr><th>Date</th><th>News</th></tr>
  <tr><td>2025/08/10</td><td><a href="/NewsDetail.aspx?newsID=111">Nabil Q4 Financials Out</a></td></tr>
  <tr><td>2025/08/08</td><td>plain text row without link</td></tr>
  <tr><td>2025/08/05</td><td><a href="https://merolagani.com/NewsDetail.aspx?newsID=112">Board Meeting Notice</a></td></tr>
</table>
</div></body></html>`

	items := parseMeroLaganiListing(html)
	if len(items) != 2 {
		t.Fatalf("expected 2 items (header and linkless rows skipped), got %d", len(items))
	}
	if items[0].Link != "https://merolagani.com/NewsDetail.aspx?newsID=111" {
		t.Fatalf("relative link should be made absolute, got %q", items[0].Link)
	}
	if items[0].Date != "2025/08/10" || items[0].Title != "Nabil Q4 Financials Out" {
		t.Fatalf("unexpected first row: %+v", items[0])
	}
	if items[1].Link != "https://merolagani.com/NewsDetail.aspx?newsID=112" {
		t.Fatalf("absolute link should pass through, got %q", items[1].Link)
	}
	for _, it := range items {
		if it.Source != SourceMeroLagani {
			t.Fatalf("unexpected source %q", it.Source)
		}
		if it.Summary != nil || it.ImageURL != nil || len(it.Categories) != 0 {
			t.Fatalf("merolagani provides none of summary/categories/image: %+v", it)
		}
	}
}

func TestParseMeroLaganiListingMissingTable(t *testing.T) {
	if items := parseMeroLaganiListing(`<html><body><div id="other"></div></body></html>`); len(items) != 0 {
		t.Fatalf("expected no items, got %d", len(items))
	}
}

func TestListingParsersToleratePlainText(t *testing.T) {
	// Not HTML at all: every parser must come back empty, never panic.
	garbage := strings.Repeat("not markup ", 10)
	if got := parseShareSansarListing(garbage); len(got) != 0 {
		t.Fatalf("sharesansar: expected empty, got %d", len(got))
	}
	if got := parseNepalipaisaListing(garbage); len(got) != 0 {
		t.Fatalf("nepalipaisa: expected empty, got %d", len(got))
	}
	if got := parseMeroLaganiListing(garbage); len(got) != 0 {
		t.Fatalf("merolagani: expected empty, got %d", len(got))
	}
}

package scraper

import (
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	nepalipaisaCompanyURL = "https://nepalipaisa.com/company/%s"
	nepalipaisaNewsMarker = "div.news-list"
	nepalipaisaBodyMarker = "div.article-detail"
)

// NepalipaisaExtractor reads the company news list on nepalipaisa.com. Both
// the listing and the article pages are rendered by an Angular frontend, so
// every fetch goes through the shared browser session. Like ShareSansar,
// the listing date is coarse; the article page carries the precise one.
type NepalipaisaExtractor struct {
	session *Session
}

func NewNepalipaisaExtractor(s *Session) *NepalipaisaExtractor {
	return &NepalipaisaExtractor{session: s}
}

func (x *NepalipaisaExtractor) Name() string { return SourceNepalipaisa }

func (x *NepalipaisaExtractor) ListArticles(symbol string) ([]Article, error) {
	companyURL := fmt.Sprintf(nepalipaisaCompanyURL, url.PathEscape(symbol))
	if err := x.session.Navigate(companyURL, nepalipaisaNewsMarker); err != nil {
		if isTimeout(err) {
			log.Printf("nepalipaisa: news list not found for %s", symbol)
			return nil, nil
		}
		return nil, err
	}
	html, err := x.session.HTML()
	if err != nil {
		return nil, err
	}
	return parseNepalipaisaListing(html), nil
}

func parseNepalipaisaListing(html string) []Article {
	doc, err := parseHTML(html)
	if err != nil {
		return nil
	}

	var out []Article
	doc.Find("div.news-list div.media").Each(func(_ int, s *goquery.Selection) {
		titleSel := s.Find("a.news-title").First()
		link, _ := titleSel.Attr("href")
		link = strings.TrimSpace(link)
		if link == "" {
			return
		}
		if strings.HasPrefix(link, "/") {
			link = "https://nepalipaisa.com" + link
		}
		title := strings.TrimSpace(titleSel.Text())
		if title == "" {
			title = "No title"
		}
		date := strings.TrimSpace(s.Find("span.news-date").First().Text())
		if date == "" {
			date = "Unknown date"
		}
		out = append(out, Article{
			Title:       title,
			Link:        link,
			Date:        date,
			FullContent: ContentNotFound,
			Categories:  []string{},
			Source:      SourceNepalipaisa,
		})
	})
	return out
}

// FetchDetail renders the article page in the shared session. A render
// timeout degrades to the timeout sentinel for this one article; siblings
// in the same listing are unaffected.
func (x *NepalipaisaExtractor) FetchDetail(link string) (string, string) {
	if err := x.session.Navigate(link, nepalipaisaBodyMarker); err != nil {
		if isTimeout(err) {
			log.Printf("nepalipaisa: render timeout for %s", link)
			return ContentTimeout, ""
		}
		log.Printf("nepalipaisa: fetch article %s: %v", link, err)
		return ContentError, ""
	}
	html, err := x.session.HTML()
	if err != nil {
		log.Printf("nepalipaisa: read article %s: %v", link, err)
		return ContentError, ""
	}
	return parseNepalipaisaDetail(html)
}

func parseNepalipaisaDetail(html string) (string, string) {
	doc, err := parseHTML(html)
	if err != nil {
		return ContentError, ""
	}

	date := strings.TrimSpace(doc.Find("span.article-date").First().Text())

	container := doc.Find("div.article-detail").First()
	if container.Length() == 0 {
		return ContentNotFound, date
	}
	return cleanArticleBody(container), date
}

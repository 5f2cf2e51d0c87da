package scraper

import (
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	shareSansarCompanyURL = "https://www.sharesansar.com/company/%s"
	shareSansarNewsMarker = "div#cnews"
)

// ShareSansarExtractor reads the company-news feed on a ShareSansar company
// page. The feed is rendered client side, so the listing goes through the
// shared browser session; article pages themselves are server rendered and
// fetched over plain HTTP. The listing date is coarse ("2 days ago" style)
// and is replaced by the precise date from the article page when one is
// found.
type ShareSansarExtractor struct {
	session *Session
}

func NewShareSansarExtractor(s *Session) *ShareSansarExtractor {
	return &ShareSansarExtractor{session: s}
}

func (x *ShareSansarExtractor) Name() string { return SourceShareSansar }

func (x *ShareSansarExtractor) ListArticles(symbol string) ([]Article, error) {
	companyURL := fmt.Sprintf(shareSansarCompanyURL, url.PathEscape(strings.ToLower(symbol)))
	if err := x.session.Navigate(companyURL, shareSansarNewsMarker); err != nil {
		if isTimeout(err) {
			// News block never appeared: unknown symbol or layout change.
			log.Printf("sharesansar: news block not found for %s", symbol)
			return nil, nil
		}
		return nil, err
	}
	html, err := x.session.HTML()
	if err != nil {
		return nil, err
	}
	return parseShareSansarListing(html), nil
}

// parseShareSansarListing extracts the featured-news entries from the
// rendered company page. Entries without a link are skipped.
func parseShareSansarListing(html string) []Article {
	doc, err := parseHTML(html)
	if err != nil {
		return nil
	}

	var out []Article
	doc.Find("div#cnews div.featured-news-list").Each(func(_ int, s *goquery.Selection) {
		link, _ := s.Find("a").First().Attr("href")
		link = strings.TrimSpace(link)
		if link == "" {
			return
		}
		title := strings.TrimSpace(s.Find("h4.featured-news-title").Text())
		if title == "" {
			title = "No title"
		}
		date := strings.TrimSpace(s.Find("span.text-org").First().Text())
		if date == "" {
			date = "Unknown date"
		}
		out = append(out, Article{
			Title:       title,
			Link:        link,
			Date:        date,
			FullContent: ContentNotFound,
			Categories:  []string{},
			Source:      SourceShareSansar,
		})
	})
	return out
}

// FetchDetail pulls the article body and the precise publication date from
// the article's own page.
func (x *ShareSansarExtractor) FetchDetail(link string) (string, string) {
	html, err := fetchHTML(link)
	if err != nil {
		log.Printf("sharesansar: fetch article %s: %v", link, err)
		return ContentError, ""
	}
	return parseShareSansarDetail(html)
}

func parseShareSansarDetail(html string) (string, string) {
	doc, err := parseHTML(html)
	if err != nil {
		return ContentError, ""
	}

	date := strings.TrimSpace(doc.Find("p.dateTime span").First().Text())

	container := doc.Find("div#newsdetail-content").First()
	if container.Length() == 0 {
		return ContentNotFound, date
	}
	return cleanArticleBody(container), date
}

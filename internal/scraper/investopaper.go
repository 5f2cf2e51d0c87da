package scraper

import (
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
)

const investopaperSearchURL = "https://www.investopaper.com/?s=%s"

// InvestopaperExtractor scrapes the Investopaper search results for a
// symbol. The site is plain server-rendered WordPress, so a normal HTTP
// round trip is enough; it is also the only source whose listing carries
// summaries, categories and images.
type InvestopaperExtractor struct{}

func (x *InvestopaperExtractor) Name() string { return SourceInvestopaper }

func (x *InvestopaperExtractor) ListArticles(symbol string) ([]Article, error) {
	c := colly.NewCollector(
		colly.AllowedDomains("www.investopaper.com", "investopaper.com"),
		colly.UserAgent(userAgent),
	)
	c.SetRequestTimeout(fetchTimeout)

	var results []Article
	c.OnHTML("div.article-container", func(e *colly.HTMLElement) {
		results = append(results, parseInvestopaperListing(e.DOM)...)
	})

	searchURL := fmt.Sprintf(investopaperSearchURL, url.QueryEscape(symbol))
	if err := c.Visit(searchURL); err != nil {
		return nil, err
	}
	// No article-container on the page (layout change or no results) leaves
	// results empty, which is a valid outcome, not an error.
	return results, nil
}

// parseInvestopaperListing walks the search-result container. Malformed
// items are skipped one by one so a single bad block never drops the rest.
func parseInvestopaperListing(container *goquery.Selection) []Article {
	var out []Article
	container.Find("article").Each(func(_ int, s *goquery.Selection) {
		if a, ok := parseInvestopaperItem(s); ok {
			out = append(out, a)
		}
	})
	return out
}

// parseInvestopaperItem converts one <article> block. The listing shows the
// date and summary in a single "date | summary" paragraph; categories come
// from the tag links and images are lazy-loaded via data-src.
func parseInvestopaperItem(s *goquery.Selection) (Article, bool) {
	titleSel := s.Find("h2.entry-title")
	title := strings.TrimSpace(titleSel.Text())
	if title == "" {
		title = "No title"
	}

	link, _ := titleSel.Find("a").Attr("href")
	link = strings.TrimSpace(link)
	if link == "" || link == "#" {
		return Article{}, false
	}

	date := "Unknown date"
	var summary *string
	if meta := s.Find("div.entry-content p").First(); meta.Length() > 0 {
		parts := strings.SplitN(meta.Text(), "|", 2)
		date = strings.TrimSpace(parts[0])
		if len(parts) > 1 {
			if text := strings.TrimSpace(parts[1]); text != "" {
				summary = &text
			}
		}
	}

	categories := []string{}
	s.Find("a[rel='category tag']").Each(func(_ int, c *goquery.Selection) {
		if tag := strings.TrimSpace(c.Text()); tag != "" {
			categories = append(categories, tag)
		}
	})

	var imageURL *string
	if img := s.Find("img").First(); img.Length() > 0 {
		if src, ok := img.Attr("data-src"); ok && src != "" {
			imageURL = &src
		} else if src, ok := img.Attr("src"); ok && src != "" {
			imageURL = &src
		}
	}

	return Article{
		Title:       title,
		Link:        link,
		Date:        date,
		Summary:     summary,
		FullContent: ContentNotFound,
		Categories:  categories,
		ImageURL:    imageURL,
		Source:      SourceInvestopaper,
	}, true
}

// FetchDetail retrieves the article body from the entry-content container.
// The listing already carries the date, so none is returned.
func (x *InvestopaperExtractor) FetchDetail(link string) (string, string) {
	html, err := fetchHTML(link)
	if err != nil {
		log.Printf("investopaper: fetch article %s: %v", link, err)
		return ContentError, ""
	}
	doc, err := parseHTML(html)
	if err != nil {
		log.Printf("investopaper: parse article %s: %v", link, err)
		return ContentError, ""
	}
	container := doc.Find("div.entry-content").First()
	if container.Length() == 0 {
		return ContentNotFound, ""
	}
	return cleanArticleBody(container), ""
}

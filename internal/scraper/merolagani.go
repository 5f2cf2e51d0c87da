package scraper

import (
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	meroLaganiCompanyURL = "https://merolagani.com/CompanyDetail.aspx?symbol=%s"
	meroLaganiNewsTab    = "a#ctl00_ContentPlaceHolder1_CompanyDetail1_lnkTabNews"
	meroLaganiNewsPanel  = "div#ctl00_ContentPlaceHolder1_CompanyDetail1_divNews"
	meroLaganiBodyMarker = "div#ctl00_ContentPlaceHolder1_NewsDetail1_divContent"
)

// MeroLaganiExtractor reads the news table on a MeroLagani company page.
// The table sits behind the "News" tab of an ASP.NET page, so the extractor
// navigates, clicks the tab and reads the rendered table. The table is the
// only date this source has: article pages carry no usable date element.
type MeroLaganiExtractor struct {
	session *Session
}

func NewMeroLaganiExtractor(s *Session) *MeroLaganiExtractor {
	return &MeroLaganiExtractor{session: s}
}

func (x *MeroLaganiExtractor) Name() string { return SourceMeroLagani }

func (x *MeroLaganiExtractor) ListArticles(symbol string) ([]Article, error) {
	companyURL := fmt.Sprintf(meroLaganiCompanyURL, url.QueryEscape(strings.ToUpper(symbol)))
	if err := x.session.Navigate(companyURL, meroLaganiNewsTab); err != nil {
		if isTimeout(err) {
			log.Printf("merolagani: company page has no news tab for %s", symbol)
			return nil, nil
		}
		return nil, err
	}
	if err := x.session.Click(meroLaganiNewsTab); err != nil {
		log.Printf("merolagani: reveal news tab for %s: %v", symbol, err)
		return nil, nil
	}
	html, err := x.session.HTML()
	if err != nil {
		return nil, err
	}
	return parseMeroLaganiListing(html), nil
}

// parseMeroLaganiListing walks the news table rows: first cell the date,
// second cell the linked headline. Rows missing the link are skipped.
func parseMeroLaganiListing(html string) []Article {
	doc, err := parseHTML(html)
	if err != nil {
		return nil
	}

	var out []Article
	doc.Find(meroLaganiNewsPanel + " table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}
		linkSel := cells.Eq(1).Find("a").First()
		link, _ := linkSel.Attr("href")
		link = strings.TrimSpace(link)
		if link == "" {
			return
		}
		if strings.HasPrefix(link, "/") {
			link = "https://merolagani.com" + link
		}
		title := strings.TrimSpace(linkSel.Text())
		if title == "" {
			title = "No title"
		}
		date := strings.TrimSpace(cells.Eq(0).Text())
		if date == "" {
			date = "Unknown date"
		}
		out = append(out, Article{
			Title:       title,
			Link:        link,
			Date:        date,
			FullContent: ContentNotFound,
			Categories:  []string{},
			Source:      SourceMeroLagani,
		})
	})
	return out
}

// FetchDetail renders the article page. The date always comes from the
// listing table, so none is returned.
func (x *MeroLaganiExtractor) FetchDetail(link string) (string, string) {
	if err := x.session.Navigate(link, meroLaganiBodyMarker); err != nil {
		if isTimeout(err) {
			log.Printf("merolagani: render timeout for %s", link)
			return ContentTimeout, ""
		}
		log.Printf("merolagani: fetch article %s: %v", link, err)
		return ContentError, ""
	}
	html, err := x.session.HTML()
	if err != nil {
		log.Printf("merolagani: read article %s: %v", link, err)
		return ContentError, ""
	}
	doc, err := parseHTML(html)
	if err != nil {
		return ContentError, ""
	}
	container := doc.Find(meroLaganiBodyMarker).First()
	if container.Length() == 0 {
		return ContentNotFound, ""
	}
	return cleanArticleBody(container), ""
}

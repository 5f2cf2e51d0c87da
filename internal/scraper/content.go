package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Paragraphs starting with these are licensing/attribution boilerplate, not
// article text.
var boilerplatePrefixes = []string{"©", "Â©", "License:", "Author:"}

func isBoilerplate(text string) bool {
	for _, p := range boilerplatePrefixes {
		if strings.HasPrefix(text, p) {
			return true
		}
	}
	return false
}

// cleanArticleBody turns an article's content container into plain text.
// The shared cleanup rules: drop the trailing "Recommended" cross-link
// block, strip non-content elements and social-share widgets, skip
// boilerplate paragraphs, then join the remaining paragraph/heading blocks
// with blank lines. No extractable text yields the no-content sentinel.
func cleanArticleBody(container *goquery.Selection) string {
	dropRecommendedBlock(container)

	container.Find("div, script, style, aside, pre, hr").Remove()
	container.Find(".sfsiaftrpstwpr, .sfsi_responsive_icons, .sharedaddy, .social-share").Remove()

	var blocks []string
	container.Find("p, h2, h3").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text == "" || isBoilerplate(text) {
			return
		}
		blocks = append(blocks, text)
	})

	if len(blocks) == 0 {
		return ContentNoText
	}
	return strings.Join(blocks, "\n\n")
}

// dropRecommendedBlock locates the "Recommended" marker paragraph and
// removes it together with every following sibling up to the <hr> divider.
func dropRecommendedBlock(container *goquery.Selection) {
	container.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		if p.Find("strong").Length() == 0 || !strings.Contains(p.Text(), "Recommended") {
			return true
		}
		var doomed []*goquery.Selection
		for sib := p.Next(); sib.Length() > 0; sib = sib.Next() {
			if goquery.NodeName(sib) == "hr" {
				break
			}
			doomed = append(doomed, sib)
		}
		for _, s := range doomed {
			s.Remove()
		}
		p.Remove()
		return false
	})
}

// parseHTML is a small wrapper shared by the extractors; a document that
// cannot even be tokenized counts as absent markup.
func parseHTML(html string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(html))
}

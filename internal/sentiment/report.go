package sentiment

import (
	"fmt"
	"strings"
)

// Summary aggregates one symbol's scored articles.
type Summary struct {
	Total    int     `json:"total"`
	Positive int     `json:"positive"`
	Negative int     `json:"negative"`
	Neutral  int     `json:"neutral"`
	AvgScore float64 `json:"avgScore"`
}

func Summarize(items []ScoredArticle) Summary {
	s := Summary{Total: len(items)}
	if len(items) == 0 {
		return s
	}
	sum := 0
	for _, it := range items {
		switch it.Sentiment {
		case "Positive":
			s.Positive++
		case "Negative":
			s.Negative++
		default:
			s.Neutral++
		}
		sum += it.Score
	}
	s.AvgScore = float64(sum) / float64(len(items))
	return s
}

// Report renders the human-readable sentiment report for a symbol.
func Report(symbol string, items []ScoredArticle) string {
	if len(items) == 0 {
		return fmt.Sprintf("No news analyzed for %s", symbol)
	}
	s := Summarize(items)

	lines := []string{
		fmt.Sprintf("Sentiment Analysis Report for %s", strings.ToUpper(symbol)),
		strings.Repeat("=", 40),
		fmt.Sprintf("Total News Analyzed: %d", s.Total),
		fmt.Sprintf("Positive Sentiment: %d", s.Positive),
		fmt.Sprintf("Negative Sentiment: %d", s.Negative),
		fmt.Sprintf("Neutral Sentiment: %d", s.Neutral),
		fmt.Sprintf("Average Sentiment Score: %.2f", s.AvgScore),
		"",
		"Detailed Analysis:",
		strings.Repeat("-", 40),
	}

	for _, it := range items {
		lines = append(lines,
			fmt.Sprintf("Title: %s", it.Title),
			fmt.Sprintf("Source: %s", it.Source),
			fmt.Sprintf("Sentiment: %s", it.Sentiment),
			fmt.Sprintf("Score: %d", it.Score),
			fmt.Sprintf("Link: %s", it.Link),
			strings.Repeat("-", 20),
		)
	}

	return strings.Join(lines, "\n")
}

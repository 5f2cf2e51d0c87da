package sentiment

import (
	"strings"
	"testing"
)

func TestSummarize(t *testing.T) {
	items := []ScoredArticle{
		{Sentiment: "Positive", Score: 8},
		{Sentiment: "Positive", Score: 6},
		{Sentiment: "Negative", Score: -4},
		{Sentiment: "Neutral", Score: 0},
	}
	s := Summarize(items)
	if s.Total != 4 || s.Positive != 2 || s.Negative != 1 || s.Neutral != 1 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if s.AvgScore != 2.5 {
		t.Fatalf("AvgScore = %v, want 2.5", s.AvgScore)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Total != 0 || s.AvgScore != 0 {
		t.Fatalf("empty input should zero out: %+v", s)
	}
}

func TestReportContainsHeadlinesAndCounts(t *testing.T) {
	items := []ScoredArticle{
		{Title: "Nabil Q4 profit up", Source: "Investopaper", Sentiment: "Positive", Score: 7, Link: "https://x/1"},
		{Title: "Regulator fines broker", Source: "ShareSansar", Sentiment: "Negative", Score: -5, Link: "https://x/2"},
	}
	report := Report("nabil", items)

	for _, want := range []string{
		"Sentiment Analysis Report for NABIL",
		"Total News Analyzed: 2",
		"Positive Sentiment: 1",
		"Negative Sentiment: 1",
		"Detailed Analysis:",
		"Title: Nabil Q4 profit up",
		"Title: Regulator fines broker",
		"Link: https://x/2",
	} {
		if !strings.Contains(report, want) {
			t.Fatalf("report missing %q:\n%s", want, report)
		}
	}
}

func TestReportEmpty(t *testing.T) {
	if got := Report("NABIL", nil); got != "No news analyzed for NABIL" {
		t.Fatalf("unexpected empty report: %q", got)
	}
}

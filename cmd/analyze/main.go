package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/nepsetools/NepsePulse/internal/config"
	"github.com/nepsetools/NepsePulse/internal/sentiment"
	"github.com/nepsetools/NepsePulse/internal/storage"
)

// Scores a previously scraped symbol's news against the local Ollama model
// and prints either a summary or, with -report, the full report (also saved
// next to the working directory as <symbol>_sentiment_report.txt).
func main() {
	report := flag.Bool("report", false, "generate and save a detailed report")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: analyze [-report] <SYMBOL>")
		os.Exit(2)
	}
	symbol := flag.Arg(0)

	cfg := config.Load()
	files := storage.NewFileStore(cfg.DataDir)
	analyzer := sentiment.New(cfg.OllamaHost, cfg.OllamaModel)

	doc, err := files.ReadSymbolNews(symbol)
	if errors.Is(err, storage.ErrNotFound) {
		log.Fatalf("no news data found for %s, run scrape first", symbol)
	}
	if err != nil {
		log.Fatalf("read news for %s: %v", symbol, err)
	}

	items := analyzer.AnalyzeNews(context.Background(), doc)
	if len(items) == 0 {
		fmt.Printf("No news analyzed for %s\n", symbol)
		return
	}

	if *report {
		text := sentiment.Report(symbol, items)
		fmt.Println(text)

		name := strings.ToLower(symbol) + "_sentiment_report.txt"
		if err := os.WriteFile(name, []byte(text), 0o644); err != nil {
			log.Fatalf("save report: %v", err)
		}
		return
	}

	s := sentiment.Summarize(items)
	fmt.Printf("Sentiment Analysis Summary for %s:\n", strings.ToUpper(symbol))
	fmt.Printf("Positive: %d | Negative: %d | Neutral: %d\n", s.Positive, s.Negative, s.Neutral)
	fmt.Printf("Average Sentiment Score: %.2f\n", s.AvgScore)
}

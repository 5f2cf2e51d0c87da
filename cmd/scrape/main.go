package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/nepsetools/NepsePulse/internal/config"
	"github.com/nepsetools/NepsePulse/internal/scraper"
	"github.com/nepsetools/NepsePulse/internal/storage"
)

// One-shot scrape for a single symbol: runs the full pipeline and writes
// the symbol's news document. Needs no database, only the data directory.
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: scrape <SYMBOL>")
		os.Exit(2)
	}
	symbol := os.Args[1]

	cfg := config.Load()
	files := storage.NewFileStore(cfg.DataDir)
	pipeline := scraper.NewPipeline(files)

	count, err := pipeline.RunCount(symbol)
	if err != nil {
		log.Fatalf("scrape %s failed: %v", symbol, err)
	}
	fmt.Printf("Scraped %d news items for %s\n", count, strings.ToUpper(symbol))
}

package scheduler

import (
	"errors"
	"log"
	"time"

	"github.com/nepsetools/NepsePulse/internal/scraper"
	"github.com/nepsetools/NepsePulse/internal/storage"
	"github.com/robfig/cron/v3"
)

// Scheduler re-scrapes every watched symbol on a cron spec. Symbols run
// strictly one after another: each pipeline run owns a browser session and
// paces its requests, so overlapping runs would only multiply load on the
// source sites.
type Scheduler struct {
	cron     *cron.Cron
	pipeline *scraper.Pipeline
	store    *storage.Store
}

func New(spec string, pipeline *scraper.Pipeline, store *storage.Store) (*Scheduler, error) {
	c := cron.New()
	s := &Scheduler{cron: c, pipeline: pipeline, store: store}
	if _, err := c.AddFunc(spec, s.runOnce); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	// First round runs shortly after startup instead of waiting a full
	// cron interval.
	const startupDelay = 15 * time.Second
	time.AfterFunc(startupDelay, func() {
		go s.runOnce()
	})
}

// RunOnce exposes a single round for manual triggering.
func (s *Scheduler) RunOnce() {
	s.runOnce()
}

func (s *Scheduler) runOnce() {
	symbols, err := s.store.ListSymbols()
	if err != nil {
		log.Printf("scheduler: list watchlist: %v", err)
		return
	}
	if len(symbols) == 0 {
		log.Println("scheduler: watchlist empty, nothing to scrape")
		return
	}

	log.Printf("start scrape round for %d symbols...", len(symbols))
	for _, symbol := range symbols {
		news, err := s.pipeline.Run(symbol)
		if err != nil {
			if errors.Is(err, scraper.ErrBrowserStart) {
				// No browser means no symbol in this round can succeed.
				log.Printf("scheduler: abort round: %v", err)
				return
			}
			log.Printf("scheduler: scrape %s error: %v", symbol, err)
			continue
		}
		if err := s.store.ArchiveRun(symbol, news); err != nil {
			log.Printf("scheduler: archive %s error: %v", symbol, err)
			continue
		}
		log.Printf("scheduler: %s done, %d items", symbol, len(news))
	}
	log.Println("scrape round done (all symbols)")
}

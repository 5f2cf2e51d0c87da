package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/nepsetools/NepsePulse/internal/api"
	"github.com/nepsetools/NepsePulse/internal/config"
	"github.com/nepsetools/NepsePulse/internal/scheduler"
	"github.com/nepsetools/NepsePulse/internal/scraper"
	"github.com/nepsetools/NepsePulse/internal/sentiment"
	"github.com/nepsetools/NepsePulse/internal/storage"
)

// Service mode: HTTP API plus a cron scheduler that keeps the watchlist's
// news documents and the article archive fresh.
func main() {
	cfg := config.Load()

	store, err := storage.NewStore(cfg.PostgresDSN, cfg.RedisAddr)
	if err != nil {
		log.Fatalf("init store failed: %v", err)
	}

	files := storage.NewFileStore(cfg.DataDir)
	pipeline := scraper.NewPipeline(files)
	analyzer := sentiment.New(cfg.OllamaHost, cfg.OllamaModel)

	s, err := scheduler.New(cfg.CronSpec, pipeline, store)
	if err != nil {
		log.Fatalf("init scheduler failed: %v", err)
	}
	s.Start()

	r := gin.Default()
	apiServer := api.NewServer(store, files, pipeline, analyzer)
	apiServer.RegisterRoutes(r)

	addr := ":" + cfg.AppPort
	log.Printf("starting api server at %s ...", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exit: %v", err)
	}
}

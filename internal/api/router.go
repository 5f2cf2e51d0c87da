package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nepsetools/NepsePulse/internal/scraper"
	"github.com/nepsetools/NepsePulse/internal/sentiment"
	"github.com/nepsetools/NepsePulse/internal/storage"
)

type Server struct {
	store    *storage.Store
	files    *storage.FileStore
	pipeline *scraper.Pipeline
	analyzer *sentiment.Analyzer
}

func NewServer(store *storage.Store, files *storage.FileStore, pipeline *scraper.Pipeline, analyzer *sentiment.Analyzer) *Server {
	return &Server{store: store, files: files, pipeline: pipeline, analyzer: analyzer}
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", s.health)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/news/:symbol", s.symbolNews)
		v1.POST("/scrape/:symbol", s.scrape)
		v1.GET("/sentiment/:symbol", s.symbolSentiment)
		v1.GET("/archive", s.archive)
		v1.GET("/watchlist", s.listWatchlist)
		v1.POST("/watchlist/:symbol", s.addWatch)
		v1.DELETE("/watchlist/:symbol", s.removeWatch)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) symbolNews(c *gin.Context) {
	symbol := c.Param("symbol")
	doc, err := s.store.SymbolDocument(s.files, symbol)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"code": "not_found", "message": "no news scraped for symbol"})
		return
	}
	if err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": "ok", "message": "success", "data": doc})
}

// scrape runs the full pipeline synchronously; a run takes minutes because
// of the per-article pacing, so callers are expected to be operators, not
// end users.
func (s *Server) scrape(c *gin.Context) {
	symbol := c.Param("symbol")
	news, err := s.pipeline.Run(symbol)
	if err != nil {
		if errors.Is(err, scraper.ErrBrowserStart) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"code": "browser_unavailable", "message": err.Error()})
			return
		}
		internalError(c)
		return
	}
	if err := s.store.ArchiveRun(symbol, news); err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": "ok", "message": "success", "data": gin.H{"symbol": symbol, "count": len(news)}})
}

func (s *Server) symbolSentiment(c *gin.Context) {
	symbol := c.Param("symbol")
	doc, err := s.store.SymbolDocument(s.files, symbol)
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"code": "not_found", "message": "no news scraped for symbol"})
		return
	}
	if err != nil {
		internalError(c)
		return
	}

	items := s.analyzer.AnalyzeNews(c.Request.Context(), doc)
	c.JSON(http.StatusOK, gin.H{"code": "ok", "message": "success", "data": gin.H{
		"symbol":   doc.Symbol,
		"summary":  sentiment.Summarize(items),
		"articles": items,
	}})
}

func (s *Server) archive(c *gin.Context) {
	symbol := c.Query("symbol")
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 {
		limit = 50
	}
	items, err := s.store.ListArchive(symbol, limit)
	if err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": "ok", "message": "success", "data": items})
}

func (s *Server) listWatchlist(c *gin.Context) {
	symbols, err := s.store.ListSymbols()
	if err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": "ok", "message": "success", "data": symbols})
}

func (s *Server) addWatch(c *gin.Context) {
	if err := s.store.AddSymbol(c.Param("symbol")); err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": "ok", "message": "success"})
}

func (s *Server) removeWatch(c *gin.Context) {
	if err := s.store.RemoveSymbol(c.Param("symbol")); err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": "ok", "message": "success"})
}

func internalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"code":    "internal_error",
		"message": "internal server error",
	})
}

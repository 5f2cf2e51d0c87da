package storage

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/nepsetools/NepsePulse/internal/scraper"
	"github.com/redis/go-redis/v9"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// WatchedSymbol is a symbol the scheduler re-scrapes on every tick.
type WatchedSymbol struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Symbol string `gorm:"size:16;uniqueIndex" json:"symbol"`

	CreatedAt time.Time `json:"createdAt"`
}

// ArchivedArticle is the cross-run archive row for one article. The archive
// is additive history keyed by link; it never feeds back into the canonical
// per-symbol JSON document, which is replaced wholesale on each run.
type ArchivedArticle struct {
	ID          string         `gorm:"primaryKey;size:40" json:"id"` // sha1 of the link
	Symbol      string         `gorm:"size:16;index" json:"symbol"`
	Title       string         `gorm:"size:512" json:"title"`
	Link        string         `gorm:"size:1024;uniqueIndex" json:"link"`
	Source      string         `gorm:"size:32;index" json:"source"`
	Date        string         `gorm:"size:128" json:"date"`
	Summary     string         `gorm:"size:600" json:"summary"`
	FullContent string         `gorm:"type:text" json:"fullContent"`
	Categories  datatypes.JSON `gorm:"type:jsonb" json:"categories"`
	ImageURL    string         `gorm:"size:1024" json:"imageUrl"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Store is the service-mode persistence: postgres for the archive and
// watchlist, redis for short-TTL read caching. The scrape CLI never needs
// it; the canonical document contract lives in FileStore.
type Store struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewStore(dsn, redisAddr string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&WatchedSymbol{}, &ArchivedArticle{}); err != nil {
		return nil, err
	}

	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("warn: redis ping failed: %v", err)
	}

	return &Store{DB: db, Redis: rdb}, nil
}

// AddSymbol puts a symbol on the watchlist, uppercased.
func (s *Store) AddSymbol(symbol string) error {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return fmt.Errorf("empty symbol")
	}
	w := &WatchedSymbol{Symbol: symbol}
	return s.DB.Where("symbol = ?", symbol).FirstOrCreate(w).Error
}

func (s *Store) RemoveSymbol(symbol string) error {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	return s.DB.Where("symbol = ?", symbol).Delete(&WatchedSymbol{}).Error
}

// ListSymbols returns the watchlist in insertion order.
func (s *Store) ListSymbols() ([]string, error) {
	var rows []WatchedSymbol
	if err := s.DB.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Symbol)
	}
	return out, nil
}

// ArchiveRun upserts one run's articles with the link as idempotent key, so
// re-scraping the same symbol updates rows instead of duplicating them.
func (s *Store) ArchiveRun(symbol string, news []scraper.Article) error {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	for _, a := range news {
		summary := ""
		if a.Summary != nil {
			summary = *a.Summary
		}
		imageURL := ""
		if a.ImageURL != nil {
			imageURL = *a.ImageURL
		}
		cats, err := json.Marshal(a.Categories)
		if err != nil {
			cats = []byte("[]")
		}

		rec := &ArchivedArticle{
			ID:          hashLink(a.Link),
			Symbol:      symbol,
			Title:       truncateRunes(toValidUTF8(a.Title), 512),
			Link:        a.Link,
			Source:      a.Source,
			Date:        truncateRunes(a.Date, 128),
			Summary:     truncateRunes(toValidUTF8(summary), 600),
			FullContent: toValidUTF8(a.FullContent),
			Categories:  datatypes.JSON(cats),
			ImageURL:    imageURL,
		}

		if err := s.DB.Where("link = ?", a.Link).FirstOrCreate(rec).Error; err != nil {
			return err
		}
		_ = s.DB.Model(rec).Updates(map[string]any{
			"title":        rec.Title,
			"date":         rec.Date,
			"summary":      rec.Summary,
			"full_content": rec.FullContent,
			"categories":   rec.Categories,
			"image_url":    rec.ImageURL,
		}).Error
	}
	return nil
}

const cacheTTL = 5 * time.Minute

// ListArchive returns recent archived articles, optionally for one symbol,
// with a short redis cache in front of the DB.
func (s *Store) ListArchive(symbol string, limit int) ([]ArchivedArticle, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	ctx := context.Background()
	cacheKey := fmt.Sprintf("archive:list:%s:%d", symbol, limit)
	if s.Redis != nil {
		if bs, err := s.Redis.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached []ArchivedArticle
			if err := json.Unmarshal(bs, &cached); err == nil {
				return cached, nil
			}
		}
	}

	var list []ArchivedArticle
	db := s.DB.Model(&ArchivedArticle{})
	if symbol != "" {
		db = db.Where("symbol = ?", symbol)
	}
	if err := db.Order("updated_at DESC").Limit(limit).Find(&list).Error; err != nil {
		return nil, err
	}

	if s.Redis != nil && len(list) > 0 {
		if bs, err := json.Marshal(list); err == nil {
			_ = s.Redis.Set(ctx, cacheKey, bs, cacheTTL).Err()
		}
	}
	return list, nil
}

// SymbolDocument reads the canonical per-symbol document through a short
// redis cache; a fresh scrape ages out of the cache within the TTL.
func (s *Store) SymbolDocument(fs *FileStore, symbol string) (scraper.SymbolNews, error) {
	ctx := context.Background()
	cacheKey := "news:doc:" + strings.ToLower(symbol)

	if s.Redis != nil {
		if bs, err := s.Redis.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached scraper.SymbolNews
			if err := json.Unmarshal(bs, &cached); err == nil {
				return cached, nil
			}
		}
	}

	doc, err := fs.ReadSymbolNews(symbol)
	if err != nil {
		return scraper.SymbolNews{}, err
	}

	if s.Redis != nil {
		if bs, err := json.Marshal(doc); err == nil {
			_ = s.Redis.Set(ctx, cacheKey, bs, cacheTTL).Err()
		}
	}
	return doc, nil
}

func hashLink(link string) string {
	h := sha1.New()
	h.Write([]byte(link))
	return hex.EncodeToString(h.Sum(nil))
}

// toValidUTF8 normalizes scraped text before it reaches postgres; the
// sources occasionally emit broken byte sequences.
func toValidUTF8(s string) string {
	return strings.ToValidUTF8(s, "�")
}

// truncateRunes caps a string at limit runes so varchar columns never
// overflow on pathological source output.
func truncateRunes(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	s = strings.TrimSpace(s)
	rs := []rune(s)
	if len(rs) <= limit {
		return s
	}
	return string(rs[:limit])
}

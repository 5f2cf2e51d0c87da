package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/nepsetools/NepsePulse/internal/scraper"
)

// ErrNotFound is returned when no document has ever been written for a
// symbol.
var ErrNotFound = errors.New("no news document for symbol")

// FileStore keeps one JSON document per symbol under Dir, named
// <symbol lowercased>_news.json. One writer per symbol per run, single
// process, so no locking.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = "data"
	}
	return &FileStore{Dir: dir}
}

func (fs *FileStore) path(symbol string) string {
	return filepath.Join(fs.Dir, strings.ToLower(symbol)+"_news.json")
}

// WriteSymbolNews serializes and fully replaces the symbol's document,
// creating the data directory on first use. Output is indented with raw
// Unicode preserved; the symbol inside the document keeps the caller's
// casing, only the filename is lowercased.
func (fs *FileStore) WriteSymbolNews(doc scraper.SymbolNews) error {
	if err := os.MkdirAll(fs.Dir, 0o755); err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return os.WriteFile(fs.path(doc.Symbol), buf.Bytes(), 0o644)
}

// ReadSymbolNews loads the symbol's document, or ErrNotFound.
func (fs *FileStore) ReadSymbolNews(symbol string) (scraper.SymbolNews, error) {
	raw, err := os.ReadFile(fs.path(symbol))
	if errors.Is(err, os.ErrNotExist) {
		return scraper.SymbolNews{}, ErrNotFound
	}
	if err != nil {
		return scraper.SymbolNews{}, err
	}

	var doc scraper.SymbolNews
	if err := json.Unmarshal(raw, &doc); err != nil {
		return scraper.SymbolNews{}, err
	}
	return doc, nil
}

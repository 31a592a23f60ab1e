package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"TickerScope/internal/model"
)

// Store persists one price series per (symbol, period) identity as a JSON
// file under Dir. It is deliberately forgiving: a missing, corrupt, or
// malformed entry reads as absent, and a failed write is reported but must
// never stop the caller — caching is an optimization, not a requirement.
type Store struct {
	Dir string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

// entry is the on-disk record shape.
type entry struct {
	FetchedAt time.Time   `json:"fetched_at"`
	Bars      []model.Bar `json:"bars"`
}

// Path returns the cache file path for a symbol and period.
// The symbol is case-normalized; the period string is part of the identity.
func (s *Store) Path(symbol, period string) string {
	return filepath.Join(s.Dir, fmt.Sprintf("%s_%s.json", strings.ToUpper(symbol), period))
}

// Read returns the cached series for the identity, or ok=false if no usable
// entry exists. Deserialization failures are treated the same as a missing
// file so a corrupted cache only costs a refetch.
func (s *Store) Read(symbol, period string) ([]model.Bar, bool) {
	data, err := os.ReadFile(s.Path(symbol, period))
	if err != nil {
		return nil, false
	}
	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, false
	}
	if len(e.Bars) == 0 {
		return nil, false
	}
	return e.Bars, true
}

// Write replaces the entry for the identity with the given series and a fresh
// timestamp. The file is written to a temp name and renamed so a concurrent
// reader in the same filesystem never parses a half-written entry.
func (s *Store) Write(symbol, period string, bars []model.Bar) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	data, err := json.Marshal(entry{FetchedAt: time.Now(), Bars: bars})
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}

	path := s.Path(symbol, period)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace cache entry: %w", err)
	}
	return nil
}

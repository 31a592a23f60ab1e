package collector

import (
	"fmt"
	"log"
	"sort"

	"TickerScope/internal/cache"
	"TickerScope/internal/model"
	"TickerScope/internal/provider"
)

// NoDataError reports that the provider had no history for a symbol.
type NoDataError struct {
	Symbol string
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("No data found for ticker %s", e.Symbol)
}

// Collector coordinates the cache store and the data provider: it fetches
// only the range the cache does not already hold and keeps the cache current.
type Collector struct {
	Provider provider.Provider
	Cache    *cache.Store
}

// New creates a new Collector.
func New(p provider.Provider, c *cache.Store) *Collector {
	return &Collector{Provider: p, Cache: c}
}

// Refresh returns the up-to-date daily series for (symbol, period).
//
// Cold path: nothing cached, so the full period is fetched. Warm path: only
// the range strictly after the last cached date is fetched and merged in,
// with freshly fetched bars winning any date collision.
func (c *Collector) Refresh(symbol, period string) ([]model.Bar, error) {
	cached, ok := c.Cache.Read(symbol, period)
	if !ok {
		bars, err := c.Provider.FetchFull(symbol, period)
		if err != nil {
			return nil, fmt.Errorf("fetch full history: %w", err)
		}
		if len(bars) == 0 {
			return nil, &NoDataError{Symbol: symbol}
		}
		c.writeBack(symbol, period, bars)
		return bars, nil
	}

	start := model.LastDate(cached).AddDate(0, 0, 1)
	fresh, err := c.Provider.FetchSince(symbol, start)
	if err != nil {
		return nil, fmt.Errorf("fetch history since %s: %w", start.Format(model.DateLayout), err)
	}
	if len(fresh) == 0 {
		return cached, nil // nothing new, no write
	}

	merged := Merge(cached, fresh)
	c.writeBack(symbol, period, merged)
	if len(merged) == 0 {
		return nil, &NoDataError{Symbol: symbol}
	}
	return merged, nil
}

// writeBack persists the series best-effort. A cache failure must never stop
// an analysis that already has fresh data in hand.
func (c *Collector) writeBack(symbol, period string, bars []model.Bar) {
	if err := c.Cache.Write(symbol, period, bars); err != nil {
		log.Printf("[WARN] cache write %s/%s: %v", symbol, period, err)
	}
}

// Merge combines cached and freshly fetched bars into one series with unique,
// ascending dates. On a date collision the fresh bar wins: the provider's
// latest view of a day supersedes the cached one (same-day revisions).
func Merge(cached, fresh []model.Bar) []model.Bar {
	revised := make(map[string]bool, len(fresh))
	for _, b := range fresh {
		revised[b.Day()] = true
	}

	merged := make([]model.Bar, 0, len(cached)+len(fresh))
	for _, b := range cached {
		if !revised[b.Day()] {
			merged = append(merged, b)
		}
	}
	merged = append(merged, fresh...)

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.Before(merged[j].Date)
	})
	return merged
}

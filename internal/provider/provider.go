package provider

import (
	"time"

	"TickerScope/internal/model"
)

// Provider defines the interface to an external market-data source.
// Both operations return a possibly-empty series ordered by ascending date.
type Provider interface {
	// FetchFull returns the full daily history for the given period.
	FetchFull(symbol, period string) ([]model.Bar, error)
	// FetchSince returns all daily bars dated on or after start.
	FetchSince(symbol string, start time.Time) ([]model.Bar, error)
	Name() string
}

// validPeriods are the period strings the data source understands.
var validPeriods = map[string]bool{
	"1d": true, "5d": true, "1mo": true, "3mo": true, "6mo": true,
	"1y": true, "2y": true, "5y": true, "10y": true, "ytd": true, "max": true,
}

// ValidPeriod reports whether period is an accepted history range.
func ValidPeriod(period string) bool {
	return validPeriods[period]
}

package model

import "time"

// DateLayout is the calendar-day format used for bar identity.
const DateLayout = "2006-01-02"

// Bar represents a single daily candlestick bar.
type Bar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// Day returns the bar's calendar day, which identifies the bar within a series.
func (b Bar) Day() string { return b.Date.Format(DateLayout) }

// Closes extracts the closing-price sequence from bars.
func Closes(bars []Bar) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}

// LastDate returns the date of the most recent bar.
func LastDate(bars []Bar) time.Time {
	return bars[len(bars)-1].Date
}

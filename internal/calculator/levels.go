package calculator

import (
	"sort"

	"TickerScope/internal/model"
)

// HighestHighs returns up to n of the largest high prices among the most
// recent window bars, sorted descending. Ties keep their natural order.
func HighestHighs(bars []model.Bar, window, n int) []float64 {
	highs := tailValues(bars, window, func(b model.Bar) float64 { return b.High })
	sort.Sort(sort.Reverse(sort.Float64Slice(highs)))
	return truncate(highs, n)
}

// LowestLows returns up to n of the smallest low prices among the most recent
// window bars, sorted ascending.
func LowestLows(bars []model.Bar, window, n int) []float64 {
	lows := tailValues(bars, window, func(b model.Bar) float64 { return b.Low })
	sort.Float64s(lows)
	return truncate(lows, n)
}

func tailValues(bars []model.Bar, window int, pick func(model.Bar) float64) []float64 {
	start := len(bars) - window
	if start < 0 {
		start = 0
	}
	vals := make([]float64, 0, len(bars)-start)
	for _, b := range bars[start:] {
		vals = append(vals, pick(b))
	}
	return vals
}

func truncate(vals []float64, n int) []float64 {
	if len(vals) > n {
		return vals[:n]
	}
	return vals
}

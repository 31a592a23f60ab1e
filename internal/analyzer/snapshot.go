package analyzer

import (
	"math"
	"strings"
	"time"

	"TickerScope/internal/calculator"
	"TickerScope/internal/model"
)

// synthesize assembles the final snapshot from the working series and the
// latest indicator row.
func (a *Analyzer) synthesize(symbol string, bars []model.Bar, row model.IndicatorRow) *model.Snapshot {
	latest := bars[len(bars)-1]
	current := latest.Close

	prev := current // single-bar series: zero change
	if len(bars) > 1 {
		prev = bars[len(bars)-2].Close
	}
	change := current - prev
	changePct := change / prev * 100

	trend := model.TrendNeutral
	if !math.IsNaN(row.SMA50) && !math.IsNaN(row.SMA200) {
		switch {
		case current > row.SMA50 && current > row.SMA200:
			trend = model.TrendBullish
		case current < row.SMA50 && current < row.SMA200:
			trend = model.TrendBearish
		}
	}

	return &model.Snapshot{
		Ticker:           strings.ToUpper(symbol),
		CurrentPrice:     round(current, 2),
		PriceChange1D:    round(change, 2),
		PriceChangePct1D: round(changePct, 2),
		DayLabel:         dayLabel(latest.Date, a.Now()),
		Volume:           int64(latest.Volume),

		SMA20:  roundOrNil(row.SMA20, 2),
		SMA50:  roundOrNil(row.SMA50, 2),
		SMA200: roundOrNil(row.SMA200, 2),
		EMA8:   roundOrNil(row.EMA8, 2),
		EMA10:  roundOrNil(row.EMA10, 2),
		EMA21:  roundOrNil(row.EMA21, 2),
		RSI14:  roundOrNil(row.RSI14, 2),

		MACD:          roundOrNil(row.MACD, 4),
		MACDSignal:    roundOrNil(row.MACDSignal, 4),
		MACDHistogram: roundOrNil(row.MACDHist, 4),

		BBUpper:  roundOrNil(row.BBUpper, 2),
		BBMiddle: roundOrNil(row.BBMiddle, 2),
		BBLower:  roundOrNil(row.BBLower, 2),

		PriceVsSMA50:  position(current, row.SMA50),
		PriceVsSMA200: position(current, row.SMA200),
		Trend:         trend,

		SupportLevels:    roundAll(calculator.LowestLows(bars, a.SRWindow, a.SRLevels)),
		ResistanceLevels: roundAll(calculator.HighestHighs(bars, a.SRWindow, a.SRLevels)),
	}
}

// dayLabel names the most recent trading day: "today" when the latest bar is
// from the current calendar date, otherwise the English weekday name. A run
// on a weekend or after a holiday names the actual last trading day instead
// of implying same-day data.
func dayLabel(last, now time.Time) string {
	if last.Format(model.DateLayout) == now.Format(model.DateLayout) {
		return "today"
	}
	return last.Weekday().String()
}

func position(price, avg float64) string {
	if math.IsNaN(avg) {
		return model.PositionNA
	}
	if price > avg {
		return model.PositionAbove
	}
	return model.PositionBelow
}

func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// roundOrNil rounds a defined value; an undefined (NaN) value becomes nil so
// it is emitted as JSON null rather than a bogus number.
func roundOrNil(v float64, decimals int) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	r := round(v, decimals)
	return &r
}

func roundAll(vals []float64) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = round(v, 2)
	}
	return out
}

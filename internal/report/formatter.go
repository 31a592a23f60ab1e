package report

import (
	"fmt"
	"strings"

	"TickerScope/internal/model"
)

// FormatResult renders an analysis result as human-readable text.
func FormatResult(r *model.AnalysisResult) string {
	if r.Err != "" {
		return fmt.Sprintf("error: %s\n", r.Err)
	}
	return FormatSnapshot(r.Snapshot)
}

// FormatSnapshot renders one snapshot as a terminal report.
func FormatSnapshot(s *model.Snapshot) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %.2f  %+.2f (%+.2f%%)  [%s]\n",
		s.Ticker, s.CurrentPrice, s.PriceChange1D, s.PriceChangePct1D, s.DayLabel))
	b.WriteString(fmt.Sprintf("volume: %d | trend: %s | vs SMA50: %s | vs SMA200: %s\n\n",
		s.Volume, s.Trend, s.PriceVsSMA50, s.PriceVsSMA200))

	b.WriteString("moving averages:\n")
	b.WriteString(fmt.Sprintf("  SMA  20: %s  50: %s  200: %s\n",
		num(s.SMA20, 2), num(s.SMA50, 2), num(s.SMA200, 2)))
	b.WriteString(fmt.Sprintf("  EMA   8: %s  10: %s   21: %s\n\n",
		num(s.EMA8, 2), num(s.EMA10, 2), num(s.EMA21, 2)))

	b.WriteString("oscillators:\n")
	b.WriteString(fmt.Sprintf("  RSI(14): %s\n", num(s.RSI14, 2)))
	b.WriteString(fmt.Sprintf("  MACD: %s  signal: %s  histogram: %s\n\n",
		num(s.MACD, 4), num(s.MACDSignal, 4), num(s.MACDHistogram, 4)))

	b.WriteString("bollinger bands:\n")
	b.WriteString(fmt.Sprintf("  upper: %s  middle: %s  lower: %s\n\n",
		num(s.BBUpper, 2), num(s.BBMiddle, 2), num(s.BBLower, 2)))

	b.WriteString(fmt.Sprintf("resistance: %s\n", levels(s.ResistanceLevels)))
	b.WriteString(fmt.Sprintf("support:    %s\n", levels(s.SupportLevels)))

	return b.String()
}

func num(v *float64, decimals int) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.*f", decimals, *v)
}

func levels(vals []float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%.2f", v)
	}
	return strings.Join(parts, ", ")
}

package analyzer

import (
	"strings"
	"testing"
	"time"

	"TickerScope/internal/cache"
	"TickerScope/internal/collector"
	"TickerScope/internal/model"
	"TickerScope/internal/provider"
)

// series builds n daily bars ending at end, close moving by step per bar.
func series(n int, end time.Time, base, step float64) []model.Bar {
	bars := make([]model.Bar, n)
	for i := 0; i < n; i++ {
		c := base + float64(i)*step
		bars[i] = model.Bar{
			Date:   end.AddDate(0, 0, -(n - 1 - i)),
			Open:   c - 0.2,
			High:   c + 0.5,
			Low:    c - 0.5,
			Close:  c,
			Volume: 5000,
		}
	}
	return bars
}

func newTestAnalyzer(t *testing.T, bars []model.Bar) *Analyzer {
	t.Helper()
	mock := &provider.MockProvider{Bars: bars}
	if bars == nil {
		mock.Bars = []model.Bar{} // force an empty (not generated) cold fetch
	}
	col := collector.New(mock, cache.NewStore(t.TempDir()))
	return New(col, 0, 0)
}

var lastFriday = time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC)

func TestAnalyze_NoSymbol(t *testing.T) {
	an := newTestAnalyzer(t, series(10, lastFriday, 100, 1))
	res := an.Analyze("", "1y")
	if res.Err == "" {
		t.Fatal("expected error record for empty symbol")
	}
}

func TestAnalyze_InvalidPeriod(t *testing.T) {
	an := newTestAnalyzer(t, series(10, lastFriday, 100, 1))
	res := an.Analyze("AAPL", "14mo")
	if !strings.Contains(res.Err, "invalid period") {
		t.Fatalf("expected invalid-period error, got %q", res.Err)
	}
	if res.Snapshot != nil {
		t.Error("error record must not carry a snapshot")
	}
}

func TestAnalyze_NoData(t *testing.T) {
	an := newTestAnalyzer(t, nil)
	res := an.Analyze("XYZ", "1y")
	if res.Err != "No data found for ticker XYZ" {
		t.Fatalf("unexpected error record: %q", res.Err)
	}
}

func TestAnalyze_ShortSeriesNeutralTrend(t *testing.T) {
	an := newTestAnalyzer(t, series(60, lastFriday, 100, 1))
	res := an.Analyze("AAPL", "1y")
	if res.Err != "" {
		t.Fatalf("unexpected error: %s", res.Err)
	}
	snap := res.Snapshot
	if snap.SMA200 != nil {
		t.Errorf("expected null sma_200 for 60 bars, got %v", *snap.SMA200)
	}
	if snap.Trend != model.TrendNeutral {
		t.Errorf("trend = %q, want neutral when SMA-200 is undefined", snap.Trend)
	}
	if snap.PriceVsSMA200 != model.PositionNA {
		t.Errorf("price_vs_sma_200 = %q, want N/A", snap.PriceVsSMA200)
	}
	if snap.SMA50 == nil || snap.PriceVsSMA50 != model.PositionAbove {
		t.Errorf("expected defined sma_50 with price above it on a rising series")
	}
}

func TestAnalyze_BullishTrend(t *testing.T) {
	an := newTestAnalyzer(t, series(250, lastFriday, 100, 0.5))
	res := an.Analyze("AAPL", "1y")
	if res.Err != "" {
		t.Fatalf("unexpected error: %s", res.Err)
	}
	snap := res.Snapshot
	if snap.Trend != model.TrendBullish {
		t.Errorf("trend = %q, want bullish on a steadily rising 250-bar series", snap.Trend)
	}
	if snap.PriceVsSMA50 != model.PositionAbove || snap.PriceVsSMA200 != model.PositionAbove {
		t.Errorf("expected price above both averages, got %q / %q",
			snap.PriceVsSMA50, snap.PriceVsSMA200)
	}
}

func TestAnalyze_BearishTrend(t *testing.T) {
	an := newTestAnalyzer(t, series(250, lastFriday, 300, -0.5))
	res := an.Analyze("AAPL", "1y")
	if res.Err != "" {
		t.Fatalf("unexpected error: %s", res.Err)
	}
	if res.Snapshot.Trend != model.TrendBearish {
		t.Errorf("trend = %q, want bearish on a steadily falling series", res.Snapshot.Trend)
	}
}

func TestAnalyze_TickerUppercased(t *testing.T) {
	an := newTestAnalyzer(t, series(30, lastFriday, 100, 1))
	res := an.Analyze("aapl", "1y")
	if res.Err != "" {
		t.Fatalf("unexpected error: %s", res.Err)
	}
	if res.Snapshot.Ticker != "AAPL" {
		t.Errorf("ticker = %q, want AAPL", res.Snapshot.Ticker)
	}
}

func TestAnalyze_PriceChange(t *testing.T) {
	bars := series(30, lastFriday, 100, 0)
	bars[len(bars)-2].Close = 100
	bars[len(bars)-1].Close = 102.5
	an := newTestAnalyzer(t, bars)

	res := an.Analyze("AAPL", "1y")
	if res.Err != "" {
		t.Fatalf("unexpected error: %s", res.Err)
	}
	snap := res.Snapshot
	if snap.CurrentPrice != 102.5 {
		t.Errorf("current_price = %v, want 102.5", snap.CurrentPrice)
	}
	if snap.PriceChange1D != 2.5 {
		t.Errorf("price_change_1d = %v, want 2.5", snap.PriceChange1D)
	}
	if snap.PriceChangePct1D != 2.5 {
		t.Errorf("price_change_pct_1d = %v, want 2.5", snap.PriceChangePct1D)
	}
}

func TestAnalyze_SingleBarZeroChange(t *testing.T) {
	an := newTestAnalyzer(t, series(1, lastFriday, 100, 0))
	res := an.Analyze("AAPL", "1y")
	if res.Err != "" {
		t.Fatalf("unexpected error: %s", res.Err)
	}
	snap := res.Snapshot
	if snap.PriceChange1D != 0 || snap.PriceChangePct1D != 0 {
		t.Errorf("single-bar series must report zero change, got %v (%v%%)",
			snap.PriceChange1D, snap.PriceChangePct1D)
	}
	// EMAs seed from the only bar; window indicators stay null.
	if snap.EMA8 == nil || *snap.EMA8 != 100 {
		t.Errorf("ema_8 = %v, want 100", snap.EMA8)
	}
	if snap.SMA20 != nil || snap.RSI14 != nil {
		t.Error("expected null windowed indicators for a single bar")
	}
}

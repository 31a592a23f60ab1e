package analyzer

import (
	"fmt"
	"time"

	"TickerScope/internal/calculator"
	"TickerScope/internal/collector"
	"TickerScope/internal/model"
	"TickerScope/internal/provider"
)

// Default support/resistance parameters: scan the trailing 50 bars and report
// three levels on each side.
const (
	DefaultSRWindow = 50
	DefaultSRLevels = 3
)

// Analyzer runs the full analysis pipeline for one symbol at a time.
type Analyzer struct {
	Collector *collector.Collector
	SRWindow  int
	SRLevels  int
	Now       func() time.Time
}

// New creates an Analyzer. Non-positive support/resistance parameters fall
// back to the defaults.
func New(col *collector.Collector, srWindow, srLevels int) *Analyzer {
	if srWindow <= 0 {
		srWindow = DefaultSRWindow
	}
	if srLevels <= 0 {
		srLevels = DefaultSRLevels
	}
	return &Analyzer{
		Collector: col,
		SRWindow:  srWindow,
		SRLevels:  srLevels,
		Now:       time.Now,
	}
}

// Analyze refreshes the price series for (symbol, period), derives the
// indicator battery, and synthesizes the snapshot. It always returns a
// result record: every failure converges on the single error shape and no
// error value escapes.
func (a *Analyzer) Analyze(symbol, period string) *model.AnalysisResult {
	if symbol == "" {
		return model.ErrorResult("no ticker symbol provided")
	}
	if !provider.ValidPeriod(period) {
		return model.ErrorResult(fmt.Sprintf("invalid period %q (expected one of 1d 5d 1mo 3mo 6mo 1y 2y 5y 10y ytd max)", period))
	}

	bars, err := a.Collector.Refresh(symbol, period)
	if err != nil {
		return model.ErrorResult(err.Error())
	}

	series, err := calculator.ComputeAll(bars)
	if err != nil {
		return model.ErrorResult(err.Error())
	}

	return &model.AnalysisResult{
		Snapshot: a.synthesize(symbol, bars, series.Latest()),
	}
}

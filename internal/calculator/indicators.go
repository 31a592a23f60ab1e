package calculator

import (
	"fmt"

	"TickerScope/internal/model"
)

// Indicator parameters, matching the standard daily-chart battery.
const (
	SMAShort, SMAMid, SMALong = 20, 50, 200
	EMAFast, EMAShort, EMAMid = 8, 10, 21
	RSIPeriod                 = 14
	MACDFast, MACDSlow        = 12, 26
	MACDSignalSpan            = 9
	BollingerWindow           = 20
	BollingerWidth            = 2.0
)

// ComputeAll derives the full indicator battery over the closing prices of
// bars, one value per bar, with NaN where an indicator is undefined.
func ComputeAll(bars []model.Bar) (*model.IndicatorSeries, error) {
	closes := model.Closes(bars)
	s := &model.IndicatorSeries{}
	var err error

	if s.SMA20, err = SMASeries(closes, SMAShort); err != nil {
		return nil, fmt.Errorf("sma %d: %w", SMAShort, err)
	}
	if s.SMA50, err = SMASeries(closes, SMAMid); err != nil {
		return nil, fmt.Errorf("sma %d: %w", SMAMid, err)
	}
	if s.SMA200, err = SMASeries(closes, SMALong); err != nil {
		return nil, fmt.Errorf("sma %d: %w", SMALong, err)
	}

	if s.EMA8, err = EMASeries(closes, EMAFast); err != nil {
		return nil, fmt.Errorf("ema %d: %w", EMAFast, err)
	}
	if s.EMA10, err = EMASeries(closes, EMAShort); err != nil {
		return nil, fmt.Errorf("ema %d: %w", EMAShort, err)
	}
	if s.EMA21, err = EMASeries(closes, EMAMid); err != nil {
		return nil, fmt.Errorf("ema %d: %w", EMAMid, err)
	}

	if s.RSI14, err = RSISeries(closes, RSIPeriod); err != nil {
		return nil, fmt.Errorf("rsi %d: %w", RSIPeriod, err)
	}

	if s.MACD, s.MACDSignal, s.MACDHist, err = MACDSeries(closes, MACDFast, MACDSlow, MACDSignalSpan); err != nil {
		return nil, fmt.Errorf("macd: %w", err)
	}

	if s.BBUpper, s.BBMiddle, s.BBLower, err = BollingerSeries(closes, BollingerWindow, BollingerWidth); err != nil {
		return nil, fmt.Errorf("bollinger: %w", err)
	}
	return s, nil
}

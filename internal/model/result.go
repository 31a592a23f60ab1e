package model

import "encoding/json"

// Trend classification values.
const (
	TrendBullish = "bullish"
	TrendBearish = "bearish"
	TrendNeutral = "neutral"
)

// Price-vs-moving-average position values.
const (
	PositionAbove = "above"
	PositionBelow = "below"
	PositionNA    = "N/A"
)

// Snapshot is the fully populated analysis record for one symbol.
// Indicator fields are pointers: nil means the indicator is undefined at the
// latest bar and is emitted as JSON null, never omitted.
type Snapshot struct {
	Ticker           string   `json:"ticker"`
	CurrentPrice     float64  `json:"current_price"`
	PriceChange1D    float64  `json:"price_change_1d"`
	PriceChangePct1D float64  `json:"price_change_pct_1d"`
	DayLabel         string   `json:"day_label"`
	Volume           int64    `json:"volume"`

	SMA20  *float64 `json:"sma_20"`
	SMA50  *float64 `json:"sma_50"`
	SMA200 *float64 `json:"sma_200"`
	EMA8   *float64 `json:"ema_8"`
	EMA10  *float64 `json:"ema_10"`
	EMA21  *float64 `json:"ema_21"`
	RSI14  *float64 `json:"rsi_14"`

	MACD          *float64 `json:"macd"`
	MACDSignal    *float64 `json:"macd_signal"`
	MACDHistogram *float64 `json:"macd_histogram"`

	BBUpper  *float64 `json:"bb_upper"`
	BBMiddle *float64 `json:"bb_middle"`
	BBLower  *float64 `json:"bb_lower"`

	PriceVsSMA50  string `json:"price_vs_sma_50"`
	PriceVsSMA200 string `json:"price_vs_sma_200"`
	Trend         string `json:"trend"`

	SupportLevels    []float64 `json:"support_levels"`
	ResistanceLevels []float64 `json:"resistance_levels"`
}

// AnalysisResult is the sole output of an analysis run: either a snapshot or
// a pure error record, never a mix of the two.
type AnalysisResult struct {
	Snapshot *Snapshot
	Err      string
}

// ErrorResult wraps a failure message into a result record.
func ErrorResult(msg string) *AnalysisResult {
	return &AnalysisResult{Err: msg}
}

// MarshalJSON emits either {"error": ...} or the complete snapshot object.
func (r *AnalysisResult) MarshalJSON() ([]byte, error) {
	if r.Err != "" {
		return json.Marshal(struct {
			Error string `json:"error"`
		}{r.Err})
	}
	return json.Marshal(r.Snapshot)
}

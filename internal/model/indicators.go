package model

// IndicatorSeries holds one value per bar for every computed indicator.
// Positions where an indicator is undefined (insufficient trailing history)
// hold math.NaN.
type IndicatorSeries struct {
	SMA20  []float64
	SMA50  []float64
	SMA200 []float64

	EMA8  []float64
	EMA10 []float64
	EMA21 []float64

	RSI14 []float64

	MACD       []float64
	MACDSignal []float64
	MACDHist   []float64

	BBUpper  []float64
	BBMiddle []float64
	BBLower  []float64
}

// IndicatorRow is the per-date cross-section of an IndicatorSeries.
type IndicatorRow struct {
	SMA20, SMA50, SMA200       float64
	EMA8, EMA10, EMA21         float64
	RSI14                      float64
	MACD, MACDSignal, MACDHist float64
	BBUpper, BBMiddle, BBLower float64
}

// Row returns the cross-section at index i.
func (s *IndicatorSeries) Row(i int) IndicatorRow {
	return IndicatorRow{
		SMA20:      s.SMA20[i],
		SMA50:      s.SMA50[i],
		SMA200:     s.SMA200[i],
		EMA8:       s.EMA8[i],
		EMA10:      s.EMA10[i],
		EMA21:      s.EMA21[i],
		RSI14:      s.RSI14[i],
		MACD:       s.MACD[i],
		MACDSignal: s.MACDSignal[i],
		MACDHist:   s.MACDHist[i],
		BBUpper:    s.BBUpper[i],
		BBMiddle:   s.BBMiddle[i],
		BBLower:    s.BBLower[i],
	}
}

// Latest returns the most recent cross-section.
func (s *IndicatorSeries) Latest() IndicatorRow {
	return s.Row(len(s.SMA20) - 1)
}

package calculator

// MACDSeries computes the MACD line (fast EMA minus slow EMA), its signal
// line (an EMA of the MACD line), and the histogram (line minus signal) for
// every position in prices.
func MACDSeries(prices []float64, fast, slow, signal int) (line, sig, hist []float64, err error) {
	emaFast, err := EMASeries(prices, fast)
	if err != nil {
		return nil, nil, nil, err
	}
	emaSlow, err := EMASeries(prices, slow)
	if err != nil {
		return nil, nil, nil, err
	}

	line = make([]float64, len(prices))
	for i := range prices {
		line[i] = emaFast[i] - emaSlow[i]
	}

	sig, err = EMASeries(line, signal)
	if err != nil {
		return nil, nil, nil, err
	}

	hist = make([]float64, len(prices))
	for i := range prices {
		hist[i] = line[i] - sig[i]
	}
	return line, sig, hist, nil
}

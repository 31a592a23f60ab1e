package calculator

import "math"

// BollingerSeries computes Bollinger bands: middle = SMA(window), upper and
// lower = middle ± width standard deviations of the same window. Positions
// with fewer than window bars hold NaN in all three series.
func BollingerSeries(prices []float64, window int, width float64) (upper, middle, lower []float64, err error) {
	middle, err = SMASeries(prices, window)
	if err != nil {
		return nil, nil, nil, err
	}

	upper = make([]float64, len(prices))
	lower = make([]float64, len(prices))
	for i := range prices {
		if i < window-1 {
			upper[i] = math.NaN()
			lower[i] = math.NaN()
			continue
		}
		var sq float64
		for j := i - window + 1; j <= i; j++ {
			d := prices[j] - middle[i]
			sq += d * d
		}
		sd := math.Sqrt(sq / float64(window))
		upper[i] = middle[i] + width*sd
		lower[i] = middle[i] - width*sd
	}
	return upper, middle, lower, nil
}
